package ui

import (
	"bufio"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/retrodungeon/internal/entity"
)

// Action is what the player asked the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionSave
	ActionLoad
	ActionQuit
)

// Command is one decoded player input.
type Command struct {
	Action Action
	Dir    entity.Direction
}

// InputSource yields player commands one at a time, blocking until input
// arrives.
type InputSource interface {
	Next() Command
}

// TcellInput decodes tcell key events into commands.
type TcellInput struct {
	screen *Screen
}

// NewTcellInput creates an input source reading from the given screen.
func NewTcellInput(screen *Screen) *TcellInput {
	return &TcellInput{screen: screen}
}

// Next blocks for the next event and decodes it. Resize events trigger a
// redraw and surface as ActionNone.
func (t *TcellInput) Next() Command {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return t.decodeKey(ev)
		case *tcell.EventResize:
			t.screen.Sync()
			return Command{Action: ActionNone}
		}
	}
}

func (t *TcellInput) decodeKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Action: ActionQuit}
	case tcell.KeyUp:
		return Command{Action: ActionMove, Dir: entity.North}
	case tcell.KeyDown:
		return Command{Action: ActionMove, Dir: entity.South}
	case tcell.KeyRight:
		return Command{Action: ActionMove, Dir: entity.East}
	case tcell.KeyLeft:
		return Command{Action: ActionMove, Dir: entity.West}
	case tcell.KeyRune:
		return decodeRune(ev.Rune())
	}
	return Command{Action: ActionNone}
}

// TermInput decodes raw-mode stdin bytes into commands. It understands
// the same keys as TcellInput plus bare CSI arrow sequences.
type TermInput struct {
	r *bufio.Reader
}

// NewTermInput creates an input source reading from r.
func NewTermInput(r io.Reader) *TermInput {
	return &TermInput{r: bufio.NewReader(r)}
}

// Next blocks for the next key and decodes it. Read errors quit the game.
func (t *TermInput) Next() Command {
	b, err := t.r.ReadByte()
	if err != nil {
		return Command{Action: ActionQuit}
	}

	switch b {
	case 0x03: // Ctrl-C
		return Command{Action: ActionQuit}
	case 0x1b:
		return t.decodeEscape()
	default:
		return decodeRune(rune(b))
	}
}

// decodeEscape handles a CSI arrow sequence after a leading ESC byte.
// Anything else starting with ESC quits.
func (t *TermInput) decodeEscape() Command {
	b, err := t.r.ReadByte()
	if err != nil || b != '[' {
		return Command{Action: ActionQuit}
	}
	b, err = t.r.ReadByte()
	if err != nil {
		return Command{Action: ActionQuit}
	}
	switch b {
	case 'A':
		return Command{Action: ActionMove, Dir: entity.North}
	case 'B':
		return Command{Action: ActionMove, Dir: entity.South}
	case 'C':
		return Command{Action: ActionMove, Dir: entity.East}
	case 'D':
		return Command{Action: ActionMove, Dir: entity.West}
	}
	return Command{Action: ActionNone}
}

// decodeRune maps printable keys shared by both input sources.
// hjkl move, q quits, s saves, r restores.
func decodeRune(r rune) Command {
	switch r {
	case 'k', 'K':
		return Command{Action: ActionMove, Dir: entity.North}
	case 'j', 'J':
		return Command{Action: ActionMove, Dir: entity.South}
	case 'l', 'L':
		return Command{Action: ActionMove, Dir: entity.East}
	case 'h', 'H':
		return Command{Action: ActionMove, Dir: entity.West}
	case 'q', 'Q':
		return Command{Action: ActionQuit}
	case 's', 'S':
		return Command{Action: ActionSave}
	case 'r', 'R':
		return Command{Action: ActionLoad}
	}
	return Command{Action: ActionNone}
}
