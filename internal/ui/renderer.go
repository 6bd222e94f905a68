package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/retrodungeon/internal/world"
)

// Sprite is a glyph drawn on top of the map. Sprites are painted in slice
// order, so later sprites overdraw earlier ones on a shared cell.
type Sprite struct {
	Pos   world.Position
	Glyph rune
	Color tcell.Color
	Bold  bool
}

// Frame is one complete picture of the game: the map, the sprites over
// it, a status line and the message log. Renderers consume frames and
// know nothing about game state.
type Frame struct {
	Map      *world.Map
	Sprites  []Sprite
	Status   string
	Messages []string
}

// Renderer draws frames to some terminal-like output.
type Renderer interface {
	Render(f Frame) error
}

// ScreenRenderer draws frames onto a tcell screen.
type ScreenRenderer struct {
	screen *Screen
}

// NewScreenRenderer creates a renderer for the given screen.
func NewScreenRenderer(screen *Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

// Render draws the frame and flushes it to the terminal.
func (r *ScreenRenderer) Render(f Frame) error {
	r.screen.Clear()

	if f.Map != nil {
		for y := 0; y < f.Map.Height(); y++ {
			for x := 0; x < f.Map.Width(); x++ {
				tile := f.Map.TileAt(x, y)
				r.screen.SetContent(x, y, tile.Symbol, r.tileStyle(tile))
			}
		}
	}

	for _, s := range f.Sprites {
		style := tcell.StyleDefault.Foreground(s.Color)
		if s.Bold {
			style = style.Bold(true)
		}
		r.screen.SetContent(s.Pos.X, s.Pos.Y, s.Glyph, style)
	}

	if f.Map != nil {
		r.drawText(0, f.Map.Height()+1, f.Status)
		for i, msg := range f.Messages {
			r.drawText(0, f.Map.Height()+3+i, msg)
		}
	}

	r.screen.Show()
	return nil
}

// tileStyle returns the appropriate style for a tile.
func (r *ScreenRenderer) tileStyle(tile world.Tile) tcell.Style {
	switch tile.Type {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.TileStairsDown, world.TileStairsUp:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case world.TileTrap:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	default:
		return tcell.StyleDefault
	}
}

// drawText writes a line of text starting at the given cell.
func (r *ScreenRenderer) drawText(x, y int, text string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
