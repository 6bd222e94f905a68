package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/samdwyer/retrodungeon/internal/entity"
	"github.com/samdwyer/retrodungeon/internal/world"
)

func TestANSIRendererFrame(t *testing.T) {
	m := world.NewMap(6, 4)
	m.SetTile(2, 1, world.TileFloor)
	m.SetTile(3, 1, world.TileStairsDown)

	var buf bytes.Buffer
	r := NewANSIRenderer(&buf)

	err := r.Render(Frame{
		Map: m,
		Sprites: []Sprite{
			{Pos: world.Position{X: 3, Y: 2}, Glyph: '@'},
			{Pos: world.Position{X: 1, Y: 1}, Glyph: 'g'},
		},
		Status:   "Health: 97/100  Level: 1  Gold: 0  Dungeon: 1",
		Messages: []string{"Welcome!", "A goblin appears."},
	})
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "\033[2J\033[H") {
		t.Error("frame should start with clear+home")
	}

	// Map rows appear in order with their glyphs.
	if !strings.Contains(out, "######\r\n##.>##\r\n") {
		t.Errorf("map rows missing or misrendered in %q", out)
	}

	// Sprites are cursor-addressed with 1-based row;col.
	if !strings.Contains(out, "\033[3;4H@") {
		t.Error("player sprite not painted at row 3, col 4")
	}
	if !strings.Contains(out, "\033[2;2Hg") {
		t.Error("enemy sprite not painted at row 2, col 2")
	}

	// Status renders two rows below the map, messages two below that.
	if !strings.Contains(out, "\033[6;1HHealth: 97/100") {
		t.Error("status line not painted at row 6")
	}
	if !strings.Contains(out, "\033[8;1HWelcome!") {
		t.Error("first message not painted at row 8")
	}
	if !strings.Contains(out, "\033[9;1HA goblin appears.") {
		t.Error("second message not painted at row 9")
	}
}

func TestANSIRendererSpriteOrder(t *testing.T) {
	m := world.NewMap(3, 3)

	var buf bytes.Buffer
	r := NewANSIRenderer(&buf)

	if err := r.Render(Frame{
		Map: m,
		Sprites: []Sprite{
			{Pos: world.Position{X: 1, Y: 1}, Glyph: '@'},
			{Pos: world.Position{X: 1, Y: 1}, Glyph: 'D'},
		},
	}); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	out := buf.String()

	// Later sprites overdraw earlier ones on a shared cell.
	first := strings.Index(out, "\033[2;2H@")
	second := strings.Index(out, "\033[2;2HD")
	if first == -1 || second == -1 || second < first {
		t.Errorf("sprites painted out of order in %q", out)
	}
}

func TestANSIRendererNilMap(t *testing.T) {
	var buf bytes.Buffer
	r := NewANSIRenderer(&buf)

	if err := r.Render(Frame{}); err != nil {
		t.Fatalf("Render() with nil map failed: %v", err)
	}
	if buf.String() != "\033[2J\033[H" {
		t.Errorf("nil-map frame = %q, want just clear+home", buf.String())
	}
}

func TestTermInputKeys(t *testing.T) {
	input := NewTermInput(strings.NewReader("kjlh"))

	wantDirs := []entity.Direction{entity.North, entity.South, entity.East, entity.West}
	for _, want := range wantDirs {
		cmd := input.Next()
		if cmd.Action != ActionMove || cmd.Dir != want {
			t.Errorf("Next() = %+v, want move %v", cmd, want)
		}
	}
}

func TestTermInputArrowSequences(t *testing.T) {
	input := NewTermInput(strings.NewReader("\033[A\033[B\033[C\033[D"))

	wantDirs := []entity.Direction{entity.North, entity.South, entity.East, entity.West}
	for _, want := range wantDirs {
		cmd := input.Next()
		if cmd.Action != ActionMove || cmd.Dir != want {
			t.Errorf("Next() = %+v, want move %v", cmd, want)
		}
	}
}

func TestTermInputControlKeys(t *testing.T) {
	tests := []struct {
		in   string
		want Action
	}{
		{"q", ActionQuit},
		{"s", ActionSave},
		{"r", ActionLoad},
		{"\x03", ActionQuit}, // Ctrl-C
		{"z", ActionNone},
		{"", ActionQuit}, // exhausted input quits
	}

	for _, tt := range tests {
		cmd := NewTermInput(strings.NewReader(tt.in)).Next()
		if cmd.Action != tt.want {
			t.Errorf("Next() on %q = %v, want %v", tt.in, cmd.Action, tt.want)
		}
	}
}
