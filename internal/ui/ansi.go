package ui

import (
	"fmt"
	"io"
)

// ANSIRenderer paints frames with raw ANSI escape sequences: clear+home,
// the map row by row, then cursor-addressed overlays for sprites, status
// and messages. Rows end with \r\n so output stays aligned in raw mode.
//
// Layout (1-based terminal rows): map rows 1..H, status at H+2, messages
// from H+4 down.
type ANSIRenderer struct {
	w io.Writer
}

// NewANSIRenderer creates a renderer writing to w.
func NewANSIRenderer(w io.Writer) *ANSIRenderer {
	return &ANSIRenderer{w: w}
}

// Render emits one full frame.
func (r *ANSIRenderer) Render(f Frame) error {
	if _, err := fmt.Fprint(r.w, "\033[2J\033[H"); err != nil {
		return err
	}

	if f.Map == nil {
		return nil
	}

	for y := 0; y < f.Map.Height(); y++ {
		for x := 0; x < f.Map.Width(); x++ {
			if _, err := fmt.Fprintf(r.w, "%c", f.Map.TileAt(x, y).Symbol); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(r.w, "\r\n"); err != nil {
			return err
		}
	}

	for _, s := range f.Sprites {
		if _, err := fmt.Fprintf(r.w, "\033[%d;%dH%c", s.Pos.Y+1, s.Pos.X+1, s.Glyph); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(r.w, "\033[%d;1H%s", f.Map.Height()+2, f.Status); err != nil {
		return err
	}

	y := f.Map.Height() + 4
	for _, msg := range f.Messages {
		if _, err := fmt.Fprintf(r.w, "\033[%d;1H%s", y, msg); err != nil {
			return err
		}
		y++
	}

	return nil
}
