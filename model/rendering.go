package model

import (
	"bufio"
	"fmt"
	"io"
)

// DefaultHeader is the first line of a plain-text Life 1.06 pattern
const DefaultHeader = "#Life 1.06"

// Life106Renderer writes a world as a Life 1.06 pattern: a header line
// followed by one "<x> <y>" line per live cell.
type Life106Renderer struct {
	Header string
}

// Display renders the world's live cells to w
func (r *Life106Renderer) Display(w io.Writer, world *World) error {
	header := r.Header
	if header == "" {
		header = DefaultHeader
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, header); err != nil {
		return err
	}
	for _, c := range world.LiveCells() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", c.X, c.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}
