// Package report renders the curricular redesign summary as PDF or XLSX.
package report

import "io"

// Document renderer-neutral report content
type Document struct {
	Title    string
	Subtitle string
	Stats    []Stat
	Sections []Section
}

// Stat one labelled counter
type Stat struct {
	Label string
	Value string
}

// Section one campus block
type Section struct {
	Heading string
	Columns []string
	Rows    [][]string
	// Widths relative column widths; nil means equal widths
	Widths []float64
}

// Renderer writes a Document in one format
type Renderer interface {
	Render(w io.Writer, doc *Document) error
	ContentType() string
	Extension() string
}

func relativeWidths(sec Section, total float64) []float64 {
	n := len(sec.Columns)
	out := make([]float64, n)
	if len(sec.Widths) != n {
		for i := range out {
			out[i] = total / float64(n)
		}
		return out
	}
	var sum float64
	for _, w := range sec.Widths {
		sum += w
	}
	for i, w := range sec.Widths {
		out[i] = total * w / sum
	}
	return out
}
