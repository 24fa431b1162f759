// Package export renders tabular sheets into downloadable files.
package export

import "fmt"

// Supported formats.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

// Sheet is an ordered table. Every row has one cell per header.
type Sheet struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func (s Sheet) validate() error {
	if len(s.Headers) == 0 {
		return fmt.Errorf("sheet requires at least one header")
	}
	for i, row := range s.Rows {
		if len(row) != len(s.Headers) {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(s.Headers))
		}
	}
	return nil
}

// Renderer encodes a sheet in one file format.
type Renderer interface {
	Render(sheet Sheet) ([]byte, error)
	ContentType() string
	Extension() string
}

// ForFormat returns the renderer registered for format.
func ForFormat(format string) (Renderer, error) {
	switch format {
	case FormatCSV:
		return CSV{}, nil
	case FormatPDF:
		return PDF{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
