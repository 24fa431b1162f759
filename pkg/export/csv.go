package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSV renders sheets as comma separated values. The title is not written.
type CSV struct{}

// ContentType implements Renderer.
func (CSV) ContentType() string { return "text/csv" }

// Extension implements Renderer.
func (CSV) Extension() string { return FormatCSV }

// Render implements Renderer.
func (CSV) Render(sheet Sheet) ([]byte, error) {
	if err := sheet.validate(); err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(sheet.Headers); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	if err := writer.WriteAll(sheet.Rows); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}
	return buf.Bytes(), nil
}
