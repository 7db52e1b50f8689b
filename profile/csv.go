package profile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteCSV writes p as a two-column table: a header line
// "Depth (km),<quantity header>" followed by one row per sample in grid
// order. Numbers use the shortest representation that round-trips.
func WriteCSV(w io.Writer, p *Profile) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{DepthHeader, p.quantity.Header()}); err != nil {
		return fmt.Errorf("WriteCSV: header: %w", err)
	}
	for i := range p.depths {
		row := []string{
			formatFloat(p.depths[i] / MetresPerKilometre),
			formatFloat(p.values[i]),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("WriteCSV: row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadCSV parses a table written by WriteCSV (or by the numpy scripts, which
// put a space after the comma and may list depths deepest first). The value
// column header is parsed back into the profile Quantity.
//
// Errors: ErrMalformedTable for a bad header, row width or number; the
// profile constructor errors for empty or non-monotone data.
func ReadCSV(r io.Reader) (*Profile, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = 2
	cr.Comment = '#'

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ReadCSV: missing header: %w", ErrEmptyProfile)
	}
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: header: %v: %w", err, ErrMalformedTable)
	}
	if strings.TrimSpace(header[0]) != DepthHeader {
		return nil, fmt.Errorf("ReadCSV: first column %q, want %q: %w", header[0], DepthHeader, ErrMalformedTable)
	}
	q := ParseQuantity(header[1])

	var depths, values []float64
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: line %d: %v: %w", line, err, ErrMalformedTable)
		}
		km, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: line %d depth: %v: %w", line, err, ErrMalformedTable)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: line %d value: %v: %w", line, err, ErrMalformedTable)
		}
		depths = append(depths, km*MetresPerKilometre)
		values = append(values, v)
	}

	return New(q, depths, values)
}

// ParseQuantity splits a column header such as "Temperature (K)" into name
// and unit. Headers without a trailing parenthesised unit yield an empty Unit.
func ParseQuantity(header string) Quantity {
	h := strings.TrimSpace(header)
	open := strings.LastIndex(h, "(")
	if open <= 0 || !strings.HasSuffix(h, ")") {
		return Quantity{Name: h}
	}

	return Quantity{
		Name: strings.TrimSpace(h[:open]),
		Unit: strings.TrimSpace(h[open+1 : len(h)-1]),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
