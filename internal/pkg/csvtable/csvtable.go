// Package csvtable reads a CSV document with a header row into a column-addressable
// table whose cells are typed individually as null, number, boolean or text.
package csvtable

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

var (
	ErrNoColumns      = errors.New("No columns to parse from file")
	ErrColumnNotFound = errors.New("column not found")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type Kind uint8

const (
	KindNull Kind = iota
	KindNumber
	KindBool
	KindText
)

// Cell is one typed value. Raw always keeps the field as it appeared in the file.
type Cell struct {
	Kind   Kind
	Raw    string
	Number float64
	Bool   bool
}

func (c Cell) IsNull() bool {
	return c.Kind == KindNull
}

// Text returns the cell's text and whether the cell is a text cell.
func (c Cell) Text() (string, bool) {
	return c.Raw, c.Kind == KindText
}

// naMarkers are the field values treated as missing.
var naMarkers = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

// ParseCell types a single raw field.
func ParseCell(raw string) Cell {
	if _, ok := naMarkers[raw]; ok {
		return Cell{Kind: KindNull, Raw: raw}
	}
	switch raw {
	case "True", "TRUE", "true":
		return Cell{Kind: KindBool, Raw: raw, Bool: true}
	case "False", "FALSE", "false":
		return Cell{Kind: KindBool, Raw: raw}
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return Cell{Kind: KindNumber, Raw: raw, Number: n}
	}
	return Cell{Kind: KindText, Raw: raw}
}

type Table struct {
	Header []string
	Rows   [][]Cell
	index  map[string]int
}

// Parse reads b as CSV. The first record is the header. Records shorter than the
// header are padded with null cells; longer records are an error.
func Parse(b []byte) (*Table, error) {
	b = bytes.TrimPrefix(b, utf8BOM)
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, ErrNoColumns
	}

	r := csv.NewReader(bytes.NewReader(b))
	r.FieldsPerRecord = -1
	r.ReuseRecord = false

	header, err := r.Read()
	if err == io.EOF {
		return nil, ErrNoColumns
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read csv header")
	}

	t := &Table{
		Header: header,
		Rows:   [][]Cell{},
		index:  make(map[string]int, len(header)),
	}
	for i, name := range header {
		if _, dup := t.index[name]; !dup {
			t.index[name] = i
		}
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read csv record")
		}
		if len(record) > len(header) {
			line, _ := r.FieldPos(0)
			return nil, errors.Errorf("Error tokenizing data. Expected %d fields in line %d, saw %d", len(header), line, len(record))
		}

		row := make([]Cell, len(header))
		for i := range row {
			if i < len(record) {
				row[i] = ParseCell(record[i])
			} else {
				row[i] = Cell{Kind: KindNull}
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns every cell of the named column in row order.
func (t *Table) Column(name string) ([]Cell, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, errors.Wrap(ErrColumnNotFound, name)
	}
	cells := make([]Cell, len(t.Rows))
	for r, row := range t.Rows {
		cells[r] = row[i]
	}
	return cells, nil
}
