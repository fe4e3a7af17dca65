package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	sharedErrors "github.com/khanhnv2901/scorecheck/internal/shared/errors"
)

const csvFixedColumns = 4 // name,address,port,type

// decodeCSV reads name,address,port,type,arg... rows. Rows may have any
// number of argument columns; lines starting with # are skipped, as is a
// leading header row whose first column is "name".
func decodeCSV(r io.Reader) ([]positioned, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	var defs []positioned
	first := true
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return defs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", sharedErrors.ErrInvalidDefinition, err)
		}
		line, _ := cr.FieldPos(0)

		if first {
			first = false
			if strings.EqualFold(strings.TrimSpace(record[0]), "name") {
				continue
			}
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		defs = append(defs, csvDefinition(line, record))
	}
}

func csvDefinition(line int, record []string) positioned {
	p := positioned{line: line}
	if len(record) < csvFixedColumns {
		p.err = fmt.Errorf("%w: want at least %d columns (name,address,port,type), got %d",
			sharedErrors.ErrInvalidDefinition, csvFixedColumns, len(record))
		return p
	}
	port, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		p.err = fmt.Errorf("%w: port %q is not a number", sharedErrors.ErrInvalidDefinition, record[2])
		return p
	}
	p.def = Definition{
		Name:    strings.TrimSpace(record[0]),
		Address: strings.TrimSpace(record[1]),
		Port:    port,
		Type:    strings.TrimSpace(record[3]),
	}
	if len(record) > csvFixedColumns {
		p.def.Args = append([]string(nil), record[csvFixedColumns:]...)
	}
	return p
}
