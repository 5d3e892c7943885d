// Row encoding between Person records and the canonical workbook layout.
package xlsx

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/RodneySerpa/cadastro-pf-excel/pkg/types"
)

// encode builds an in-memory workbook with the canonical header and one
// row per record.
func encode(people []types.Person) (*excelize.File, error) {
	f := excelize.NewFile()

	cols := types.Columns()
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, p := range people {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		row := encodeRow(p)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	return f, nil
}

// encodeRow lays out one record in canonical column order. Dates use the
// DD/MM/YYYY layout, creation timestamps DD/MM/YYYY HH:MM.
func encodeRow(p types.Person) []any {
	var birth, created string
	if !p.BirthDate.IsZero() {
		birth = p.BirthDate.Format(types.DateLayout)
	}
	if !p.CreatedAt.IsZero() {
		created = p.CreatedAt.Format(types.TimestampLayout)
	}
	return []any{
		p.ID,
		p.FullName,
		p.CPF,
		p.RG,
		birth,
		p.Email,
		p.Phone,
		p.PostalCode,
		p.Address,
		p.City,
		p.State,
		p.Profession,
		created,
	}
}

// decodeRow parses one sheet row back into a Person. GetRows drops
// trailing empty cells, so short rows are padded before decoding.
func decodeRow(row []string) (types.Person, error) {
	cells := make([]string, len(types.Columns()))
	copy(cells, row)
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}

	id, err := strconv.ParseInt(cells[0], 10, 64)
	if err != nil || id <= 0 {
		return types.Person{}, fmt.Errorf("bad id %q", cells[0])
	}

	p := types.Person{
		ID:         id,
		FullName:   cells[1],
		CPF:        cells[2],
		RG:         cells[3],
		Email:      cells[5],
		Phone:      cells[6],
		PostalCode: cells[7],
		Address:    cells[8],
		City:       cells[9],
		State:      cells[10],
		Profession: cells[11],
	}

	if cells[4] != "" {
		birth, err := time.Parse(types.DateLayout, cells[4])
		if err != nil {
			return types.Person{}, fmt.Errorf("bad birth date %q", cells[4])
		}
		p.BirthDate = birth
	}
	if cells[12] != "" {
		created, err := time.ParseInLocation(types.TimestampLayout, cells[12], time.Local)
		if err != nil {
			return types.Person{}, fmt.Errorf("bad creation timestamp %q", cells[12])
		}
		p.CreatedAt = created
	}
	return p, nil
}
