// Package xlsx persists the registry as a single Excel workbook laid out
// with the canonical column schema.
package xlsx

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/RodneySerpa/cadastro-pf-excel/pkg/types"
)

// sheetName is the workbook sheet holding the registry rows.
const sheetName = "Sheet1"

// Store reads and writes the registry workbook at a fixed path. Every save
// replaces the whole workbook; there is no incremental write path.
type Store struct {
	path string
}

// NewStore returns a Store over the workbook at path. The workbook is not
// touched until Ensure, Load, or Save is called.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the workbook location.
func (s *Store) Path() string {
	return s.path
}

// Ensure creates the workbook with the canonical header row and zero data
// rows if it does not exist. Idempotent.
func (s *Store) Ensure() error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat %s: %v", types.ErrStorageUnavailable, s.path, err)
	}
	return s.Save(nil)
}

// Load returns every record in the workbook, in sheet order. A missing or
// unreadable workbook is recreated empty and an empty registry is
// returned; Load only fails when the store cannot be recreated either.
// Rows that do not decode are skipped.
func (s *Store) Load() ([]types.Person, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return s.recreate()
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil || !headerMatches(rows) {
		return s.recreate()
	}

	people := make([]types.Person, 0, len(rows)-1)
	for _, row := range rows[1:] {
		p, err := decodeRow(row)
		if err != nil {
			continue
		}
		people = append(people, p)
	}
	return people, nil
}

// recreate rewrites the empty canonical store and returns an empty
// registry.
func (s *Store) recreate() ([]types.Person, error) {
	if err := s.Save(nil); err != nil {
		return nil, err
	}
	return []types.Person{}, nil
}

// Save overwrites the workbook with the full record set, columns in
// canonical order. The workbook is written to a temp file and renamed over
// the original so a failed save never leaves a truncated store behind.
func (s *Store) Save(people []types.Person) error {
	f, err := encode(people)
	if err != nil {
		return err
	}
	defer f.Close()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %v", types.ErrStorageUnavailable, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".cadastro-*.xlsx")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", types.ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write workbook: %v", types.ErrStorageUnavailable, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: sync temp file: %v", types.ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %v", types.ErrStorageUnavailable, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename temp file: %v", types.ErrStorageUnavailable, err)
	}
	return nil
}

// ExportBytes renders records to workbook bytes in the canonical layout,
// for download by the caller.
func ExportBytes(people []types.Person) ([]byte, error) {
	f, err := encode(people)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// headerMatches reports whether the first row carries the canonical
// columns in canonical order.
func headerMatches(rows [][]string) bool {
	if len(rows) == 0 {
		return false
	}
	cols := types.Columns()
	if len(rows[0]) != len(cols) {
		return false
	}
	for i, c := range cols {
		if rows[0][i] != c {
			return false
		}
	}
	return true
}
