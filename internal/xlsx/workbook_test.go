package xlsx

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/RodneySerpa/cadastro-pf-excel/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "cadastro_pessoas.xlsx"))
}

func testPeople() []types.Person {
	return []types.Person{
		{
			ID:         1,
			FullName:   "João da Silva",
			CPF:        "123.456.789-09",
			RG:         "12.345.678-9",
			BirthDate:  time.Date(1985, 12, 1, 0, 0, 0, 0, time.UTC),
			Email:      "joao@example.com",
			Phone:      "(11) 99999-9999",
			PostalCode: "01234-000",
			Address:    "Rua das Flores, 123",
			City:       "São Paulo",
			State:      "SP",
			Profession: "Engenheiro",
			CreatedAt:  time.Date(2026, 8, 30, 9, 15, 0, 0, time.Local),
		},
		{
			ID:        2,
			FullName:  "Ana Lima",
			CPF:       "987.654.321-00",
			Email:     "ana@example.com",
			CreatedAt: time.Date(2026, 8, 30, 9, 16, 0, 0, time.Local),
		},
	}
}

func TestEnsure(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.Ensure())

	f, err := excelize.OpenFile(s.Path())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1, "expected header row only")
	assert.Equal(t, types.Columns(), rows[0])

	// Second call must not touch the existing store.
	require.NoError(t, s.Ensure())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := testStore(t)
	want := testPeople()

	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, want[0].ID, got[0].ID)
	assert.Equal(t, want[0].FullName, got[0].FullName)
	assert.Equal(t, want[0].CPF, got[0].CPF)
	assert.Equal(t, want[0].RG, got[0].RG)
	assert.True(t, want[0].BirthDate.Equal(got[0].BirthDate))
	assert.Equal(t, want[0].Email, got[0].Email)
	assert.Equal(t, want[0].Phone, got[0].Phone)
	assert.Equal(t, want[0].PostalCode, got[0].PostalCode)
	assert.Equal(t, want[0].Address, got[0].Address)
	assert.Equal(t, want[0].City, got[0].City)
	assert.Equal(t, want[0].State, got[0].State)
	assert.Equal(t, want[0].Profession, got[0].Profession)
	assert.True(t, want[0].CreatedAt.Equal(got[0].CreatedAt))

	assert.Equal(t, want[1].ID, got[1].ID)
	assert.True(t, got[1].BirthDate.IsZero(), "absent birth date must stay absent")
	assert.Empty(t, got[1].State)
}

func TestSaveLoadSaveIsIdempotent(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Save(testPeople()))

	first, err := s.Load()
	require.NoError(t, err)
	require.NoError(t, s.Save(first))

	second, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadMissingFileSelfHeals(t *testing.T) {
	s := testStore(t)

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = os.Stat(s.Path())
	assert.NoError(t, err, "load must recreate the missing store")
}

func TestLoadCorruptFileSelfHeals(t *testing.T) {
	s := testStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("not a workbook"), 0o644))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	// The recreated store must load cleanly.
	f, err := excelize.OpenFile(s.Path())
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.Equal(t, types.Columns(), rows[0])
}

func TestLoadWrongHeaderSelfHeals(t *testing.T) {
	s := testStore(t)

	f := excelize.NewFile()
	header := []any{"Nome", "CPF"}
	require.NoError(t, f.SetSheetRow(sheetName, "A1", &header))
	require.NoError(t, f.SaveAs(s.Path()))
	require.NoError(t, f.Close())

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadSkipsUndecodableRows(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Save(testPeople()))

	// Corrupt the second record's ID cell in place.
	f, err := excelize.OpenFile(s.Path())
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue(sheetName, "A3", "not-a-number"))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestSaveDoesNotLeaveTempFiles(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Save(testPeople()))

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(s.Path()), entries[0].Name())
}

func TestExportBytes(t *testing.T) {
	b, err := ExportBytes(testPeople())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, types.Columns(), rows[0])
	assert.Equal(t, "João da Silva", rows[1][1])
	assert.Equal(t, "Ana Lima", rows[2][1])
}
