package registry

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/RodneySerpa/cadastro-pf-excel/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewWorkbookStore(filepath.Join(t.TempDir(), "cadastro_pessoas.xlsx"))
}

func validInput() types.PersonInput {
	return types.PersonInput{
		FullName:  "João da Silva",
		CPF:       "123.456.789-09",
		Email:     "joao@example.com",
		BirthDate: "01/12/1985",
		City:      "São Paulo",
		State:     "SP",
	}
}

func secondInput() types.PersonInput {
	return types.PersonInput{
		FullName: "Ana Lima",
		CPF:      "987.654.321-00",
		Email:    "ana@example.com",
		City:     "Recife",
		State:    "PE",
	}
}

// confirmDelete runs the two-step protocol to completion.
func confirmDelete(t *testing.T, s *Store, sess *Session, id int64) {
	t.Helper()
	require.ErrorIs(t, s.Delete(sess, id), types.ErrConfirmRequired)
	require.NoError(t, s.Delete(sess, id))
}

func TestCreate(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Create(validInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "João da Silva", got.FullName)
	assert.Equal(t, "123.456.789-09", got.CPF)
	assert.Equal(t, "01/12/1985", got.BirthDate.Format(types.DateLayout))
	assert.False(t, got.CreatedAt.IsZero())

	id2, err := s.Create(secondInput())
	require.NoError(t, err)
	assert.Equal(t, int64(2), id2)

	all, err := s.QueryAll(Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateCollectsAllErrors(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create(types.PersonInput{
		FullName:  "",
		CPF:       "12345",
		Email:     "not-an-email",
		BirthDate: "1985-12-01",
		State:     "XX",
	})
	require.Error(t, err)

	var verrs types.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 5)
	assert.True(t, verrs.Has(types.ErrMissingRequiredField))
	assert.True(t, verrs.Has(types.ErrInvalidCPF))
	assert.True(t, verrs.Has(types.ErrInvalidEmail))
	assert.True(t, verrs.Has(types.ErrInvalidBirthDate))
	assert.True(t, verrs.Has(types.ErrInvalidState))
}

func TestCreateMissingRequiredFields(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create(types.PersonInput{})

	var verrs types.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.HasField("full_name"))
	assert.True(t, verrs.HasField("cpf"))
	assert.True(t, verrs.HasField("email"))
}

func TestCreateDuplicateCPF(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Create(validInput())
	require.NoError(t, err)

	in := secondInput()
	in.CPF = "12345678909" // same digits as the stored formatted CPF
	_, err = s.Create(in)

	var verrs types.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has(types.ErrDuplicateCPF))

	// A rejected create must not modify the persisted registry.
	all, err := s.QueryAll(Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Create(validInput())
	require.NoError(t, err)

	in := secondInput()
	in.Email = "JOAO@example.com"
	_, err = s.Create(in)

	var verrs types.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has(types.ErrDuplicateEmail))
}

func TestCreateAfterDeleteDoesNotReuseIDs(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Create(validInput())
	require.NoError(t, err)
	id2, err := s.Create(secondInput())
	require.NoError(t, err)
	id3, err := s.Create(types.PersonInput{
		FullName: "Carlos Mota",
		CPF:      "111.222.333-44",
		Email:    "carlos@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), id3)

	// Delete the middle record, then create again: the new id must not
	// collide with the surviving id 3.
	sess := &Session{}
	confirmDelete(t, s, sess, id2)

	id4, err := s.Create(types.PersonInput{
		FullName: "Beatriz Nunes",
		CPF:      "555.666.777-88",
		Email:    "beatriz@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), id4)
}

func TestGetNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(42)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUpdate(t *testing.T) {
	s := newTestStore(t)
	id, err := s.Create(validInput())
	require.NoError(t, err)
	created, err := s.Get(id)
	require.NoError(t, err)

	in := created.Input()
	in.City = "Campinas"
	in.Profession = "Arquiteto"
	require.NoError(t, s.Update(id, in))

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Campinas", got.City)
	assert.Equal(t, "Arquiteto", got.Profession)

	// Identity fields never change on update.
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestUpdateNotFound(t *testing.T) {
	s := newTestStore(t)
	err := s.Update(42, validInput())
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUpdateRejectsInvalidFields(t *testing.T) {
	s := newTestStore(t)
	id, err := s.Create(validInput())
	require.NoError(t, err)

	in := validInput()
	in.Email = "broken"
	err = s.Update(id, in)

	var verrs types.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has(types.ErrInvalidEmail))

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "joao@example.com", got.Email, "failed update must not persist")
}

func TestUpdateDoesNotRecheckUniqueness(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Create(validInput())
	require.NoError(t, err)
	id2, err := s.Create(secondInput())
	require.NoError(t, err)

	// Editing record 2 to collide with record 1 is accepted.
	in := secondInput()
	in.CPF = "123.456.789-09"
	in.Email = "joao@example.com"
	require.NoError(t, s.Update(id2, in))
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	s := newTestStore(t)
	id, err := s.Create(validInput())
	require.NoError(t, err)

	sess := &Session{}
	err = s.Delete(sess, id)
	assert.ErrorIs(t, err, types.ErrConfirmRequired)

	// The record is still present after the unconfirmed request.
	_, err = s.Get(id)
	require.NoError(t, err)

	require.NoError(t, s.Delete(sess, id))
	_, err = s.Get(id)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteDifferentIDReArms(t *testing.T) {
	s := newTestStore(t)
	id1, err := s.Create(validInput())
	require.NoError(t, err)
	id2, err := s.Create(secondInput())
	require.NoError(t, err)

	sess := &Session{}
	require.ErrorIs(t, s.Delete(sess, id1), types.ErrConfirmRequired)

	// Switching targets must not delete: the confirmation re-arms.
	require.ErrorIs(t, s.Delete(sess, id2), types.ErrConfirmRequired)
	require.NoError(t, s.Delete(sess, id2))

	_, err = s.Get(id1)
	assert.NoError(t, err)
	_, err = s.Get(id2)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteSessionsAreIndependent(t *testing.T) {
	s := newTestStore(t)
	id, err := s.Create(validInput())
	require.NoError(t, err)

	first := &Session{}
	require.ErrorIs(t, s.Delete(first, id), types.ErrConfirmRequired)

	// Another caller's session cannot confirm the first caller's request.
	second := &Session{}
	require.ErrorIs(t, s.Delete(second, id), types.ErrConfirmRequired)

	_, err = s.Get(id)
	assert.NoError(t, err)
}

func TestDeleteNotFound(t *testing.T) {
	s := newTestStore(t)
	sess := &Session{}
	assert.ErrorIs(t, s.Delete(sess, 42), types.ErrNotFound)
}

func TestQuery(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Create(validInput())
	require.NoError(t, err)
	_, err = s.Create(secondInput())
	require.NoError(t, err)

	t.Run("no filter returns all in load order", func(t *testing.T) {
		got, err := s.QueryAll(Filter{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(2), got[1].ID)
	})

	t.Run("city substring is case-insensitive", func(t *testing.T) {
		got, err := s.QueryAll(Filter{CityContains: "paulo"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "São Paulo", got[0].City)
	})

	t.Run("name substring is case-insensitive", func(t *testing.T) {
		got, err := s.QueryAll(Filter{NameContains: "ANA"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Ana Lima", got[0].FullName)
	})

	t.Run("state is exact", func(t *testing.T) {
		got, err := s.QueryAll(Filter{StateEquals: "PE"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Ana Lima", got[0].FullName)
	})

	t.Run("filters are ANDed", func(t *testing.T) {
		got, err := s.QueryAll(Filter{NameContains: "ana", StateEquals: "SP"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("sequence is restartable", func(t *testing.T) {
		seq, err := s.Query(Filter{})
		require.NoError(t, err)

		first := 0
		for range seq {
			first++
		}
		second := 0
		for range seq {
			second++
		}
		assert.Equal(t, first, second)
	})
}

func TestExport(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Create(validInput())
	require.NoError(t, err)
	_, err = s.Create(secondInput())
	require.NoError(t, err)

	b, err := s.Export(Filter{StateEquals: "PE"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2, "header plus the one matching record")
	assert.Equal(t, types.Columns(), rows[0])
	assert.Equal(t, "Ana Lima", rows[1][1])
}

func TestStorageErrorsPropagate(t *testing.T) {
	boom := errors.New("disk gone")
	s := New(&failingStorage{err: boom})

	_, err := s.Create(validInput())
	assert.ErrorIs(t, err, boom)

	_, err = s.Query(Filter{})
	assert.ErrorIs(t, err, boom)
}

// failingStorage simulates an unavailable backend.
type failingStorage struct {
	err error
}

func (f *failingStorage) Ensure() error                 { return f.err }
func (f *failingStorage) Load() ([]types.Person, error) { return nil, f.err }
func (f *failingStorage) Save(_ []types.Person) error   { return f.err }
