// Package registry implements the person registry store: record identity,
// field validation, uniqueness enforcement, filtered querying, and
// aggregate statistics over the workbook persistence layer.
package registry

import (
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/RodneySerpa/cadastro-pf-excel/internal/xlsx"
	"github.com/RodneySerpa/cadastro-pf-excel/pkg/types"
)

// Storage is the persistence surface the store needs. *xlsx.Store
// satisfies it.
type Storage interface {
	Ensure() error
	Load() ([]types.Person, error)
	Save([]types.Person) error
}

// Store enforces record invariants over a Storage backend. Every operation
// loads the full registry, mutates it in memory, and saves it back; no
// state is cached between operations, so uniqueness is always checked
// against the persisted registry. The store assumes a single writer.
type Store struct {
	storage Storage
	now     func() time.Time
}

// New returns a Store over the given storage.
func New(storage Storage) *Store {
	return &Store{storage: storage, now: time.Now}
}

// NewWorkbookStore returns a Store over the registry workbook at path.
func NewWorkbookStore(path string) *Store {
	return New(xlsx.NewStore(path))
}

// Init creates the empty canonical store if it does not exist.
func (s *Store) Init() error {
	return s.storage.Ensure()
}

// Create validates the submitted fields, assigns identity, and persists
// the new record. Every validation failure is collected into
// types.ValidationErrors so the caller can display them all at once; the
// registry is not modified unless validation passes.
func (s *Store) Create(in types.PersonInput) (int64, error) {
	people, err := s.storage.Load()
	if err != nil {
		return 0, err
	}

	p, errs := validateFields(in)
	// Uniqueness is checked against the persisted state just loaded, and
	// only for values that passed the shape checks.
	if !errs.HasField("cpf") && cpfTaken(people, in.CPF) {
		errs = append(errs, &types.FieldError{Field: "cpf", Err: types.ErrDuplicateCPF})
	}
	if !errs.HasField("email") && emailTaken(people, in.Email) {
		errs = append(errs, &types.FieldError{Field: "email", Err: types.ErrDuplicateEmail})
	}
	if len(errs) > 0 {
		return 0, errs
	}

	p.ID = nextID(people)
	p.CreatedAt = s.now().Truncate(time.Minute)
	people = append(people, p)

	if err := s.storage.Save(people); err != nil {
		return 0, err
	}
	return p.ID, nil
}

// Get returns the record with the given id, or ErrNotFound.
func (s *Store) Get(id int64) (types.Person, error) {
	people, err := s.storage.Load()
	if err != nil {
		return types.Person{}, err
	}
	idx := indexOf(people, id)
	if idx < 0 {
		return types.Person{}, types.ErrNotFound
	}
	return people[idx], nil
}

// Update replaces the mutable fields of the record with the given id.
// Field shapes are re-validated, but CPF and email uniqueness is NOT
// re-checked on edit; updating a record into a collision is accepted.
// This mirrors the registry's historical behavior and is an open product
// question rather than an oversight. ID and CreatedAt never change.
func (s *Store) Update(id int64, in types.PersonInput) error {
	people, err := s.storage.Load()
	if err != nil {
		return err
	}
	idx := indexOf(people, id)
	if idx < 0 {
		return types.ErrNotFound
	}

	p, errs := validateFields(in)
	if len(errs) > 0 {
		return errs
	}

	p.ID = people[idx].ID
	p.CreatedAt = people[idx].CreatedAt
	people[idx] = p
	return s.storage.Save(people)
}

// Delete removes the record with the given id after a two-step
// confirmation. The first call arms the caller's session and returns
// ErrConfirmRequired without touching the registry; a second call with
// the same session and id performs the removal. Requesting a different
// id re-arms the session instead of deleting.
func (s *Store) Delete(sess *Session, id int64) error {
	people, err := s.storage.Load()
	if err != nil {
		return err
	}
	idx := indexOf(people, id)
	if idx < 0 {
		sess.Disarm()
		return types.ErrNotFound
	}

	if !sess.Armed(id) {
		sess.Arm(id)
		return types.ErrConfirmRequired
	}
	sess.Disarm()

	people = slices.Delete(people, idx, idx+1)
	return s.storage.Save(people)
}

// Filter restricts Query results. Empty fields impose no constraint; all
// supplied constraints are ANDed.
type Filter struct {
	NameContains string
	CityContains string
	StateEquals  string
}

// matches reports whether p satisfies every supplied constraint. The
// substring matches are case-insensitive.
func (f Filter) matches(p types.Person) bool {
	if f.NameContains != "" && !containsFold(p.FullName, f.NameContains) {
		return false
	}
	if f.CityContains != "" && !containsFold(p.City, f.CityContains) {
		return false
	}
	if f.StateEquals != "" && p.State != f.StateEquals {
		return false
	}
	return true
}

// Query returns the records matching f, in load order. The sequence is
// lazy and restartable: ranging over it again replays the registry as it
// was loaded by this call.
func (s *Store) Query(f Filter) (iter.Seq[types.Person], error) {
	people, err := s.storage.Load()
	if err != nil {
		return nil, err
	}
	return func(yield func(types.Person) bool) {
		for _, p := range people {
			if !f.matches(p) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}, nil
}

// QueryAll collects Query results into a slice.
func (s *Store) QueryAll(f Filter) ([]types.Person, error) {
	seq, err := s.Query(f)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// Export renders the records matching f as workbook bytes in the
// canonical layout, for download by the caller.
func (s *Store) Export(f Filter) ([]byte, error) {
	people, err := s.QueryAll(f)
	if err != nil {
		return nil, err
	}
	return xlsx.ExportBytes(people)
}

// validateFields checks the field-shape rules shared by create and update
// and returns the decoded record (identity fields unset) along with every
// failure found.
func validateFields(in types.PersonInput) (types.Person, types.ValidationErrors) {
	var errs types.ValidationErrors

	if strings.TrimSpace(in.FullName) == "" {
		errs = append(errs, &types.FieldError{Field: "full_name", Err: types.ErrMissingRequiredField})
	}
	if strings.TrimSpace(in.CPF) == "" {
		errs = append(errs, &types.FieldError{Field: "cpf", Err: types.ErrMissingRequiredField})
	} else if !types.IsValidCPF(in.CPF) {
		errs = append(errs, &types.FieldError{Field: "cpf", Err: types.ErrInvalidCPF})
	}
	if strings.TrimSpace(in.Email) == "" {
		errs = append(errs, &types.FieldError{Field: "email", Err: types.ErrMissingRequiredField})
	} else if !types.IsValidEmail(in.Email) {
		errs = append(errs, &types.FieldError{Field: "email", Err: types.ErrInvalidEmail})
	}

	var birth time.Time
	if raw := strings.TrimSpace(in.BirthDate); raw != "" {
		d, err := time.Parse(types.DateLayout, raw)
		if err != nil {
			errs = append(errs, &types.FieldError{Field: "birth_date", Err: types.ErrInvalidBirthDate})
		} else {
			birth = d
		}
	}
	if !types.IsValidState(in.State) {
		errs = append(errs, &types.FieldError{Field: "state", Err: types.ErrInvalidState})
	}

	p := types.Person{
		FullName:   in.FullName,
		CPF:        in.CPF,
		RG:         in.RG,
		BirthDate:  birth,
		Email:      in.Email,
		Phone:      in.Phone,
		PostalCode: in.PostalCode,
		Address:    in.Address,
		City:       in.City,
		State:      in.State,
		Profession: in.Profession,
	}
	return p, errs
}

// cpfTaken compares normalized CPF values so a formatted and an
// unformatted submission of the same identifier still collide.
func cpfTaken(people []types.Person, cpf string) bool {
	norm := types.NormalizeCPF(cpf)
	for _, p := range people {
		if types.NormalizeCPF(p.CPF) == norm {
			return true
		}
	}
	return false
}

func emailTaken(people []types.Person, email string) bool {
	for _, p := range people {
		if strings.EqualFold(p.Email, email) {
			return true
		}
	}
	return false
}

// nextID assigns max(existing ids)+1, 1 for an empty registry, so ids are
// never reused after a non-terminal delete.
func nextID(people []types.Person) int64 {
	var max int64
	for _, p := range people {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func indexOf(people []types.Person, id int64) int {
	for i, p := range people {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// containsFold reports whether s contains substr, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
