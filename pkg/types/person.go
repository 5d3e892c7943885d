package types

import "time"

// Person represents one registrant in the registry.
type Person struct {
	ID         int64     `json:"id"`         // Positive, unique, assigned by the store on creation.
	FullName   string    `json:"full_name"`  // Required, non-empty.
	CPF        string    `json:"cpf"`        // Required; 11 digits after normalization; unique.
	RG         string    `json:"rg,omitempty"`
	BirthDate  time.Time `json:"birth_date,omitzero"` // Optional; zero value means absent.
	Email      string    `json:"email"` // Required; unique.
	Phone      string    `json:"phone,omitempty"`
	PostalCode string    `json:"postal_code,omitempty"`
	Address    string    `json:"address,omitempty"`
	City       string    `json:"city,omitempty"`
	State      string    `json:"state,omitempty"` // One of the recognized codes, or empty.
	Profession string    `json:"profession,omitempty"`
	CreatedAt  time.Time `json:"created_at"` // Assigned by the store on creation, minute precision.
}

// PersonInput carries raw caller-submitted field values for create and
// update. All fields are uninterpreted strings until validated by the
// registry store; BirthDate uses the DD/MM/YYYY layout.
type PersonInput struct {
	FullName   string `json:"full_name"`
	CPF        string `json:"cpf"`
	RG         string `json:"rg"`
	BirthDate  string `json:"birth_date"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PostalCode string `json:"postal_code"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Profession string `json:"profession"`
}

// PersonSummary is the column subset shown by query results: id, name,
// cpf, email, phone, city, state.
type PersonSummary struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	CPF      string `json:"cpf"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
}

// Summary projects the record onto the query display columns.
func (p Person) Summary() PersonSummary {
	return PersonSummary{
		ID:       p.ID,
		FullName: p.FullName,
		CPF:      p.CPF,
		Email:    p.Email,
		Phone:    p.Phone,
		City:     p.City,
		State:    p.State,
	}
}

// Input returns the record's mutable fields in caller-submission form,
// with the birth date formatted per the canonical layout. Identity fields
// (ID, CreatedAt) are not part of the input.
func (p Person) Input() PersonInput {
	var birth string
	if !p.BirthDate.IsZero() {
		birth = p.BirthDate.Format(DateLayout)
	}
	return PersonInput{
		FullName:   p.FullName,
		CPF:        p.CPF,
		RG:         p.RG,
		BirthDate:  birth,
		Email:      p.Email,
		Phone:      p.Phone,
		PostalCode: p.PostalCode,
		Address:    p.Address,
		City:       p.City,
		State:      p.State,
		Profession: p.Profession,
	}
}
