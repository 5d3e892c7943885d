package types

// Canonical workbook column headers.
const (
	ColID         = "ID"
	ColFullName   = "Full Name"
	ColCPF        = "CPF"
	ColRG         = "RG"
	ColBirthDate  = "Birth Date"
	ColEmail      = "Email"
	ColPhone      = "Phone"
	ColPostalCode = "Postal Code"
	ColAddress    = "Address"
	ColCity       = "City"
	ColState      = "State"
	ColProfession = "Profession"
	ColCreatedAt  = "Created At"
)

// columnOrder is the fixed persisted order of the canonical schema.
var columnOrder = []string{
	ColID,
	ColFullName,
	ColCPF,
	ColRG,
	ColBirthDate,
	ColEmail,
	ColPhone,
	ColPostalCode,
	ColAddress,
	ColCity,
	ColState,
	ColProfession,
	ColCreatedAt,
}

// Columns returns the canonical 13-column schema in persisted order.
// Every stored workbook and export uses exactly this header.
func Columns() []string {
	cols := make([]string, len(columnOrder))
	copy(cols, columnOrder)
	return cols
}

// Persisted date layouts: plain dates and creation timestamps.
const (
	DateLayout      = "02/01/2006"
	TimestampLayout = "02/01/2006 15:04"
)

// States lists the 27 recognized two-letter state codes.
var States = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO",
	"MA", "MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI",
	"RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

// validStates is the lookup set for IsValidState.
var validStates = func() map[string]bool {
	m := make(map[string]bool, len(States))
	for _, s := range States {
		m[s] = true
	}
	return m
}()

// IsValidState reports whether code is a recognized state code. The empty
// string is accepted: state is an optional field.
func IsValidState(code string) bool {
	return code == "" || validStates[code]
}
