package types

import "testing"

func TestColumns(t *testing.T) {
	want := []string{
		"ID", "Full Name", "CPF", "RG", "Birth Date", "Email", "Phone",
		"Postal Code", "Address", "City", "State", "Profession", "Created At",
	}

	got := Columns()
	if len(got) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestColumnsReturnsCopy(t *testing.T) {
	first := Columns()
	first[0] = "mutated"

	second := Columns()
	if second[0] != ColID {
		t.Fatalf("canonical schema was mutated: got %q", second[0])
	}
}

func TestStatesCount(t *testing.T) {
	if len(States) != 27 {
		t.Fatalf("expected 27 state codes, got %d", len(States))
	}
}
