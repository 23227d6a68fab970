package client

import (
	"errors"
	"testing"
)

func TestValidateFields(t *testing.T) {
	if err := ValidateFields("Ana", "ana@x.com", "1"); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	if err := ValidateFields("", "ana@x.com", "1"); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected missing fields, got %v", err)
	}
	if err := ValidateFields("Ana", "ana@x.com", "  "); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("blank phone must count as missing, got %v", err)
	}
	if err := ValidateFields("Ana", "ana.x.com", "1"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected invalid email, got %v", err)
	}
}

func TestNormalizeStatus(t *testing.T) {
	if st, _ := NormalizeStatus(""); st != StatusActive {
		t.Fatalf("expected default ATIVO, got %q", st)
	}
	if st, _ := NormalizeStatus("inativo"); st != StatusInactive {
		t.Fatalf("expected INATIVO, got %q", st)
	}
	if _, err := NormalizeStatus("bloqueado"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}
}
