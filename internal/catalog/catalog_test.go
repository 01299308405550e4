package catalog

import (
	"testing"

	apperrors "github.com/leadscope/lead-intel-api/internal/errors"
)

func TestLeads(t *testing.T) {
	cat := New()

	leads := cat.Leads()
	if len(leads) != 10 {
		t.Fatalf("Expected 10 seeded leads, got %d", len(leads))
	}

	seen := make(map[int]bool, len(leads))
	for _, lead := range leads {
		if seen[lead.ID] {
			t.Errorf("Duplicate lead id %d", lead.ID)
		}
		seen[lead.ID] = true
		if lead.Company == "" || lead.Email == "" {
			t.Errorf("Lead %d missing core fields: %+v", lead.ID, lead)
		}
	}

	// The returned slice is a copy; mutating it must not touch the catalog.
	leads[0].Company = "Mutated Inc"
	fresh, err := cat.GetByID(leads[0].ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fresh.Company == "Mutated Inc" {
		t.Error("Mutating the returned slice leaked into the catalog")
	}
}

func TestGetByID(t *testing.T) {
	cat := New()

	lead, err := cat.GetByID(1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if lead.Company != "TechCorp Solutions" {
		t.Errorf("Expected TechCorp Solutions, got %q", lead.Company)
	}

	_, err = cat.GetByID(999)
	if err == nil {
		t.Fatal("Expected an error for an unknown id")
	}
	if !apperrors.IsNotFound(err) {
		t.Errorf("Expected a NOT_FOUND error, got %v", err)
	}
}
