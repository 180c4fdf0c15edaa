package mood

import (
	"errors"
	"testing"

	"github.com/biblethink/biblethink-api/internal/bible"
)

func TestCatalogIntegrity(t *testing.T) {
	all := All()
	if len(all) != 12 {
		t.Fatalf("expected 12 moods, got %d", len(all))
	}

	seen := make(map[string]bool)
	for _, m := range all {
		if m.ID == "" || m.Name == "" || m.Description == "" {
			t.Errorf("mood %q is missing fields", m.ID)
		}
		if seen[m.ID] {
			t.Errorf("duplicate mood id %q", m.ID)
		}
		seen[m.ID] = true

		if len(m.Passages) == 0 {
			t.Errorf("mood %q has no passages", m.ID)
		}
		// Every curated reference must be resolvable grammar.
		for _, ref := range m.Passages {
			if _, err := bible.ParseReference(ref); err != nil {
				t.Errorf("mood %q: reference %q does not parse: %v", m.ID, ref, err)
			}
		}
	}
}

func TestByID(t *testing.T) {
	m, err := ByID("anxious")
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "Anxious" {
		t.Errorf("unexpected mood: %+v", m)
	}

	if _, err := ByID("ecstatic"); !errors.Is(err, ErrMoodNotFound) {
		t.Errorf("expected ErrMoodNotFound, got %v", err)
	}
}

func TestRandomReference(t *testing.T) {
	m, err := ByID("hopeful")
	if err != nil {
		t.Fatal(err)
	}
	members := make(map[string]bool, len(m.Passages))
	for _, ref := range m.Passages {
		members[ref] = true
	}

	for i := 0; i < 20; i++ {
		ref, err := RandomReference("hopeful")
		if err != nil {
			t.Fatal(err)
		}
		if !members[ref] {
			t.Fatalf("picked reference %q not in catalog", ref)
		}
	}

	if _, err := RandomReference("ecstatic"); !errors.Is(err, ErrMoodNotFound) {
		t.Errorf("expected ErrMoodNotFound, got %v", err)
	}
}
