package providers

import (
	"testing"

	"github.com/rosubs/rosubs/config"
)

func TestDefaultSearchersOrder(t *testing.T) {
	conf := &config.Configuration{
		Sources: config.Sources{Subtitrari: true, SubsRo: true, Titrari: true},
	}

	searchers := DefaultSearchers(conf)
	want := []string{"subtitrari", "subsro", "titrari"}
	if len(searchers) != len(want) {
		t.Fatalf("DefaultSearchers() returned %d sources, want %d", len(searchers), len(want))
	}
	for i, name := range want {
		if searchers[i].Name() != name {
			t.Errorf("searchers[%d] = %q, want %q", i, searchers[i].Name(), name)
		}
	}
}

func TestDefaultSearchersToggles(t *testing.T) {
	conf := &config.Configuration{
		Sources: config.Sources{Titrari: true},
	}

	searchers := DefaultSearchers(conf)
	if len(searchers) != 1 || searchers[0].Name() != "titrari" {
		t.Fatalf("DefaultSearchers() = %v, want only titrari", searchers)
	}
}
