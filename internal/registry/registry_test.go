package registry

import (
	"testing"

	"github.com/emily-flambe/pong/internal/config"
	"github.com/emily-flambe/pong/internal/sim"
)

func TestBuiltinModesRegistered(t *testing.T) {
	for _, id := range []string{"classic", "survival", "fortress"} {
		if !Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
	}
	if Exists("nope") {
		t.Error("Exists reported an unregistered mode")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	infos := List()
	if len(infos) < 3 {
		t.Fatalf("got %d modes, want at least 3", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Errorf("list not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}
	for _, info := range infos {
		if info.Title == "" || info.Description == "" {
			t.Errorf("mode %q missing title or description", info.ID)
		}
	}
}

func TestCreateBuildsMatch(t *testing.T) {
	m, err := Create("fortress", Options{Seed: 42})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.Mode() != sim.ModeFortress {
		t.Errorf("mode = %v, want fortress", m.Mode())
	}
	if m.Phase() != sim.PhaseNotStarted {
		t.Errorf("phase = %v, want not started", m.Phase())
	}
}

func TestCreateUnknownMode(t *testing.T) {
	if _, err := Create("nope", Options{}); err == nil {
		t.Fatal("Create accepted an unknown mode")
	}
}

func TestCreateAppliesPreset(t *testing.T) {
	normal, err := Create("survival", Options{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	hard, err := Create("survival", Options{Preset: config.DifficultyHard})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if hard.Lives() >= normal.Lives() {
		t.Errorf("hard lives = %d, normal lives = %d, want fewer on hard", hard.Lives(), normal.Lives())
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("duplicate registration did not panic")
		}
	}()
	Register(ModeInfo{ID: "classic"}, nil)
}
