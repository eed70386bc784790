package registry

import (
	"testing"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                          { return g.id }
func (g stubGame) Title() string                       { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) error      { return nil }
func (g stubGame) Step(core.TickInput) core.StepResult { return core.StepResult{} }
func (g stubGame) DrawList() []core.DrawItem           { return nil }
func (g stubGame) State() core.GameState               { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return stubGame{id: "aa-stub"} })

	if !Exists("zz-stub") || Exists("missing") {
		t.Error("Exists reports the wrong scenarios")
	}

	g, err := Create("aa-stub")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "aa-stub" {
		t.Errorf("created %q, expected aa-stub", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create should fail for unknown scenarios")
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	if len(ids) < 2 || ids[0] != "aa-stub" || ids[len(ids)-1] != "zz-stub" {
		t.Errorf("List() = %v, expected sorted ids", ids)
	}
	if list[0].Title != "Stub aa-stub" {
		t.Errorf("title = %q", list[0].Title)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("registering an id twice should panic")
		}
	}()
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })
}
