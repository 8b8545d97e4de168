package systems

import (
	"testing"

	"github.com/decker502/brutalist/pkg/components"
	"github.com/decker502/brutalist/pkg/ecs"
	"github.com/decker502/brutalist/pkg/entities"
	"github.com/decker502/brutalist/pkg/utils"
)

func TestHoverSystem(t *testing.T) {
	em := ecs.NewEntityManager()
	hs := NewHoverSystem(em)

	clicks := 0
	id, _ := entities.NewCardEntity(em, entities.CardSpec{
		X: 0, Y: 0, Width: 100, Height: 100,
		OnClick: func() { clicks++ },
	})
	hover, _ := ecs.GetComponent[*components.HoverComponent](em, id)

	tests := []struct {
		name        string
		input       utils.InputState
		wantHovered bool
		wantClicks  int
	}{
		{"指针在外", utils.InputState{X: 200, Y: 200}, false, 0},
		{"指针悬停", utils.InputState{X: 50, Y: 50}, true, 0},
		{"悬停并点击", utils.InputState{X: 50, Y: 50, JustPressed: true}, true, 1},
		{"在外点击", utils.InputState{X: 500, Y: 50, JustPressed: true}, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs.Update(frameDT, tt.input)
			if hover.Hovered != tt.wantHovered {
				t.Errorf("Hovered: got %v, want %v", hover.Hovered, tt.wantHovered)
			}
			if clicks != tt.wantClicks {
				t.Errorf("clicks: got %d, want %d", clicks, tt.wantClicks)
			}
			if tt.wantHovered && hs.Hovered() != id {
				t.Errorf("Hovered(): got %d, want %d", hs.Hovered(), id)
			}
		})
	}
}

func TestHoverLiftSmoothing(t *testing.T) {
	em := ecs.NewEntityManager()
	hs := NewHoverSystem(em)
	id, _ := entities.NewCardEntity(em, entities.CardSpec{Width: 10, Height: 10})
	hover, _ := ecs.GetComponent[*components.HoverComponent](em, id)

	in := utils.InputState{X: 5, Y: 5}
	prev := 0.0
	for i := 0; i < 30; i++ {
		hs.Update(frameDT, in)
		if hover.Lift < prev || hover.Lift > 1 {
			t.Fatalf("Lift not monotonic in [0,1]: %v after %v", hover.Lift, prev)
		}
		prev = hover.Lift
	}
	if hover.Lift < 0.9 {
		t.Errorf("Lift should approach 1, got %v", hover.Lift)
	}

	hs.Update(frameDT, utils.InputState{X: 50, Y: 50})
	if hover.HoverTime != 0 || hover.Lift >= prev {
		t.Errorf("leaving should reset HoverTime and lower Lift: %+v", hover)
	}
}

func TestHoverTopmostWins(t *testing.T) {
	em := ecs.NewEntityManager()
	hs := NewHoverSystem(em)
	bottom, _ := entities.NewCardEntity(em, entities.CardSpec{Width: 100, Height: 100})
	top, _ := entities.NewCardEntity(em, entities.CardSpec{X: 50, Width: 100, Height: 100})

	hs.Update(frameDT, utils.InputState{X: 75, Y: 10})
	if hs.Hovered() != top {
		t.Errorf("expected top card %d, got %d", top, hs.Hovered())
	}
	b, _ := ecs.GetComponent[*components.HoverComponent](em, bottom)
	if b.Hovered {
		t.Error("bottom card must not be hovered when covered")
	}
}
