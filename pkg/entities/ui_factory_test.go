package entities

import (
	"testing"

	"github.com/decker502/brutalist/pkg/components"
	"github.com/decker502/brutalist/pkg/ecs"
)

func TestNewCardEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	clicked := false
	id, err := NewCardEntity(em, CardSpec{
		X: 10, Y: 20, Width: 200, Height: 120,
		Title:          "MARQUEE",
		Subtitle:       "/marquee",
		Delay:          1.4,
		EmergeDuration: 0.8,
		OnClick:        func() { clicked = true },
	})
	if err != nil {
		t.Fatalf("NewCardEntity() error: %v", err)
	}

	hover, ok := ecs.GetComponent[*components.HoverComponent](em, id)
	if !ok {
		t.Fatal("HoverComponent missing")
	}
	if !hover.Contains(50, 50) || hover.Contains(250, 50) {
		t.Errorf("hover bounds wrong: %+v", hover)
	}
	hover.OnClick()
	if !clicked {
		t.Error("OnClick not wired")
	}

	label, ok := ecs.GetComponent[*components.LabelComponent](em, id)
	if !ok || label.Title != "MARQUEE" {
		t.Errorf("unexpected label: %+v", label)
	}

	emerge, ok := ecs.GetComponent[*components.EmergeComponent](em, id)
	if !ok || emerge.Delay != 1.4 {
		t.Errorf("unexpected emerge: %+v", emerge)
	}
}

func TestNewCardEntityWithoutEmerge(t *testing.T) {
	em := ecs.NewEntityManager()
	id, err := NewCardEntity(em, CardSpec{Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("NewCardEntity() error: %v", err)
	}
	if ecs.HasComponent[*components.EmergeComponent](em, id) {
		t.Error("card without emerge duration should not get EmergeComponent")
	}
}

func TestNewCardEntityInvalidSize(t *testing.T) {
	em := ecs.NewEntityManager()
	if _, err := NewCardEntity(em, CardSpec{Title: "BAD", Width: 0, Height: 10}); err == nil {
		t.Error("expected error for zero width")
	}
}
