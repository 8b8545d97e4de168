package entities

import (
	"testing"

	"github.com/decker502/brutalist/pkg/components"
	"github.com/decker502/brutalist/pkg/ecs"
	"github.com/decker502/brutalist/pkg/scroll"
)

func TestNewLetterEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	word := scroll.MustWord("INK", 64, 40, 0)
	state := scroll.Compute(40, word, scroll.DefaultRevealOptions())

	// s=40 时第一个字母被隐藏，叠到序号最小的可见单元上
	unit := state.Units[0]
	id, err := NewLetterEntity(em, 0, word, unit, 100, 50, 1.2)
	if err != nil {
		t.Fatalf("NewLetterEntity() error: %v", err)
	}

	letter, ok := ecs.GetComponent[*components.LetterComponent](em, id)
	if !ok {
		t.Fatal("LetterComponent missing")
	}
	if letter.Rune != 'I' || letter.Visible {
		t.Errorf("unexpected letter: %+v", letter)
	}

	tween, ok := ecs.GetComponent[*components.OffsetTweenComponent](em, id)
	if !ok {
		t.Fatal("OffsetTweenComponent missing")
	}
	if tween.Offset() != 64 || !tween.Tween.Done() {
		t.Errorf("tween should rest at 64, got %v", tween.Offset())
	}

	visual, _ := ecs.GetComponent[*components.VisualComponent](em, id)
	if visual.StackDepth != 1 || visual.Opacity >= 1 {
		t.Errorf("unexpected visual for hidden letter: %+v", visual)
	}
}

func TestNewLetterEntityOutOfRange(t *testing.T) {
	em := ecs.NewEntityManager()
	word := scroll.MustWord("INK", 64, 40, 0)
	if _, err := NewLetterEntity(em, 0, word, scroll.UnitState{Index: 5}, 0, 0, 1); err == nil {
		t.Error("expected error for out-of-range unit index")
	}
}
