package systems

import (
	"math"
	"testing"

	"github.com/decker502/brutalist/pkg/components"
	"github.com/decker502/brutalist/pkg/ecs"
	"github.com/decker502/brutalist/pkg/scroll"
)

const frameDT = 1.0 / 60.0

// newTestReveal 创建原生模式的引擎（游标一帧到位），便于断言
func newTestReveal(t *testing.T, words ...scroll.Word) (*ecs.EntityManager, *scroll.Engine, *RevealSystem) {
	t.Helper()
	cfg := scroll.DefaultCursorConfig()
	cfg.Mode = scroll.CursorNative
	engine := scroll.NewEngine(scroll.NewCursor(cfg), scroll.DefaultRevealOptions())
	for _, w := range words {
		engine.AddWord(w)
	}

	em := ecs.NewEntityManager()
	rs := NewRevealSystem(em, engine, 1.2)
	if _, err := rs.SpawnLetters(func(i int) (float64, float64) { return float64(i) * 100, 0 }); err != nil {
		t.Fatalf("SpawnLetters() error: %v", err)
	}
	return em, engine, rs
}

func TestRevealSystemSpawn(t *testing.T) {
	em, _, rs := newTestReveal(t, scroll.MustWord("BRUTALIST", 64, 40, 80), scroll.MustWord("INK", 64, 55, 0))

	if got := len(ecs.GetEntitiesWith1[*components.LetterComponent](em)); got != 12 {
		t.Fatalf("expected 12 letters, got %d", got)
	}
	if len(rs.Letters(0)) != 9 || len(rs.Letters(1)) != 3 || rs.Letters(2) != nil {
		t.Error("Letters() returned wrong groups")
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, rs.Letters(1)[0])
	if pos.X != 100 {
		t.Errorf("second word origin: got %v, want 100", pos.X)
	}
}

func TestRevealSystemRetargetsTweens(t *testing.T) {
	em, engine, rs := newTestReveal(t, scroll.MustWord("BRUTALIST", 64, 40, 80))

	// s = 160 → 隐藏 2 个，可见 7 个
	engine.Cursor().OnWheelDelta(160)
	rs.Update(frameDT)

	states := rs.States()
	if states[0].LettersVisible != 7 {
		t.Fatalf("LettersVisible: got %d, want 7", states[0].LettersVisible)
	}

	first := rs.Letters(0)[0]
	letter, _ := ecs.GetComponent[*components.LetterComponent](em, first)
	if letter.Visible {
		t.Error("letter 0 should be hidden")
	}
	tween, _ := ecs.GetComponent[*components.OffsetTweenComponent](em, first)
	if tween.Tween.To != 2*64 {
		t.Errorf("tween target: got %v, want 128", tween.Tween.To)
	}
	// 插值刚开始，位移仍在起点附近
	if tween.Offset() != 0 {
		t.Errorf("tween should not have advanced yet, got %v", tween.Offset())
	}

	tweens := NewTweenSystem(em)
	if tweens.Settled() {
		t.Error("tweens should be in flight")
	}
	for i := 0; i < 80; i++ {
		tweens.Update(frameDT)
	}
	if !tweens.Settled() {
		t.Error("tweens should settle after the transition")
	}
	if math.Abs(tween.Offset()-128) > 1e-9 {
		t.Errorf("settled offset: got %v, want 128", tween.Offset())
	}

	visual, _ := ecs.GetComponent[*components.VisualComponent](em, first)
	if visual.Blur <= 0 || visual.Opacity >= 1 || visual.StackDepth != 1 {
		t.Errorf("unexpected visual for hidden letter: %+v", visual)
	}
}

func TestRevealSystemReducedMotion(t *testing.T) {
	em, engine, rs := newTestReveal(t, scroll.MustWord("INK", 64, 40, 0))
	rs.SetTransition(0)

	engine.Cursor().OnWheelDelta(80)
	rs.Update(frameDT)

	tween, _ := ecs.GetComponent[*components.OffsetTweenComponent](em, rs.Letters(0)[0])
	if tween.Offset() != 2*64 {
		t.Errorf("zero transition should jump to target, got %v", tween.Offset())
	}
}

func TestRevealSystemSyncDoesNotAdvanceCursor(t *testing.T) {
	_, engine, rs := newTestReveal(t, scroll.MustWord("INK", 64, 40, 0))
	engine.Cursor().OnWheelDelta(80)
	rs.Sync()
	if rs.States()[0].LettersVisible != 3 {
		t.Errorf("Sync must not tick the cursor, got %d visible", rs.States()[0].LettersVisible)
	}
}

// TestRevealSystemMotionToggleKeepsSettledOffsets 关闭再打开动效，已停稳的字母不动
func TestRevealSystemMotionToggleKeepsSettledOffsets(t *testing.T) {
	em, engine, rs := newTestReveal(t, scroll.MustWord("INK", 64, 40, 0))
	tweens := NewTweenSystem(em)

	engine.Cursor().OnWheelDelta(80)
	rs.Update(frameDT)
	for i := 0; i < 100; i++ {
		tweens.Update(frameDT)
	}

	tween, _ := ecs.GetComponent[*components.OffsetTweenComponent](em, rs.Letters(0)[0])
	if tween.Offset() != 128 {
		t.Fatalf("settled offset: got %v, want 128", tween.Offset())
	}

	rs.SetTransition(0)
	if tween.Offset() != 128 {
		t.Errorf("reduced motion moved a settled letter to %v", tween.Offset())
	}
	rs.SetTransition(1.2)
	if tween.Offset() != 128 {
		t.Errorf("re-enabling motion moved a settled letter to %v", tween.Offset())
	}
	if !tweens.Settled() {
		t.Error("re-enabling motion must not replay finished tweens")
	}
}

// TestRevealSystemMotionToggleFreezesInFlight 移动中的字母在关闭动效时停在原地
func TestRevealSystemMotionToggleFreezesInFlight(t *testing.T) {
	em, engine, rs := newTestReveal(t, scroll.MustWord("INK", 64, 40, 0))
	tweens := NewTweenSystem(em)

	engine.Cursor().OnWheelDelta(80)
	rs.Update(frameDT)
	for i := 0; i < 20; i++ {
		tweens.Update(frameDT)
	}

	tween, _ := ecs.GetComponent[*components.OffsetTweenComponent](em, rs.Letters(0)[0])
	mid := tween.Offset()
	if mid <= 0 || mid >= 128 {
		t.Fatalf("letter should be in flight, got %v", mid)
	}

	rs.SetTransition(0)
	if tween.Offset() != mid {
		t.Errorf("pausing jumped from %v to %v", mid, tween.Offset())
	}

	// 恢复后从冻结位置继续移动到目标
	rs.SetTransition(1.2)
	if tween.Offset() != mid {
		t.Errorf("resuming jumped from %v to %v", mid, tween.Offset())
	}
	rs.Update(frameDT)
	tweens.Update(frameDT)
	if got := tween.Offset(); got < mid || got > 128 {
		t.Errorf("resumed letter should move toward 128 from %v, got %v", mid, got)
	}
	for i := 0; i < 100; i++ {
		tweens.Update(frameDT)
	}
	if math.Abs(tween.Offset()-128) > 1e-9 {
		t.Errorf("resumed letter should settle at 128, got %v", tween.Offset())
	}
}
