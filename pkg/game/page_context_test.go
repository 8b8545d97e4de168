package game

import "testing"

func TestSessionMarkVisited(t *testing.T) {
	s := NewSession()
	if s.Visited("home") {
		t.Error("fresh session should have no flags")
	}
	if !s.MarkVisited("home") {
		t.Error("first MarkVisited should return true")
	}
	if s.MarkVisited("home") {
		t.Error("second MarkVisited should return false")
	}
	if !s.Visited("home") {
		t.Error("flag not stored")
	}
}

func TestScrollLock(t *testing.T) {
	l := NewScrollLock()
	if l.Locked() {
		t.Fatal("new lock should be unlocked")
	}

	l.Acquire("nav")
	l.Acquire("nav")
	l.Acquire("dialog")
	if !l.Locked() || len(l.Holders()) != 2 {
		t.Fatalf("expected 2 holders, got %v", l.Holders())
	}

	l.Release("nav")
	if !l.Locked() {
		t.Error("lock should stay while dialog holds it")
	}
	l.Release("dialog")
	l.Release("unknown")
	if l.Locked() {
		t.Error("lock should be released")
	}
}

func TestNewPageContextDefaults(t *testing.T) {
	ctx := NewPageContext(nil, nil, nil)
	if ctx.Config == nil || ctx.Settings == nil || ctx.Resources == nil {
		t.Fatal("NewPageContext should fill nil dependencies")
	}
	if ctx.Session == nil || ctx.ScrollLock == nil {
		t.Fatal("session and scroll lock must be created")
	}
}
