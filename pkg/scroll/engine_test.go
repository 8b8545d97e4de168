package scroll

import "testing"

// TestEngineStepTicksCursorFirst 同一帧内揭示计算必须看到已推进的游标
func TestEngineStepTicksCursorFirst(t *testing.T) {
	cursor := NewCursor(CursorConfig{Mode: CursorSmoothed, EaseFactor: 0.5})
	e := NewEngine(cursor, DefaultRevealOptions())
	e.AddWord(MustWord("BRUTALIST", 0, 40, 0))

	cursor.OnWheelDelta(160)

	// 推进后位置为 80，隐藏 2 个
	states := e.Step(1.0 / 60.0)
	if cursor.Position() != 80 {
		t.Fatalf("cursor Position: got %v, want 80", cursor.Position())
	}
	if states[0].LettersVisible != 7 {
		t.Errorf("LettersVisible: got %d, want 7", states[0].LettersVisible)
	}
}

func TestEngineSnapshotDoesNotTick(t *testing.T) {
	cursor := NewCursor(DefaultCursorConfig())
	e := NewEngine(cursor, DefaultRevealOptions())
	e.AddWord(MustWord("INK", 0, 10, 0))

	cursor.OnWheelDelta(500)
	e.Snapshot()
	e.Snapshot()

	if cursor.Position() != 0 {
		t.Errorf("Snapshot must not move the cursor, got %v", cursor.Position())
	}
}

func TestEngineWordsCopy(t *testing.T) {
	e := NewEngine(nil, DefaultRevealOptions())
	idx := e.AddWord(MustWord("ASH", 0, 10, 0))
	if idx != 0 {
		t.Errorf("AddWord index: got %d, want 0", idx)
	}

	words := e.Words()
	words[0] = MustWord("STEEL", 0, 10, 0)
	if e.Words()[0].Text() != "ASH" {
		t.Error("Words() must return a copy")
	}
}

func TestEngineReset(t *testing.T) {
	e := NewEngine(nil, DefaultRevealOptions())
	e.Cursor().OnWheelDelta(300)
	e.Step(1.0 / 60.0)
	e.Reset()

	if e.Cursor().Position() != 0 {
		t.Errorf("Reset: cursor at %v, want 0", e.Cursor().Position())
	}
}
