package frame

import (
	"math"
	"testing"
)

func TestTimelineRunsPhasesInOrder(t *testing.T) {
	s := NewScheduler()
	var events []string
	var lastCount float64

	tl := NewTimeline(s,
		Phase{
			Name:     "count",
			Duration: 1.0,
			OnEnter:  func() { events = append(events, "enter:count") },
			OnUpdate: func(p float64) { lastCount = p * 100 },
			OnExit:   func() { events = append(events, "exit:count") },
		},
		Phase{
			Name:     "hold",
			Duration: 0.5,
			OnEnter:  func() { events = append(events, "enter:hold") },
		},
		Phase{
			Name:    "navigate",
			OnEnter: func() { events = append(events, "enter:navigate") },
		},
	)
	completed := false
	tl.OnComplete(func() { completed = true })

	tl.Start()
	if tl.Current() != "count" {
		t.Fatalf("Current after Start: got %q, want count", tl.Current())
	}

	for i := 0; i < 30; i++ {
		s.Advance(frameDT)
	}
	if tl.Current() != "count" {
		t.Fatalf("Current at 0.5s: got %q, want count", tl.Current())
	}
	if math.Abs(lastCount-50) > 1e-6 {
		t.Errorf("count at 0.5s: got %v, want 50", lastCount)
	}

	for i := 0; i < 120; i++ {
		s.Advance(frameDT)
	}

	if !completed || !tl.Done() {
		t.Fatalf("timeline not completed: done=%v completed=%v current=%q", tl.Done(), completed, tl.Current())
	}
	if lastCount != 100 {
		t.Errorf("final count: got %v, want 100", lastCount)
	}

	want := []string{"enter:count", "exit:count", "enter:hold", "enter:navigate"}
	if len(events) != len(want) {
		t.Fatalf("events: got %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d]: got %q, want %q", i, events[i], want[i])
		}
	}
}

func TestTimelineCancelStopsCallbacks(t *testing.T) {
	s := NewScheduler()
	navigated := false

	tl := NewTimeline(s,
		Phase{Name: "count", Duration: 0.2},
		Phase{Name: "navigate", OnEnter: func() { navigated = true }},
	)
	tl.Start()
	s.Advance(0.1)
	tl.Cancel()

	for i := 0; i < 60; i++ {
		s.Advance(frameDT)
	}
	if navigated {
		t.Error("cancelled timeline still reached navigate phase")
	}
	if !tl.Cancelled() || tl.Current() != "" {
		t.Errorf("after Cancel: cancelled=%v current=%q", tl.Cancelled(), tl.Current())
	}
}

// TestTimelineCancelledByUnmount 驱动卸载时（CancelAll）时间线一并停止
func TestTimelineCancelledByUnmount(t *testing.T) {
	s := NewScheduler()
	d := NewDriver("loader", s, func(dt float64) {})
	navigated := false

	tl := NewTimeline(s,
		Phase{Name: "count", Duration: 0.5},
		Phase{Name: "navigate", OnEnter: func() { navigated = true }},
	)
	d.Start()
	tl.Start()
	s.Advance(0.1)

	d.Unmount()
	for i := 0; i < 120; i++ {
		s.Advance(frameDT)
	}
	if navigated {
		t.Error("timeline fired after unmount")
	}
}

// TestTimelineSchedulerCancelAllWithoutCancel 调度器 CancelAll 后时间线不再报告旧阶段
func TestTimelineSchedulerCancelAllWithoutCancel(t *testing.T) {
	s := NewScheduler()
	entered := 0
	tl := NewTimeline(s,
		Phase{Name: "count", Duration: 0.5},
		Phase{Name: "navigate", OnEnter: func() { entered++ }},
	)
	tl.Start()
	s.Advance(0.1)
	if tl.Current() != "count" {
		t.Fatalf("before CancelAll: current=%q, want count", tl.Current())
	}

	s.CancelAll()
	if got := tl.Current(); got != "" {
		t.Errorf("after CancelAll: current=%q, want empty", got)
	}
	if !tl.Cancelled() || tl.Done() {
		t.Errorf("after CancelAll: cancelled=%v done=%v, want true/false", tl.Cancelled(), tl.Done())
	}
	if tl.Progress() != 0 {
		t.Errorf("after CancelAll: progress=%v, want 0", tl.Progress())
	}

	for i := 0; i < 60; i++ {
		s.Advance(frameDT)
	}
	if entered != 0 {
		t.Errorf("phase entered %d times after CancelAll", entered)
	}
	tl.Start()
	if tl.Current() != "" {
		t.Errorf("restarted after CancelAll: current=%q", tl.Current())
	}
}

func TestTimelineZeroDurationPhasesCompleteInOneFrame(t *testing.T) {
	s := NewScheduler()
	entered := 0
	tl := NewTimeline(s,
		Phase{Name: "a", OnEnter: func() { entered++ }},
		Phase{Name: "b", OnEnter: func() { entered++ }},
	)
	tl.Start()
	s.Advance(frameDT)

	if !tl.Done() || entered != 2 {
		t.Errorf("done=%v entered=%d, want true/2", tl.Done(), entered)
	}
	if tl.Progress() != 1 {
		t.Errorf("Progress after done: got %v, want 1", tl.Progress())
	}
}

func TestTimelineEmpty(t *testing.T) {
	s := NewScheduler()
	tl := NewTimeline(s)
	completed := false
	tl.OnComplete(func() { completed = true })
	tl.Start()

	if !tl.Done() || !completed {
		t.Error("empty timeline should complete immediately")
	}
}
