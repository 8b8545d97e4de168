package scenes

import (
	"testing"

	"github.com/decker502/brutalist/pkg/utils"
)

func TestLoaderTimelineNavigatesHome(t *testing.T) {
	in := utils.InputState{}
	stubInput(t, &in)

	var navs []string
	s := NewLoaderScene()
	s.Mount(newTestContext(t, &navs))

	if s.Phase() != phaseCount {
		t.Fatalf("initial phase: got %q, want count", s.Phase())
	}

	// count 阶段 3 秒
	runFrames(s, 90)
	if c := s.Count(); c <= 0 || c >= 100 {
		t.Errorf("count mid-phase: got %d", c)
	}

	runFrames(s, 100)
	if s.Phase() != phaseHold {
		t.Errorf("phase after count: got %q, want hold", s.Phase())
	}
	if s.Count() != 100 {
		t.Errorf("count after count phase: got %d, want 100", s.Count())
	}
	if len(navs) != 0 {
		t.Fatalf("navigated too early: %v", navs)
	}

	// hold 0.4 秒 + morph 2 秒
	runFrames(s, 160)
	if len(navs) != 1 || navs[0] != "/" {
		t.Errorf("navigations: got %v, want [/]", navs)
	}
}

// TestLoaderUnmountCancelsNavigation 卸载后时间线不能再跳转
func TestLoaderUnmountCancelsNavigation(t *testing.T) {
	in := utils.InputState{}
	stubInput(t, &in)

	var navs []string
	s := NewLoaderScene()
	s.Mount(newTestContext(t, &navs))
	runFrames(s, 60)

	s.Unmount()
	if s.sched.Pending() != 0 {
		t.Errorf("pending callbacks after unmount: %d", s.sched.Pending())
	}

	// 即使继续推进调度器也不会触发任何阶段
	for i := 0; i < 600; i++ {
		s.sched.Advance(frameDT)
	}
	if len(navs) != 0 {
		t.Errorf("navigation after unmount: %v", navs)
	}
	if !s.timeline.Cancelled() {
		t.Error("timeline should be cancelled")
	}
}
