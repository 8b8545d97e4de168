package scenes

import (
	"math"
	"testing"

	"github.com/decker502/brutalist/pkg/utils"
)

func TestImageHoverPreviewFollowsPointer(t *testing.T) {
	in := utils.InputState{X: 600, Y: 200}
	stubInput(t, &in)

	var navs []string
	s := NewImageHoverScene()
	s.Mount(newTestContext(t, &navs))

	runFrames(s, 60)
	if s.Active() != 0 {
		t.Fatalf("first row should be active, got %d", s.Active())
	}
	if math.Abs(s.previewX-600) > 1 || math.Abs(s.previewY-200) > 1 {
		t.Errorf("preview should settle on the pointer, got (%v, %v)", s.previewX, s.previewY)
	}

	in.Y = 10
	runFrames(s, 1)
	if s.Active() != -1 {
		t.Errorf("no row should be active above the list, got %d", s.Active())
	}
}

func TestTileOffsetClamped(t *testing.T) {
	dx, dy := tileOffset(0, 0, 100, 0)
	if dx != 6 || dy != 0 {
		t.Errorf("small pull: got (%v, %v)", dx, dy)
	}
	dx, dy = tileOffset(0, 0, 3000, 4000)
	if d := math.Hypot(dx, dy); math.Abs(d-gridMaxOffset) > 1e-9 {
		t.Errorf("offset should be clamped to %v, got %v", gridMaxOffset, d)
	}
}

func TestNotFoundShowsRequestedPath(t *testing.T) {
	in := utils.InputState{X: -1, Y: -1}
	stubInput(t, &in)

	var navs []string
	s := NewNotFoundScene()
	s.Mount(newTestContext(t, &navs))
	if s.Path() != "/test" {
		t.Errorf("Path: got %q, want /test", s.Path())
	}

	in.X, in.Y, in.JustPressed = 100, 500, true
	runFrames(s, 1)
	if len(navs) != 1 || navs[0] != "/" {
		t.Errorf("back link should navigate home, got %v", navs)
	}
}

func TestTeamBadgePulse(t *testing.T) {
	if badgeScale(0) != 1 {
		t.Error("badge should start at scale 1")
	}
	peak := badgeScale(1 / (4 * teamPulseHz))
	if math.Abs(peak-1.08) > 1e-9 {
		t.Errorf("peak scale: got %v, want 1.08", peak)
	}
}
