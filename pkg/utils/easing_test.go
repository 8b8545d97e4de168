package utils

import (
	"math"
	"testing"
)

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	// 开始快于线性
	for p := 0.1; p < 0.5; p += 0.1 {
		if EaseOutCubic(p) <= EaseLinear(p) {
			t.Errorf("EaseOutCubic(%v) 应该大于线性值", p)
		}
	}
}

func TestEaseInOutCubicSymmetry(t *testing.T) {
	for p := 0.05; p < 0.5; p += 0.05 {
		a := EaseInOutCubic(p)
		b := 1 - EaseInOutCubic(1-p)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("EaseInOutCubic 不对称: f(%v)=%v, 1-f(1-%v)=%v", p, a, p, b)
		}
	}
}

func TestEaseOutBackEndpoints(t *testing.T) {
	if math.Abs(EaseOutBack(0)) > 1e-9 || math.Abs(EaseOutBack(1)-1) > 1e-9 {
		t.Errorf("EaseOutBack endpoints: f(0)=%v f(1)=%v", EaseOutBack(0), EaseOutBack(1))
	}
	// 过冲
	overshoot := false
	for p := 0.5; p < 1; p += 0.05 {
		if EaseOutBack(p) > 1 {
			overshoot = true
		}
	}
	if !overshoot {
		t.Error("EaseOutBack 应该有过冲")
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0.3, 0.3},
		{2, 1},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTweenReachesTarget(t *testing.T) {
	tw := NewTween(0, 1.2, EaseOutCubic)
	tw.Retarget(300)

	if tw.Value() != 0 {
		t.Fatalf("Value right after Retarget: got %v, want 0", tw.Value())
	}

	tw.Advance(0.6)
	mid := tw.Value()
	if mid <= 150 || mid >= 300 {
		t.Errorf("ease-out midpoint should be past half way: got %v", mid)
	}

	tw.Advance(0.6)
	if !tw.Done() || tw.Value() != 300 {
		t.Errorf("after full duration: done=%v value=%v", tw.Done(), tw.Value())
	}
}

// TestTweenRetargetIsContinuous 中途改变目标时位置不跳变
func TestTweenRetargetIsContinuous(t *testing.T) {
	tw := NewTween(0, 1.0, EaseOutCubic)
	tw.Retarget(100)
	tw.Advance(0.3)
	before := tw.Value()

	tw.Retarget(-50)
	if tw.Value() != before {
		t.Errorf("Value jumped on Retarget: %v -> %v", before, tw.Value())
	}
	if tw.Done() {
		t.Error("Retarget should restart the tween")
	}

	// 相同目标不会重启
	tw.Advance(0.5)
	elapsed := tw.Elapsed
	tw.Retarget(-50)
	if tw.Elapsed != elapsed {
		t.Error("Retarget to the same target should not restart")
	}
}

func TestTweenZeroDuration(t *testing.T) {
	tw := NewTween(10, 0, nil)
	tw.Retarget(20)
	if tw.Value() != 20 {
		t.Errorf("zero-duration tween: got %v, want 20", tw.Value())
	}
}

// TestTweenSetDurationKeepsPosition 修改时长前后位置不变
func TestTweenSetDurationKeepsPosition(t *testing.T) {
	tests := []struct {
		name    string
		advance float64 // 修改时长前推进的时间
		steps   []float64
	}{
		{"静止后关闭再恢复", 2.0, []float64{0, 1.2}},
		{"移动中关闭再恢复", 0.3, []float64{0, 1.2}},
		{"移动中换成更短时长", 0.3, []float64{0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTween(0, 1.2, EaseOutCubic)
			tw.Retarget(128)
			tw.Advance(tt.advance)
			before := tw.Value()

			for _, d := range tt.steps {
				tw.SetDuration(d)
				if got := tw.Value(); math.Abs(got-before) > 1e-9 {
					t.Fatalf("SetDuration(%v): value jumped from %v to %v", d, before, got)
				}
			}
		})
	}
}

func TestTweenSetDurationSettledStaysSettled(t *testing.T) {
	tw := NewTween(0, 1.2, EaseOutCubic)
	tw.Retarget(128)
	tw.Advance(1.2)

	tw.SetDuration(0)
	tw.SetDuration(1.2)
	if !tw.Done() || tw.Value() != 128 {
		t.Errorf("settled tween restarted: done=%v value=%v", tw.Done(), tw.Value())
	}
}

// TestTweenSetDurationZeroFreezes 时长为 0 时冻结，之后的新目标直接到达
func TestTweenSetDurationZeroFreezes(t *testing.T) {
	tw := NewTween(0, 1.2, EaseOutCubic)
	tw.Retarget(128)
	tw.Advance(0.3)
	frozen := tw.Value()

	tw.SetDuration(0)
	tw.Advance(1)
	if tw.Value() != frozen {
		t.Errorf("zero duration should freeze at %v, got %v", frozen, tw.Value())
	}

	tw.Retarget(64)
	if tw.Value() != 64 {
		t.Errorf("retarget with zero duration: got %v, want 64", tw.Value())
	}
}
