package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 参考：https://easings.net/

// EaseFunc 缓动函数类型
type EaseFunc func(t float64) float64

// EaseLinear 线性缓动
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（字母堆叠过渡使用）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutBack 回弹缓出（卡片浮现时轻微过冲）
// 公式：f(t) = 1 + c3(t-1)³ + c1(t-1)²
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把值限制在 [0, 1]，NaN 返回 0
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Tween 固定时长的缓动插值
//
// Retarget 以当前插值结果作为新起点，保证目标变化时位置连续。
type Tween struct {
	From     float64
	To       float64
	Elapsed  float64
	Duration float64 // 秒
	Ease     EaseFunc
}

// NewTween 创建一个已经停在 value 的插值器
func NewTween(value, duration float64, ease EaseFunc) Tween {
	return Tween{
		From:     value,
		To:       value,
		Elapsed:  duration,
		Duration: duration,
		Ease:     ease,
	}
}

// Value 返回当前插值结果
func (tw *Tween) Value() float64 {
	if tw.Duration <= 0 || tw.Elapsed >= tw.Duration {
		return tw.To
	}
	ease := tw.Ease
	if ease == nil {
		ease = EaseLinear
	}
	return Lerp(tw.From, tw.To, ease(Clamp01(tw.Elapsed/tw.Duration)))
}

// Advance 推进 dt 秒
func (tw *Tween) Advance(dt float64) {
	if dt > 0 {
		tw.Elapsed = math.Min(tw.Duration, tw.Elapsed+dt)
	}
}

// Retarget 设置新目标；目标未变化时不重启
func (tw *Tween) Retarget(to float64) {
	if to == tw.To {
		return
	}
	tw.From = tw.Value()
	tw.To = to
	tw.Elapsed = 0
}

// SetDuration 修改时长，当前位置保持不变
//
// 已到达目标的插值保持静止；进行中的插值从当前位置重新开始。
// 时长为 0 时进行中的插值冻结在当前位置，之后的 Retarget 直接跳到目标。
func (tw *Tween) SetDuration(d float64) {
	if d < 0 || math.IsNaN(d) {
		d = 0
	}
	switch {
	case tw.Done():
		tw.From = tw.To
		tw.Elapsed = d
	case d == 0:
		v := tw.Value()
		tw.From, tw.To, tw.Elapsed = v, v, 0
	default:
		tw.From = tw.Value()
		tw.Elapsed = 0
	}
	tw.Duration = d
}

// Done 是否已到达目标
func (tw *Tween) Done() bool {
	return tw.Duration <= 0 || tw.Elapsed >= tw.Duration
}
