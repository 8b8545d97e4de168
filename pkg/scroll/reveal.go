package scroll

import "math"

// Direction 堆叠方向，决定 StackDepth 的排列
type Direction int

const (
	// StackAscending 序号越大越靠上（stackDepth = i + 1）
	StackAscending Direction = iota
	// StackDescending 序号越小越靠上（stackDepth = L - i）
	StackDescending
)

// RevealOptions 揭示计算参数
type RevealOptions struct {
	LineHeight  float64 // 每个单元原始槽位的高度
	BlurStep    float64 // 被覆盖单元每层增加的模糊
	MaxBlur     float64
	OpacityStep float64 // 被覆盖单元每层减少的不透明度
	MinOpacity  float64
	Direction   Direction
}

// DefaultRevealOptions 返回默认参数
func DefaultRevealOptions() RevealOptions {
	return RevealOptions{
		LineHeight:  64,
		BlurStep:    1.5,
		MaxBlur:     8,
		OpacityStep: 0.15,
		MinOpacity:  0.2,
		Direction:   StackAscending,
	}
}

// UnitState 单个单元在当前帧的目标状态
type UnitState struct {
	Index        int
	Rune         rune
	Visible      bool
	TargetOffset float64 // 纵向目标位移，渲染层负责插值
	StackDepth   int     // z 序
	Blur         float64
	Opacity      float64
}

// RevealState 某个单词在当前帧的状态
type RevealState struct {
	LettersVisible int
	Units          []UnitState
}

// LettersVisible 计算可见单元数量
//
// lettersVisible = clamp(L - floor(max(0, s - offset) / threshold), 1, L)
//
// 滚动越多，隐藏（堆叠）的单元越多，但至少保留一个可见单元。
// 空单词返回 0。s 为 NaN 或负数时按 0 处理。
func LettersVisible(s float64, w Word) int {
	n := w.Len()
	if n == 0 {
		return 0
	}
	if math.IsInf(s, 1) {
		return 1
	}
	if math.IsNaN(s) || s < 0 {
		s = 0
	}

	hidden := math.Floor(math.Max(0, s-w.offset) / w.threshold)
	if hidden >= float64(n-1) {
		return 1
	}
	return n - int(hidden)
}

// Compute 计算单词在滚动位置 s 下的完整状态
//
// 可见单元停留在自己的槽位（i * lineHeight）；
// 隐藏单元收拢到序号最小的可见单元上，形成卡片堆叠效果。
func Compute(s float64, w Word, opts RevealOptions) RevealState {
	n := w.Len()
	if n == 0 {
		return RevealState{}
	}

	visible := LettersVisible(s, w)
	firstVisible := n - visible
	coverOffset := float64(firstVisible) * opts.LineHeight

	units := make([]UnitState, n)
	for i, r := range w.units {
		u := UnitState{
			Index:      i,
			Rune:       r,
			Visible:    i >= firstVisible,
			StackDepth: stackDepth(i, n, opts.Direction),
		}
		if u.Visible {
			u.TargetOffset = float64(i) * opts.LineHeight
			u.Opacity = 1
		} else {
			behind := float64(firstVisible - i)
			u.TargetOffset = coverOffset
			u.Blur = math.Min(opts.MaxBlur, behind*opts.BlurStep)
			u.Opacity = math.Max(opts.MinOpacity, 1-behind*opts.OpacityStep)
		}
		units[i] = u
	}

	return RevealState{
		LettersVisible: visible,
		Units:          units,
	}
}

func stackDepth(i, n int, dir Direction) int {
	if dir == StackDescending {
		return n - i
	}
	return i + 1
}
