package components

import "github.com/decker502/brutalist/pkg/utils"

// OffsetTweenComponent 纵向位移插值
// 引擎只给出目标位移，插值由渲染层负责（默认 1.2 秒 ease-out cubic）
type OffsetTweenComponent struct {
	Tween utils.Tween
}

// NewOffsetTween 创建停在 offset 的插值组件
func NewOffsetTween(offset, duration float64) *OffsetTweenComponent {
	return &OffsetTweenComponent{
		Tween: utils.NewTween(offset, duration, utils.EaseOutCubic),
	}
}

// Offset 当前插值位移
func (c *OffsetTweenComponent) Offset() float64 {
	return c.Tween.Value()
}
