package components

// RippleComponent 点击涟漪
// 半径从 BaseRadius 扩展到 BaseRadius*MaxScale，同时淡出
type RippleComponent struct {
	BaseRadius float64
	MaxScale   float64
	Scale      float64 // 当前缩放（由 RippleSystem 更新）
	Alpha      float64 // 当前透明度
}
