package components

// PositionComponent 屏幕坐标
type PositionComponent struct {
	X, Y float64
}
