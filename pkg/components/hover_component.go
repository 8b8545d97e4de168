package components

// HoverComponent 可悬停/点击的矩形区域
type HoverComponent struct {
	X, Y, Width, Height float64

	Hovered   bool
	HoverTime float64 // 本次悬停持续时间（秒），离开时归零
	Lift      float64 // 悬停上移量（0 ~ 1，平滑过渡）

	// OnClick 点击回调，可为 nil
	OnClick func()
}

// Contains 检查点是否在区域内
func (c *HoverComponent) Contains(x, y float64) bool {
	return x >= c.X && x < c.X+c.Width && y >= c.Y && y < c.Y+c.Height
}
