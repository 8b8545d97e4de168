package components

// VisualComponent 渲染参数（不透明度、模糊、z 序）
type VisualComponent struct {
	Opacity    float64
	Blur       float64
	StackDepth int
}
