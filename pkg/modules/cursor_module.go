package modules

import (
	"math"

	"github.com/decker502/brutalist/pkg/config"
	"github.com/decker502/brutalist/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// cursorFollowRate 光标跟随指针的平滑速率（每秒）
const cursorFollowRate = 18.0

// CursorModule 全局自定义光标
// 方块光标平滑跟随指针，停在可交互元素上时放大
type CursorModule struct {
	x, y    float64
	scale   float64
	visible bool
}

// NewCursorModule 创建光标模块
func NewCursorModule() *CursorModule {
	return &CursorModule{scale: 1}
}

// Position 当前光标位置
func (c *CursorModule) Position() (float64, float64) {
	return c.x, c.y
}

// Scale 当前缩放
func (c *CursorModule) Scale() float64 {
	return c.scale
}

// Update 跟随指针；overTarget 为 true 时放大到 CursorHoverScale
// reducedMotion 时直接跳到目标，不做平滑
func (c *CursorModule) Update(deltaTime float64, in utils.InputState, overTarget, reducedMotion bool) {
	if in.X < 0 || in.Y < 0 {
		c.visible = false
		return
	}

	k := math.Min(1, deltaTime*cursorFollowRate)
	if !c.visible || reducedMotion {
		// 首次出现时直接跳到指针处
		k = 1
	}
	c.visible = true

	targetScale := 1.0
	if overTarget {
		targetScale = config.CursorHoverScale
	}
	c.x += (float64(in.X) - c.x) * k
	c.y += (float64(in.Y) - c.y) * k
	c.scale += (targetScale - c.scale) * k
}

// Draw 绘制光标（差值混合在 Ebitengine 中不可用，用墨色边框 + 粉色填充）
func (c *CursorModule) Draw(screen *ebiten.Image) {
	if !c.visible {
		return
	}
	size := float32(config.CursorSize * c.scale)
	x := float32(c.x) - size/2
	y := float32(c.y) - size/2
	vector.DrawFilledRect(screen, x, y, size, size, utils.WithAlpha(config.ColorAccent, 0.8), false)
	vector.StrokeRect(screen, x, y, size, size, config.BorderWidth, config.ColorInk, false)
}
