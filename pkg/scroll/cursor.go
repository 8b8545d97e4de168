// Package scroll 实现滚动同步动画引擎
//
// 引擎由三部分组成：
//   - Cursor：把原始滚轮/滚动输入转换为平滑的标量位置（虚拟滚动）
//   - Word / Compute：根据滚动位置计算每个字母的堆叠状态（RevealState）
//   - Engine：每帧先推进 Cursor，再重新计算所有单词的状态
//
// 本包不依赖任何渲染框架，渲染层（ebiten 场景或终端演示）只消费计算结果。
package scroll

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// CursorMode 滚动游标的平滑模式
type CursorMode int

const (
	// CursorSmoothed 指数平滑：current += (target - current) * easeFactor
	CursorSmoothed CursorMode = iota
	// CursorNative 直接透传原生滚动偏移，不做平滑
	CursorNative
	// CursorSpring 临界阻尼弹簧（damping = 1.0）
	CursorSpring
)

// String 返回模式名称（与配置文件中的写法一致）
func (m CursorMode) String() string {
	switch m {
	case CursorNative:
		return "native"
	case CursorSpring:
		return "spring"
	default:
		return "smoothed"
	}
}

// ParseCursorMode 解析配置中的模式名称，未知名称返回 CursorSmoothed 和 false
func ParseCursorMode(name string) (CursorMode, bool) {
	switch name {
	case "smoothed", "":
		return CursorSmoothed, true
	case "native":
		return CursorNative, true
	case "spring":
		return CursorSpring, true
	}
	return CursorSmoothed, false
}

// 默认参数
const (
	DefaultEaseFactor      = 0.08
	DefaultSensitivity     = 1.0
	DefaultSpringFrequency = 6.0
	DefaultSpringDamping   = 1.0
	DefaultFPS             = 60
)

// CursorConfig 滚动游标配置
type CursorConfig struct {
	Mode            CursorMode
	Sensitivity     float64 // 滚轮增量倍率
	EaseFactor      float64 // 指数平滑系数，取值 (0, 1)
	SpringFrequency float64 // 弹簧角频率
	SpringDamping   float64 // 弹簧阻尼比（1.0 = 临界阻尼）
	FPS             int     // 弹簧模式的固定帧率
}

// DefaultCursorConfig 返回默认配置（指数平滑，ease = 0.08）
func DefaultCursorConfig() CursorConfig {
	return CursorConfig{
		Mode:            CursorSmoothed,
		Sensitivity:     DefaultSensitivity,
		EaseFactor:      DefaultEaseFactor,
		SpringFrequency: DefaultSpringFrequency,
		SpringDamping:   DefaultSpringDamping,
		FPS:             DefaultFPS,
	}
}

// sanitize 修正越界的配置值
func (cfg CursorConfig) sanitize() CursorConfig {
	def := DefaultCursorConfig()
	if !isFinite(cfg.EaseFactor) || cfg.EaseFactor <= 0 || cfg.EaseFactor >= 1 {
		cfg.EaseFactor = def.EaseFactor
	}
	if !isFinite(cfg.Sensitivity) || cfg.Sensitivity <= 0 {
		cfg.Sensitivity = def.Sensitivity
	}
	if !isFinite(cfg.SpringFrequency) || cfg.SpringFrequency <= 0 {
		cfg.SpringFrequency = def.SpringFrequency
	}
	if !isFinite(cfg.SpringDamping) || cfg.SpringDamping <= 0 {
		cfg.SpringDamping = def.SpringDamping
	}
	if cfg.FPS <= 0 {
		cfg.FPS = def.FPS
	}
	return cfg
}

// Cursor 滚动游标（ScrollCursor）
//
// target 由输入事件累积，current 每帧向 target 逼近。
// 两者都不会小于 0，也不会是 NaN。
type Cursor struct {
	cfg      CursorConfig
	spring   harmonica.Spring
	target   float64
	current  float64
	velocity float64 // 仅弹簧模式使用
}

// NewCursor 创建滚动游标，位置从 0 开始
func NewCursor(cfg CursorConfig) *Cursor {
	cfg = cfg.sanitize()
	return &Cursor{
		cfg:    cfg,
		spring: harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.SpringFrequency, cfg.SpringDamping),
	}
}

// Config 返回修正后的配置
func (c *Cursor) Config() CursorConfig {
	return c.cfg
}

// OnWheelDelta 累积滚轮增量
// target = max(0, target + delta * sensitivity)，NaN/Inf 视为 0
func (c *Cursor) OnWheelDelta(delta float64) {
	if !isFinite(delta) {
		return
	}
	c.target = math.Max(0, c.target+delta*c.cfg.Sensitivity)
}

// SetNative 设置原生滚动偏移
// 原生模式下 current 立即跟随；其他模式下作为新的目标值。NaN/Inf 被忽略。
func (c *Cursor) SetNative(offset float64) {
	if !isFinite(offset) {
		return
	}
	c.target = math.Max(0, offset)
	if c.cfg.Mode == CursorNative {
		c.current = c.target
	}
}

// Tick 推进一帧
//
// 指数平滑按帧计算，与 dt 无关（easeFactor 是设计常量，不是物理模拟）。
// 弹簧模式使用构造时的固定帧率。
func (c *Cursor) Tick(dt float64) {
	switch c.cfg.Mode {
	case CursorNative:
		c.current = c.target
	case CursorSpring:
		c.current, c.velocity = c.spring.Update(c.current, c.velocity, c.target)
	default:
		c.current += (c.target - c.current) * c.cfg.EaseFactor
	}

	if !isFinite(c.current) {
		c.current = c.target
		c.velocity = 0
	}
	if c.current < 0 {
		// 弹簧在 0 附近可能轻微越界
		c.current = 0
		c.velocity = 0
	}
}

// Position 返回当前平滑位置
func (c *Cursor) Position() float64 {
	return c.current
}

// Target 返回累积的目标位置
func (c *Cursor) Target() float64 {
	return c.target
}

// Reset 归零（挂载时调用）
func (c *Cursor) Reset() {
	c.target = 0
	c.current = 0
	c.velocity = 0
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
