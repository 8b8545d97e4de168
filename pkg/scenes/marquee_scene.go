package scenes

import (
	"math"

	"github.com/decker502/brutalist/pkg/config"
	"github.com/decker502/brutalist/pkg/frame"
	"github.com/decker502/brutalist/pkg/game"
	"github.com/decker502/brutalist/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// marqueeBand 一条跑马灯
type marqueeBand struct {
	y, height float64
	direction float64 // +1 向右，-1 向左
	offset    float64
	inverted  bool // 黄底黑字
}

// MarqueeScene 无限跑马灯页
// 两条方向相反的跑马灯共用一个帧驱动；指针悬停在任一条上时驱动暂停
type MarqueeScene struct {
	page
	cfg    config.MarqueeConfig
	bands  []*marqueeBand
	driver *frame.Driver
}

// NewMarqueeScene 创建跑马灯页
func NewMarqueeScene() *MarqueeScene {
	return &MarqueeScene{
		page: newPage("MarqueeScene"),
		bands: []*marqueeBand{
			{y: 220, height: 120, direction: -1},
			{y: 420, height: 120, direction: 1, inverted: true},
		},
	}
}

// Mount 启动帧驱动
func (s *MarqueeScene) Mount(ctx *game.PageContext) {
	s.mountPage(ctx)
	s.cfg = ctx.Config.Marquee
	s.driver = frame.NewDriver("marquee", s.sched, s.tick)
	if !s.reducedMotion() {
		s.driver.Start()
	}
}

func (s *MarqueeScene) tick(dt float64) {
	for _, b := range s.bands {
		b.offset += b.direction * s.cfg.Speed * dt
	}
}

// Unmount 停止帧驱动
func (s *MarqueeScene) Unmount() {
	if s.driver != nil {
		s.driver.Unmount()
	}
	s.unmountPage()
}

// Driver 返回帧驱动
func (s *MarqueeScene) Driver() *frame.Driver {
	return s.driver
}

// Offset 返回第 i 条跑马灯的位移
func (s *MarqueeScene) Offset(i int) float64 {
	return s.bands[i].offset
}

// hoveredBand 指针所在的跑马灯，没有时返回 -1
func (s *MarqueeScene) hoveredBand(x, y float64) int {
	for i, b := range s.bands {
		if utils.PointInRect(x, y, 0, b.y, float64(config.GameWindowWidth), b.height) {
			return i
		}
	}
	return -1
}

// PointerOverTarget 悬停在跑马灯上时放大光标
func (s *MarqueeScene) PointerOverTarget() bool {
	return s.hoveredBand(float64(s.input.X), float64(s.input.Y)) >= 0
}

// Update 悬停暂停，离开恢复
func (s *MarqueeScene) Update(deltaTime float64) {
	if s.unmounted {
		return
	}
	in := s.pollInput()

	hovering := s.hoveredBand(float64(in.X), float64(in.Y)) >= 0
	switch {
	case hovering || s.reducedMotion():
		s.driver.Pause()
	default:
		s.driver.Start()
	}

	s.step(deltaTime)
}

// Draw 绘制
func (s *MarqueeScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)
	title, sub := routeTitle(s.ctx.Config, "/marquee")
	s.drawHeader(screen, title, sub)

	face := s.ctx.Resources.Font(game.FontDisplay, config.TitleFontSize)
	textW, _ := utils.MeasureText(s.cfg.Text, face)

	for _, b := range s.bands {
		bg, fg := config.ColorInk, config.ColorPrimary
		if b.inverted {
			bg, fg = config.ColorPrimary, config.ColorInk
		}
		utils.DrawBrutalBox(screen, -10, float32(b.y), float32(config.GameWindowWidth)+20, float32(b.height), utils.BoxStyle{
			Fill:        bg,
			Border:      config.ColorInk,
			BorderWidth: config.BorderWidth * 2,
		})
		if textW <= 0 {
			continue
		}

		// 位移对文字宽度取模，从左侧第一段开始平铺到屏幕右边
		start := math.Mod(b.offset, textW)
		if start > 0 {
			start -= textW
		}
		for x := start; x < float64(config.GameWindowWidth); x += textW {
			utils.DrawText(screen, s.cfg.Text, face, x, b.y+(b.height-config.TitleFontSize)/2, fg, 1)
		}
	}
}
