package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/brutalist/pkg/components"
	"github.com/decker502/brutalist/pkg/config"
	"github.com/decker502/brutalist/pkg/ecs"
	"github.com/decker502/brutalist/pkg/entities"
	"github.com/decker502/brutalist/pkg/game"
	"github.com/decker502/brutalist/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 涟漪画布区域
const (
	rippleStageTop    = 160.0
	rippleStageBottom = 40.0
)

// RippleScene 点击涟漪页
// 每次点击生成一个涟漪实体，生命周期结束后由 LifetimeSystem 删除
type RippleScene struct {
	page
	spec   entities.RippleSpec
	clicks int
}

// NewRippleScene 创建涟漪页
func NewRippleScene() *RippleScene {
	return &RippleScene{page: newPage("RippleScene")}
}

// Mount 读取涟漪参数
func (s *RippleScene) Mount(ctx *game.PageContext) {
	s.mountPage(ctx)
	rc := ctx.Config.Ripple
	s.spec = entities.RippleSpec{
		Lifetime:   rc.LifetimeMs / 1000,
		BaseRadius: rc.BaseRadius,
		MaxScale:   rc.MaxScale,
	}
}

// Unmount 卸载
func (s *RippleScene) Unmount() {
	s.unmountPage()
}

// stageContains 点是否在画布内
func (s *RippleScene) stageContains(x, y float64) bool {
	return utils.PointInRect(x, y,
		config.PagePadding, rippleStageTop,
		float64(config.GameWindowWidth)-2*config.PagePadding,
		float64(config.GameWindowHeight)-rippleStageTop-rippleStageBottom)
}

// PointerOverTarget 整个画布都可点击
func (s *RippleScene) PointerOverTarget() bool {
	return s.stageContains(float64(s.input.X), float64(s.input.Y))
}

// ActiveRipples 当前存活的涟漪数量
func (s *RippleScene) ActiveRipples() int {
	return len(ecs.GetEntitiesWith1[*components.RippleComponent](s.entityManager))
}

// Update 点击画布生成涟漪
func (s *RippleScene) Update(deltaTime float64) {
	if s.unmounted {
		return
	}
	in := s.pollInput()
	if in.JustPressed && s.stageContains(float64(in.X), float64(in.Y)) {
		if _, err := entities.NewRippleEffect(s.entityManager, float64(in.X), float64(in.Y), s.spec); err != nil {
			log.Printf("[RippleScene] Failed to create ripple: %v", err)
		} else {
			s.clicks++
		}
	}
	s.step(deltaTime)
}

// Draw 绘制
func (s *RippleScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)
	title, sub := routeTitle(s.ctx.Config, "/ripple")
	s.drawHeader(screen, title, sub)

	w := float32(config.GameWindowWidth) - 2*float32(config.PagePadding)
	h := float32(config.GameWindowHeight) - rippleStageTop - rippleStageBottom
	utils.DrawBrutalBox(screen, float32(config.PagePadding), rippleStageTop, w, h, utils.BoxStyle{
		Fill:        config.ColorPrimary,
		Border:      config.ColorInk,
		BorderWidth: config.BorderWidth * 2,
		Shadow:      config.ShadowOffset,
		ShadowColor: config.ColorInk,
	})

	face := s.ctx.Resources.Font(game.FontMono, config.LabelFontSize)
	utils.DrawTextCentered(screen, fmt.Sprintf("CLICK ANYWHERE  [%d]", s.clicks), face,
		float64(config.GameWindowWidth)/2, rippleStageTop+float64(h)/2, config.ColorInk, 1)

	s.renderSystem.DrawRipples(screen)
}
