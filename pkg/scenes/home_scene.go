package scenes

import (
	"log"

	"github.com/decker502/brutalist/pkg/config"
	"github.com/decker502/brutalist/pkg/entities"
	"github.com/decker502/brutalist/pkg/game"
	"github.com/decker502/brutalist/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 首页卡片布局
const (
	homeCardColumns  = 4
	homeCardGap      = 24.0
	homeCardHeight   = 140.0
	homeCardTop      = 330.0
	homeEmergeLength = 0.6

	// homeIntroKey 会话标记：首次访问才播放入场动画
	homeIntroKey = "home.intro"
)

// HomeScene 首页：大标题 + 功能卡片索引
type HomeScene struct {
	page
	cfg       config.HomeConfig
	intro     bool
	cardCount int
}

// NewHomeScene 创建首页
func NewHomeScene() *HomeScene {
	return &HomeScene{page: newPage("HomeScene")}
}

// Mount 创建功能卡片
// 本会话首次访问时卡片延迟 CardDelayMs 后依次浮现（间隔 CardStaggerMs）
func (s *HomeScene) Mount(ctx *game.PageContext) {
	s.mountPage(ctx)
	s.cfg = ctx.Config.Home
	s.intro = ctx.Session.MarkVisited(homeIntroKey) && !s.reducedMotion()

	width := (float64(config.GameWindowWidth) - 2*config.PagePadding - (homeCardColumns-1)*homeCardGap) / homeCardColumns
	index := 0
	for _, r := range ctx.Config.Routes {
		if r.Path == "/" {
			continue
		}
		col := index % homeCardColumns
		row := index / homeCardColumns
		path := r.Path

		spec := entities.CardSpec{
			X:        config.PagePadding + float64(col)*(width+homeCardGap),
			Y:        homeCardTop + float64(row)*(homeCardHeight+homeCardGap),
			Width:    width,
			Height:   homeCardHeight,
			Title:    r.Title,
			Subtitle: r.Description,
			OnClick:  func() { s.navigate(path) },
		}
		if s.intro {
			spec.Delay = (s.cfg.CardDelayMs + float64(index)*s.cfg.CardStaggerMs) / 1000
			spec.EmergeDuration = homeEmergeLength
		}
		if _, err := entities.NewCardEntity(s.entityManager, spec); err != nil {
			log.Printf("[HomeScene] Failed to create card %s: %v", r.Path, err)
			continue
		}
		index++
	}
	s.cardCount = index
}

// Unmount 卸载
func (s *HomeScene) Unmount() {
	s.unmountPage()
}

// Update 更新
func (s *HomeScene) Update(deltaTime float64) {
	if s.unmounted {
		return
	}
	s.pollInput()
	s.step(deltaTime)
}

// Draw 绘制
func (s *HomeScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)
	rm := s.ctx.Resources

	heroFace := rm.Font(game.FontDisplay, config.TitleFontSize*1.5)
	utils.DrawText(screen, s.cfg.Hero, heroFace, config.PagePadding+config.ShadowOffset, 80+config.ShadowOffset, config.ColorPrimary, 1)
	utils.DrawText(screen, s.cfg.Hero, heroFace, config.PagePadding, 80, config.ColorInk, 1)

	bodyFace := rm.Font(game.FontMono, config.BodyFontSize)
	lines := utils.WrapTextFace(s.cfg.Tagline, bodyFace, float64(config.GameWindowWidth)/2)
	for i, line := range lines {
		utils.DrawText(screen, line, bodyFace, config.PagePadding, 220+float64(i)*config.BodyFontSize*1.5, config.ColorSteel, 1)
	}

	s.renderSystem.Draw(screen)

	footFace := rm.Font(game.FontMono, config.SmallFontSize)
	utils.DrawText(screen, s.cfg.Footer, footFace, config.PagePadding, float64(config.GameWindowHeight)-config.PagePadding, config.ColorConcrete, 1)
}
