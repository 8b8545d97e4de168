package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/brutalist/pkg/config"
	"github.com/decker502/brutalist/pkg/frame"
	"github.com/decker502/brutalist/pkg/game"
	"github.com/decker502/brutalist/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 加载页阶段名称
const (
	phaseCount    = "count"
	phaseHold     = "hold"
	phaseMorph    = "morph"
	phaseNavigate = "navigate"
)

// LoaderScene 加载动画页
//
// 单条时间线：count（0 → CountTo）→ hold → morph（数字变形为标题）→ navigate。
// 卸载时时间线随调度器一起取消，不会在离开页面后跳转。
type LoaderScene struct {
	page
	cfg      config.LoaderConfig
	timeline *frame.Timeline

	count int
	morph float64 // 0 ~ 1
}

// NewLoaderScene 创建加载页
func NewLoaderScene() *LoaderScene {
	return &LoaderScene{page: newPage("LoaderScene")}
}

// Mount 按配置构建时间线并启动
func (s *LoaderScene) Mount(ctx *game.PageContext) {
	s.mountPage(ctx)
	s.cfg = ctx.Config.Loader

	phases := make([]frame.Phase, 0, len(s.cfg.Phases))
	for _, pc := range s.cfg.Phases {
		phases = append(phases, s.buildPhase(pc))
	}

	s.timeline = frame.NewTimeline(s.sched, phases...)
	s.timeline.OnComplete(func() {
		log.Printf("[LoaderScene] Timeline complete, navigating to %s", s.cfg.NavigateTo)
		s.navigate(s.cfg.NavigateTo)
	})
	s.timeline.Start()
}

// buildPhase 把配置阶段转换为时间线阶段
func (s *LoaderScene) buildPhase(pc config.PhaseConfig) frame.Phase {
	p := frame.Phase{
		Name:     pc.Name,
		Duration: pc.DurationMs / 1000,
	}
	switch pc.Name {
	case phaseCount:
		p.OnUpdate = func(progress float64) {
			s.count = int(progress * float64(s.cfg.CountTo))
		}
		p.OnExit = func() { s.count = s.cfg.CountTo }
	case phaseMorph:
		p.OnUpdate = func(progress float64) {
			s.morph = utils.EaseInOutCubic(progress)
		}
		p.OnExit = func() { s.morph = 1 }
	}
	return p
}

// Unmount 取消时间线
func (s *LoaderScene) Unmount() {
	if s.timeline != nil {
		s.timeline.Cancel()
	}
	s.unmountPage()
}

// Count 当前计数
func (s *LoaderScene) Count() int {
	return s.count
}

// Phase 当前阶段名称
func (s *LoaderScene) Phase() string {
	if s.timeline == nil {
		return ""
	}
	return s.timeline.Current()
}

// Update 更新
func (s *LoaderScene) Update(deltaTime float64) {
	if s.unmounted {
		return
	}
	s.pollInput()
	s.step(deltaTime)
}

// Draw 绘制
func (s *LoaderScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorInk)
	rm := s.ctx.Resources
	cx := float64(config.GameWindowWidth) / 2
	cy := float64(config.GameWindowHeight) / 2

	// 数字随 morph 缩小淡出，标题放大淡入
	if s.morph < 1 {
		numFace := rm.Font(game.FontDisplay, config.TitleFontSize*3*(1-0.5*s.morph))
		utils.DrawTextCentered(screen, fmt.Sprintf("%03d", s.count), numFace, cx, cy, config.ColorPrimary, 1-s.morph)
	}
	if s.morph > 0 {
		titleFace := rm.Font(game.FontDisplay, config.TitleFontSize*(1+s.morph))
		utils.DrawTextCentered(screen, s.cfg.Title, titleFace, cx+config.ShadowOffset, cy+config.ShadowOffset, config.ColorAccent, s.morph)
		utils.DrawTextCentered(screen, s.cfg.Title, titleFace, cx, cy, config.ColorBackground, s.morph)
	}

	// 进度条
	barW := float64(config.GameWindowWidth) - 2*config.PagePadding
	progress := 0.0
	if s.cfg.CountTo > 0 {
		progress = float64(s.count) / float64(s.cfg.CountTo)
	}
	barY := float32(config.GameWindowHeight) - float32(config.PagePadding) - 16
	utils.DrawBrutalBox(screen, float32(config.PagePadding), barY, float32(barW), 16, utils.BoxStyle{
		Fill:        config.ColorSteel,
		Border:      config.ColorBackground,
		BorderWidth: config.BorderWidth,
	})
	if progress > 0 {
		utils.DrawBrutalBox(screen, float32(config.PagePadding), barY, float32(barW*progress), 16, utils.BoxStyle{
			Fill: config.ColorPrimary,
		})
	}

	label := rm.Font(game.FontMono, config.SmallFontSize)
	utils.DrawText(screen, s.Phase(), label, config.PagePadding, float64(barY)-24, config.ColorAsh, 1)
}
