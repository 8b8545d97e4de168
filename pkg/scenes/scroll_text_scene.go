package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/brutalist/pkg/config"
	"github.com/decker502/brutalist/pkg/frame"
	"github.com/decker502/brutalist/pkg/game"
	"github.com/decker502/brutalist/pkg/scroll"
	"github.com/decker502/brutalist/pkg/systems"
	"github.com/decker502/brutalist/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 滚动文字页布局
const (
	scrollTextTop    = 40.0
	scrollTextLeft   = 360.0
	scrollColumnGap  = 40.0
	scrollHUDWidth   = 280.0
	scrollDriverName = "scroll-text"
)

// ScrollTextScene 滚动文字页
//
// 滚轮只推进虚拟游标，页面本身不移动；帧驱动每帧推进引擎，
// 字母随滚动依次收拢成卡片堆叠。
type ScrollTextScene struct {
	page
	engine  *scroll.Engine
	reveal  *systems.RevealSystem
	tweens  *systems.TweenSystem
	letters *systems.LetterRenderSystem
	driver  *frame.Driver

	transition float64
}

// NewScrollTextScene 创建滚动文字页
func NewScrollTextScene() *ScrollTextScene {
	return &ScrollTextScene{page: newPage("ScrollTextScene")}
}

// Mount 构建引擎、生成字母并启动帧驱动
// 减弱动效时驱动进入暂停状态，页面停在初始帧
func (s *ScrollTextScene) Mount(ctx *game.PageContext) {
	s.mountPage(ctx)
	cfg := ctx.Config

	cursor := scroll.NewCursor(ctx.Settings.ApplyCursor(cfg.CursorSettings()))
	s.engine = scroll.NewEngine(cursor, cfg.RevealOptions())
	words, err := cfg.BuildWords()
	if err != nil {
		log.Printf("[ScrollTextScene] Invalid words in config: %v", err)
	}
	for _, w := range words {
		s.engine.AddWord(w)
	}

	s.transition = cfg.TransitionSeconds()
	s.reveal = systems.NewRevealSystem(s.entityManager, s.engine, s.transition)
	s.tweens = systems.NewTweenSystem(s.entityManager)
	s.letters = systems.NewLetterRenderSystem(s.entityManager, ctx.Resources, cfg.Reveal.LineHeight)

	x := scrollTextLeft
	origins := make([]float64, len(words))
	for i, w := range words {
		origins[i] = x
		x += w.FontSize()*1.25 + scrollColumnGap
	}
	if _, err := s.reveal.SpawnLetters(func(i int) (float64, float64) { return origins[i], scrollTextTop }); err != nil {
		log.Printf("[ScrollTextScene] Failed to spawn letters: %v", err)
	}

	s.driver = frame.NewDriver(scrollDriverName, s.sched, s.tick)
	s.driver.Start()
	s.applyMotionPreference()
}

// tick 帧驱动回调：先推进引擎，再推进插值
func (s *ScrollTextScene) tick(dt float64) {
	s.reveal.Update(dt)
	s.tweens.Update(dt)
}

// applyMotionPreference 根据减弱动效设置暂停或恢复帧驱动
func (s *ScrollTextScene) applyMotionPreference() {
	if s.reducedMotion() {
		s.reveal.SetTransition(0)
		s.driver.Pause()
		return
	}
	s.reveal.SetTransition(s.transition)
	s.driver.Start()
}

// Unmount 停止帧驱动；之后不再有任何帧回调
func (s *ScrollTextScene) Unmount() {
	if s.driver != nil {
		s.driver.Unmount()
	}
	s.unmountPage()
}

// Engine 返回滚动引擎
func (s *ScrollTextScene) Engine() *scroll.Engine {
	return s.engine
}

// Driver 返回帧驱动
func (s *ScrollTextScene) Driver() *frame.Driver {
	return s.driver
}

// Update 把滚轮增量交给游标，然后推进调度器
func (s *ScrollTextScene) Update(deltaTime float64) {
	if s.unmounted {
		return
	}
	in := s.pollInput()

	if in.ToggleMotion {
		settings := s.ctx.Settings
		settings.SetReducedMotion(!settings.GetSettings().ReducedMotion)
		if err := settings.Save(); err != nil {
			log.Printf("[ScrollTextScene] Failed to save settings: %v", err)
		}
		s.applyMotionPreference()
	}
	if in.ScrollDelta != 0 {
		s.engine.Cursor().OnWheelDelta(in.ScrollDelta)
	}

	s.step(deltaTime)
}

// Draw 绘制字母堆叠和 HUD
func (s *ScrollTextScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)
	s.letters.Draw(screen)
	s.drawHUD(screen)
}

func (s *ScrollTextScene) drawHUD(screen *ebiten.Image) {
	rm := s.ctx.Resources
	x := float32(config.PagePadding)
	y := float32(config.PagePadding + 80)
	utils.DrawBrutalBox(screen, x, y, scrollHUDWidth, 300, utils.BoxStyle{
		Fill:        config.ColorInk,
		Border:      config.ColorInk,
		BorderWidth: config.BorderWidth,
		Shadow:      config.ShadowOffset,
		ShadowColor: config.ColorPrimary,
	})

	face := rm.Font(game.FontMono, config.LabelFontSize)
	cursor := s.engine.Cursor()
	lines := []string{
		fmt.Sprintf("SCROLL  %6.0f", cursor.Position()),
		fmt.Sprintf("TARGET  %6.0f", cursor.Target()),
		fmt.Sprintf("MODE    %s", cursor.Config().Mode),
		fmt.Sprintf("DRIVER  %s", s.driver.State()),
	}
	words := s.engine.Words()
	for i, st := range s.reveal.States() {
		lines = append(lines, fmt.Sprintf("%-9s %d/%d", words[i].Text(), st.LettersVisible, words[i].Len()))
	}
	if s.reducedMotion() {
		lines = append(lines, "MOTION PAUSED [M]")
	} else {
		lines = append(lines, "REDUCE MOTION [M]")
	}

	for i, line := range lines {
		utils.DrawText(screen, line, face, float64(x)+16, float64(y)+16+float64(i)*28, config.ColorPrimary, 1)
	}

	titleFace := rm.Font(game.FontDisplay, config.BodyFontSize*1.5)
	utils.DrawText(screen, "SCROLL TEXT", titleFace, config.PagePadding, config.PagePadding+20, config.ColorInk, 1)
}
