package scenes

import (
	"log"

	"github.com/decker502/brutalist/pkg/config"
	"github.com/decker502/brutalist/pkg/ecs"
	"github.com/decker502/brutalist/pkg/frame"
	"github.com/decker502/brutalist/pkg/game"
	"github.com/decker502/brutalist/pkg/systems"
	"github.com/decker502/brutalist/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// readInput 读取本帧输入，测试中替换为固定输入
var readInput = utils.CurrentInput

// page 所有页面共用的状态和系统
//
// 每个页面持有自己的调度器和实体管理器，卸载时调度器上的
// 全部帧回调和定时器被同步取消，实体被清空。
type page struct {
	name string
	ctx  *game.PageContext

	sched         *frame.Scheduler
	entityManager *ecs.EntityManager

	hoverSystem    *systems.HoverSystem
	emergeSystem   *systems.EmergeSystem
	lifetimeSystem *systems.LifetimeSystem
	rippleSystem   *systems.RippleSystem
	renderSystem   *systems.RenderSystem

	input     utils.InputState
	unmounted bool
}

func newPage(name string) page {
	em := ecs.NewEntityManager()
	return page{
		name:           name,
		sched:          frame.NewScheduler(),
		entityManager:  em,
		hoverSystem:    systems.NewHoverSystem(em),
		emergeSystem:   systems.NewEmergeSystem(em),
		lifetimeSystem: systems.NewLifetimeSystem(em),
		rippleSystem:   systems.NewRippleSystem(em),
	}
}

// mountPage 保存注入的上下文
func (p *page) mountPage(ctx *game.PageContext) {
	p.ctx = ctx
	p.renderSystem = systems.NewRenderSystem(p.entityManager, ctx.Resources)
	log.Printf("[%s] Mounted", p.name)
}

// unmountPage 取消所有待执行回调并清空实体
func (p *page) unmountPage() {
	if p.unmounted {
		return
	}
	p.unmounted = true
	n := p.sched.CancelAll()
	p.entityManager.Clear()
	log.Printf("[%s] Unmounted (cancelled %d callbacks)", p.name, n)
}

// pollInput 读取本帧输入
// 滚动锁被持有时（导航菜单打开），页面收不到滚动、点击和悬停
func (p *page) pollInput() utils.InputState {
	in := readInput()
	if p.ctx != nil && p.ctx.ScrollLock.Locked() {
		in = utils.InputState{X: -1, Y: -1}
	}
	p.input = in
	return in
}

// step 推进调度器和通用系统
func (p *page) step(dt float64) {
	p.sched.Advance(dt)
	p.hoverSystem.Update(dt, p.input)
	p.emergeSystem.Update(dt)
	p.lifetimeSystem.Update(dt)
	p.rippleSystem.Update(dt)
	p.entityManager.RemoveMarkedEntities()
}

// reducedMotion 用户是否开启了减弱动效
func (p *page) reducedMotion() bool {
	return p.ctx != nil && p.ctx.Settings != nil && p.ctx.Settings.GetSettings().ReducedMotion
}

// navigate 请求跳转（帧末执行）
func (p *page) navigate(path string) {
	if p.ctx != nil && p.ctx.Navigate != nil {
		p.ctx.Navigate(path)
	}
}

// PointerOverTarget 指针是否停在卡片上
func (p *page) PointerOverTarget() bool {
	return p.hoverSystem.Hovered() != 0
}

// drawBackground 填充纸色背景
func (p *page) drawBackground(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)
}

// drawHeader 绘制页面标题和副标题
func (p *page) drawHeader(screen *ebiten.Image, title, subtitle string) {
	rm := p.ctx.Resources
	titleFace := rm.Font(game.FontDisplay, config.TitleFontSize*0.75)
	utils.DrawText(screen, title, titleFace, config.PagePadding+4, config.PagePadding+4, config.ColorAccent, 1)
	utils.DrawText(screen, title, titleFace, config.PagePadding, config.PagePadding, config.ColorInk, 1)
	if subtitle != "" {
		subFace := rm.Font(game.FontMono, config.BodyFontSize)
		utils.DrawText(screen, subtitle, subFace, config.PagePadding, config.PagePadding+config.TitleFontSize*0.9, config.ColorSteel, 1)
	}
}

// routeTitle 返回路由标题，找不到时返回路径本身
func routeTitle(cfg *config.ShowcaseConfig, path string) (string, string) {
	if r, ok := cfg.FindRoute(path); ok {
		return r.Title, r.Description
	}
	return path, ""
}
