package modules

import (
	"log"
	"math"

	"github.com/decker502/brutalist/pkg/components"
	"github.com/decker502/brutalist/pkg/config"
	"github.com/decker502/brutalist/pkg/ecs"
	"github.com/decker502/brutalist/pkg/entities"
	"github.com/decker502/brutalist/pkg/game"
	"github.com/decker502/brutalist/pkg/systems"
	"github.com/decker502/brutalist/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 导航菜单布局
const (
	navItemHeight  = 64.0
	navItemGap     = 10.0
	navItemWidth   = 520.0
	navItemTop     = 96.0
	navOpenRate    = 10.0 // 遮罩淡入速率（每秒）
	navScrollOwner = "nav-menu"
)

// NavMenuModule 全局导航菜单
// 封装汉堡按钮和全屏遮罩菜单：
//   - 点击汉堡按钮打开/关闭
//   - 打开时持有 ScrollLock，页面收不到滚动和点击
//   - 点击条目跳转并关闭；Escape 关闭
//   - 当前路由高亮
type NavMenuModule struct {
	// ECS 框架（菜单条目独立于页面的实体管理器，跨页面存在）
	entityManager *ecs.EntityManager
	hoverSystem   *systems.HoverSystem
	renderSystem  *systems.RenderSystem

	ctx   *game.PageContext
	items map[string]ecs.EntityID
	paths []string

	open             bool
	openAnim         float64 // 0 ~ 1
	current          string
	hamburgerHovered bool
}

// NewNavMenuModule 创建导航菜单
//
// 参数:
//   - ctx: 页面上下文（路由表、滚动锁、导航函数）
//
// 返回:
//   - *NavMenuModule: 新创建的模块实例
func NewNavMenuModule(ctx *game.PageContext) *NavMenuModule {
	em := ecs.NewEntityManager()
	m := &NavMenuModule{
		entityManager: em,
		hoverSystem:   systems.NewHoverSystem(em),
		renderSystem:  systems.NewRenderSystem(em, ctx.Resources),
		ctx:           ctx,
		items:         make(map[string]ecs.EntityID),
	}

	x := (float64(config.GameWindowWidth) - navItemWidth) / 2
	for i, r := range ctx.Config.Routes {
		path := r.Path
		id, err := entities.NewCardEntity(em, entities.CardSpec{
			X:        x,
			Y:        navItemTop + float64(i)*(navItemHeight+navItemGap),
			Width:    navItemWidth,
			Height:   navItemHeight,
			Title:    r.Title,
			Subtitle: r.Path,
			OnClick:  func() { m.selectRoute(path) },
		})
		if err != nil {
			log.Printf("[NavMenuModule] Failed to create item %s: %v", r.Path, err)
			continue
		}
		m.items[path] = id
		m.paths = append(m.paths, path)
	}
	return m
}

// hamburgerRect 汉堡按钮区域
func hamburgerRect() (x, y, w, h float64) {
	return float64(config.GameWindowWidth) - config.HamburgerMargin - config.HamburgerSize,
		config.HamburgerMargin, config.HamburgerSize, config.HamburgerSize
}

// IsOpen 菜单是否打开
func (m *NavMenuModule) IsOpen() bool {
	return m.open
}

// Open 打开菜单并加锁
func (m *NavMenuModule) Open() {
	if m.open {
		return
	}
	m.open = true
	m.ctx.ScrollLock.Acquire(navScrollOwner)
	log.Printf("[NavMenuModule] Opened")
}

// Close 关闭菜单并释放锁
func (m *NavMenuModule) Close() {
	if !m.open {
		return
	}
	m.open = false
	m.ctx.ScrollLock.Release(navScrollOwner)
	log.Printf("[NavMenuModule] Closed")
}

// SetCurrent 高亮当前路由（由路由器的 OnNavigate 回调调用）
func (m *NavMenuModule) SetCurrent(path string) {
	m.current = path
	for p, id := range m.items {
		label, ok := ecs.GetComponent[*components.LabelComponent](m.entityManager, id)
		if !ok {
			continue
		}
		if p == path {
			label.Fill = config.ColorAccent
		} else {
			label.Fill = config.ColorBackground
		}
	}
}

// Current 当前高亮的路由
func (m *NavMenuModule) Current() string {
	return m.current
}

func (m *NavMenuModule) selectRoute(path string) {
	m.Close()
	if path != m.current && m.ctx.Navigate != nil {
		m.ctx.Navigate(path)
	}
}

// PointerOverTarget 指针是否在汉堡按钮或菜单条目上
func (m *NavMenuModule) PointerOverTarget() bool {
	return m.hamburgerHovered || (m.open && m.hoverSystem.Hovered() != 0)
}

// Update 处理一帧输入
//
// 返回:
//   - bool: 本帧的点击或 Escape 是否被菜单消费
func (m *NavMenuModule) Update(deltaTime float64, in utils.InputState) bool {
	consumed := false
	hx, hy, hw, hh := hamburgerRect()
	m.hamburgerHovered = utils.PointInRect(float64(in.X), float64(in.Y), hx, hy, hw, hh)

	switch {
	case in.JustPressed && m.hamburgerHovered:
		if m.open {
			m.Close()
		} else {
			m.Open()
		}
		consumed = true
	case m.open && in.Escape:
		m.Close()
		consumed = true
	case m.open:
		m.hoverSystem.Update(deltaTime, in)
		// 遮罩上的任何点击都不会落到页面上
		consumed = in.JustPressed
	}

	target := 0.0
	if m.open {
		target = 1
	}
	m.openAnim += (target - m.openAnim) * math.Min(1, deltaTime*navOpenRate)
	return consumed
}

// Draw 绘制汉堡按钮和（打开时的）遮罩菜单
func (m *NavMenuModule) Draw(screen *ebiten.Image) {
	if m.openAnim > 0.01 {
		vector.DrawFilledRect(screen, 0, 0, float32(config.GameWindowWidth), float32(config.GameWindowHeight),
			utils.WithAlpha(config.ColorInk, 0.92*m.openAnim), false)
		if m.open {
			m.renderSystem.DrawCards(screen)
		}
	}
	m.drawHamburger(screen)
}

func (m *NavMenuModule) drawHamburger(screen *ebiten.Image) {
	hx, hy, hw, hh := hamburgerRect()
	fill := config.ColorPrimary
	if m.hamburgerHovered {
		fill = config.ColorAccent
	}
	utils.DrawBrutalBox(screen, float32(hx), float32(hy), float32(hw), float32(hh), utils.BoxStyle{
		Fill:        fill,
		Border:      config.ColorInk,
		BorderWidth: config.BorderWidth,
		Shadow:      config.ShadowOffset / 2,
		ShadowColor: config.ColorInk,
	})

	// 三条横线，打开时中间一条收起
	lineW := float32(hw * 0.6)
	lx := float32(hx + hw*0.2)
	for i := 0; i < 3; i++ {
		if i == 1 && m.open {
			continue
		}
		ly := float32(hy+hh*0.3) + float32(i)*float32(hh*0.2)
		vector.DrawFilledRect(screen, lx, ly, lineW, 4, config.ColorInk, false)
	}
}
