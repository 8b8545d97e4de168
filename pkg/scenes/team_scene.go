package scenes

import (
	"log"
	"math"

	"github.com/decker502/brutalist/pkg/components"
	"github.com/decker502/brutalist/pkg/config"
	"github.com/decker502/brutalist/pkg/ecs"
	"github.com/decker502/brutalist/pkg/entities"
	"github.com/decker502/brutalist/pkg/game"
	"github.com/decker502/brutalist/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 团队卡片布局
const (
	teamCardTop    = 200.0
	teamCardHeight = 360.0
	teamCardGap    = 24.0
	teamPulseHz    = 1.5
)

// TeamScene 团队页：悬停成员卡片时弹出跳动的 [PHOTO] 标记
type TeamScene struct {
	page
	members []ecs.EntityID
}

// NewTeamScene 创建团队页
func NewTeamScene() *TeamScene {
	return &TeamScene{page: newPage("TeamScene")}
}

// Mount 为每个成员创建卡片
func (s *TeamScene) Mount(ctx *game.PageContext) {
	s.mountPage(ctx)
	team := ctx.Config.Team
	if len(team) == 0 {
		return
	}

	n := float64(len(team))
	width := (float64(config.GameWindowWidth) - 2*config.PagePadding - (n-1)*teamCardGap) / n
	for i, m := range team {
		id, err := entities.NewCardEntity(s.entityManager, entities.CardSpec{
			X:        config.PagePadding + float64(i)*(width+teamCardGap),
			Y:        teamCardTop,
			Width:    width,
			Height:   teamCardHeight,
			Title:    m.Name,
			Subtitle: m.Role,
		})
		if err != nil {
			log.Printf("[TeamScene] Failed to create card for %s: %v", m.ID, err)
			continue
		}
		s.members = append(s.members, id)
	}
}

// Unmount 卸载
func (s *TeamScene) Unmount() {
	s.unmountPage()
}

// Update 更新
func (s *TeamScene) Update(deltaTime float64) {
	if s.unmounted {
		return
	}
	s.pollInput()
	s.step(deltaTime)
}

// badgeScale [PHOTO] 标记的脉动缩放
func badgeScale(hoverTime float64) float64 {
	return 1 + 0.08*math.Sin(hoverTime*2*math.Pi*teamPulseHz)
}

// Draw 绘制
func (s *TeamScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)
	title, sub := routeTitle(s.ctx.Config, "/team")
	s.drawHeader(screen, title, sub)
	s.renderSystem.DrawCards(screen)

	for _, id := range s.members {
		hover, ok := ecs.GetComponent[*components.HoverComponent](s.entityManager, id)
		if !ok || hover.Lift < 0.05 {
			continue
		}
		scale := badgeScale(hover.HoverTime)
		face := s.ctx.Resources.Font(game.FontDisplay, config.BodyFontSize*1.4*scale)
		cx := hover.X + hover.Width/2
		cy := hover.Y + hover.Height/2 - hover.Lift*config.CardHoverLift
		size := 120 * scale
		utils.DrawBrutalBox(screen, float32(cx-size/2), float32(cy-size/2), float32(size), float32(size), utils.BoxStyle{
			Fill:        config.ColorAccent,
			Border:      config.ColorInk,
			BorderWidth: config.BorderWidth,
			Shadow:      config.ShadowOffset / 2,
			ShadowColor: config.ColorInk,
			Alpha:       hover.Lift,
		})
		utils.DrawTextCentered(screen, "[PHOTO]", face, cx, cy, config.ColorInk, hover.Lift)
	}
}
