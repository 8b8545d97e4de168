package systems

import (
	"github.com/decker502/brutalist/pkg/components"
	"github.com/decker502/brutalist/pkg/config"
	"github.com/decker502/brutalist/pkg/ecs"
	"github.com/decker502/brutalist/pkg/game"
	"github.com/decker502/brutalist/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// emergeSink 入场动画开始时卡片的下沉距离
const emergeSink = 40.0

// RenderSystem 绘制卡片和涟漪
//
// 职责范围：
//   - 卡片：HoverComponent + LabelComponent（可选 EmergeComponent）
//   - 涟漪：RippleComponent + PositionComponent
//
// 不包括：
//   - 字母卡片由 LetterRenderSystem 处理
type RenderSystem struct {
	entityManager *ecs.EntityManager
	resources     *game.ResourceManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, rm *game.ResourceManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		resources:     rm,
	}
}

// Draw 先画卡片，再画涟漪
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.DrawCards(screen)
	s.DrawRipples(screen)
}

// cardTransform 计算卡片的透明度和纵向偏移（入场 + 悬停）
func cardTransform(emerge *components.EmergeComponent, hover *components.HoverComponent) (alpha, dy float64) {
	alpha = 1
	if emerge != nil {
		p := utils.EaseOutCubic(emerge.Progress())
		alpha = p
		dy = (1 - p) * emergeSink
	}
	dy -= hover.Lift * config.CardHoverLift
	return alpha, dy
}

// DrawCards 绘制所有卡片
func (s *RenderSystem) DrawCards(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.HoverComponent, *components.LabelComponent](s.entityManager)
	titleFace := s.resources.Font(game.FontDisplay, config.LabelFontSize*1.5)
	subFace := s.resources.Font(game.FontMono, config.SmallFontSize)

	for _, id := range ids {
		hover, _ := ecs.GetComponent[*components.HoverComponent](s.entityManager, id)
		label, _ := ecs.GetComponent[*components.LabelComponent](s.entityManager, id)
		emerge, _ := ecs.GetComponent[*components.EmergeComponent](s.entityManager, id)

		alpha, dy := cardTransform(emerge, hover)
		if alpha <= 0 {
			continue
		}

		fill := label.Fill
		if fill.A == 0 {
			fill = config.ColorBackground
		}
		if hover.Hovered {
			fill = config.ColorPrimary
		}

		x, y := float32(hover.X), float32(hover.Y+dy)
		shadow := float32(config.ShadowOffset * (1 + hover.Lift*0.5))
		utils.DrawBrutalBox(screen, x, y, float32(hover.Width), float32(hover.Height), utils.BoxStyle{
			Fill:        fill,
			Border:      config.ColorInk,
			BorderWidth: config.BorderWidth * 2,
			Shadow:      shadow,
			ShadowColor: config.ColorInk,
			Alpha:       alpha,
		})

		utils.DrawText(screen, label.Title, titleFace, hover.X+16, hover.Y+dy+16, config.ColorInk, alpha)
		if label.Subtitle != "" {
			utils.DrawText(screen, label.Subtitle, subFace, hover.X+16, hover.Y+dy+hover.Height-32, config.ColorSteel, alpha)
		}
	}
}

// DrawRipples 绘制所有涟漪（空心圆环）
func (s *RenderSystem) DrawRipples(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.RippleComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		ripple, _ := ecs.GetComponent[*components.RippleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if ripple.Alpha <= 0 {
			continue
		}
		r := float32(ripple.BaseRadius * (1 + ripple.Scale))
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), r, config.BorderWidth*2, utils.WithAlpha(config.ColorInk, ripple.Alpha), true)
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r, utils.WithAlpha(config.ColorAccent, ripple.Alpha*0.3), true)
	}
}
