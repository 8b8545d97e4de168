package systems

import (
	"sort"

	"github.com/decker502/brutalist/pkg/components"
	"github.com/decker502/brutalist/pkg/config"
	"github.com/decker502/brutalist/pkg/ecs"
	"github.com/decker502/brutalist/pkg/game"
	"github.com/decker502/brutalist/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// LetterRenderSystem 绘制滚动文字页面的字母卡片
//
// 渲染顺序按 StackDepth 从小到大，深度大的卡片压在上面。
// 模糊用多次偏移叠加近似，Ebitengine 没有内置的高斯模糊。
type LetterRenderSystem struct {
	entityManager *ecs.EntityManager
	resources     *game.ResourceManager
	cardHeight    float64
}

// NewLetterRenderSystem 创建字母渲染系统
//
// 参数:
//   - em: 实体管理器
//   - rm: 资源管理器（字体）
//   - lineHeight: 单元槽位高度，卡片高度略小于它以露出堆叠边缘
func NewLetterRenderSystem(em *ecs.EntityManager, rm *game.ResourceManager, lineHeight float64) *LetterRenderSystem {
	return &LetterRenderSystem{
		entityManager: em,
		resources:     rm,
		cardHeight:    lineHeight - 6,
	}
}

// drawOrder 返回按 StackDepth 排序的字母实体
func (s *LetterRenderSystem) drawOrder() []ecs.EntityID {
	ids := ecs.GetEntitiesWith3[*components.LetterComponent, *components.PositionComponent, *components.OffsetTweenComponent](s.entityManager)
	depth := func(id ecs.EntityID) int {
		if v, ok := ecs.GetComponent[*components.VisualComponent](s.entityManager, id); ok {
			return v.StackDepth
		}
		return 0
	}
	sort.SliceStable(ids, func(i, j int) bool { return depth(ids[i]) < depth(ids[j]) })
	return ids
}

// Draw 绘制所有字母
func (s *LetterRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.drawOrder() {
		letter, _ := ecs.GetComponent[*components.LetterComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		tween, _ := ecs.GetComponent[*components.OffsetTweenComponent](s.entityManager, id)

		opacity, blur := 1.0, 0.0
		if v, ok := ecs.GetComponent[*components.VisualComponent](s.entityManager, id); ok {
			opacity, blur = v.Opacity, v.Blur
		}

		width := letter.FontSize * 1.25
		x := pos.X
		y := pos.Y + tween.Offset()

		fill := config.ColorPrimary
		if !letter.Visible {
			fill = config.ColorAsh
		}
		utils.DrawBrutalBox(screen, float32(x), float32(y), float32(width), float32(s.cardHeight), utils.BoxStyle{
			Fill:        fill,
			Border:      config.ColorInk,
			BorderWidth: config.BorderWidth,
			Shadow:      config.ShadowOffset / 2,
			ShadowColor: config.ColorInk,
			Alpha:       opacity,
		})

		face := s.resources.Font(game.FontDisplay, letter.FontSize*0.8)
		utils.DrawBlurredText(screen, string(letter.Rune), face, x+width/2, y+s.cardHeight/2, config.ColorInk, opacity, blur)
	}
}
