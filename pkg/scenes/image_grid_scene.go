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

// 图片网格布局
const (
	gridColumns   = 3
	gridRows      = 2
	gridTop       = 170.0
	gridGap       = 28.0
	gridPull      = 0.06 // 瓦片向指针偏移的比例
	gridMaxOffset = 18.0
	gridFollow    = 8.0
)

// gridTile 网格瓦片
type gridTile struct {
	galleryItem
	title  string
	dx, dy float64
}

// ImageGridScene 图片网格：瓦片随指针偏移和倾斜
type ImageGridScene struct {
	page
	tiles []*gridTile
}

// NewImageGridScene 创建图片网格页
func NewImageGridScene() *ImageGridScene {
	return &ImageGridScene{page: newPage("ImageGridScene")}
}

// Mount 用图片条目循环填满网格
func (s *ImageGridScene) Mount(ctx *game.PageContext) {
	s.mountPage(ctx)
	gallery := ctx.Config.Gallery
	if len(gallery) == 0 {
		return
	}

	w := (float64(config.GameWindowWidth) - 2*config.PagePadding - (gridColumns-1)*gridGap) / gridColumns
	h := (float64(config.GameWindowHeight) - gridTop - config.PagePadding - (gridRows-1)*gridGap) / gridRows
	for i := 0; i < gridColumns*gridRows; i++ {
		g := gallery[i%len(gallery)]
		id, err := entities.NewCardEntity(s.entityManager, entities.CardSpec{
			X:      config.PagePadding + float64(i%gridColumns)*(w+gridGap),
			Y:      gridTop + float64(i/gridColumns)*(h+gridGap),
			Width:  w,
			Height: h,
			Title:  g.Title,
			Fill:   galleryColor(g),
		})
		if err != nil {
			log.Printf("[ImageGridScene] Failed to create tile %d: %v", i, err)
			continue
		}
		s.tiles = append(s.tiles, &gridTile{galleryItem: galleryItem{entity: id, color: galleryColor(g)}, title: g.Title})
	}
}

// Unmount 卸载
func (s *ImageGridScene) Unmount() {
	s.unmountPage()
}

// tileOffset 瓦片朝指针方向的目标偏移（限制在 gridMaxOffset 内）
func tileOffset(cx, cy, px, py float64) (float64, float64) {
	dx := (px - cx) * gridPull
	dy := (py - cy) * gridPull
	if d := math.Hypot(dx, dy); d > gridMaxOffset {
		dx, dy = dx/d*gridMaxOffset, dy/d*gridMaxOffset
	}
	return dx, dy
}

// Update 平滑更新瓦片偏移
func (s *ImageGridScene) Update(deltaTime float64) {
	if s.unmounted {
		return
	}
	in := s.pollInput()
	s.step(deltaTime)

	k := math.Min(1, deltaTime*gridFollow)
	for _, t := range s.tiles {
		hover, ok := ecs.GetComponent[*components.HoverComponent](s.entityManager, t.entity)
		if !ok {
			continue
		}
		tx, ty := 0.0, 0.0
		if !s.reducedMotion() && in.X >= 0 {
			tx, ty = tileOffset(hover.X+hover.Width/2, hover.Y+hover.Height/2, float64(in.X), float64(in.Y))
		}
		t.dx += (tx - t.dx) * k
		t.dy += (ty - t.dy) * k
	}
}

// Draw 绘制倾斜的瓦片
func (s *ImageGridScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)
	title, sub := routeTitle(s.ctx.Config, "/image-grid")
	s.drawHeader(screen, title, sub)

	ink := s.ctx.Resources.SolidImage(1, 1, config.ColorInk)
	face := s.ctx.Resources.Font(game.FontDisplay, config.LabelFontSize*1.5)
	for _, t := range s.tiles {
		hover, ok := ecs.GetComponent[*components.HoverComponent](s.entityManager, t.entity)
		if !ok {
			continue
		}
		img := s.ctx.Resources.SolidImage(int(hover.Width), int(hover.Height), t.color)
		tilt := t.dx / gridMaxOffset * 0.04

		// 硬阴影
		shadow := &ebiten.DrawImageOptions{}
		shadow.GeoM.Scale(hover.Width, hover.Height)
		shadow.GeoM.Translate(-hover.Width/2, -hover.Height/2)
		shadow.GeoM.Rotate(tilt)
		shadow.GeoM.Translate(hover.X+hover.Width/2+config.ShadowOffset-t.dx, hover.Y+hover.Height/2+config.ShadowOffset-t.dy)
		screen.DrawImage(ink, shadow)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-hover.Width/2, -hover.Height/2)
		op.GeoM.Rotate(tilt)
		op.GeoM.Translate(hover.X+hover.Width/2+t.dx, hover.Y+hover.Height/2+t.dy)
		screen.DrawImage(img, op)

		alpha := 0.6 + 0.4*hover.Lift
		utils.DrawText(screen, t.title, face, hover.X+16+t.dx, hover.Y+16+t.dy, config.ColorInk, alpha)
	}
}
