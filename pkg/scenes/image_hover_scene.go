package scenes

import (
	"image/color"
	"log"
	"math"

	"github.com/decker502/brutalist/pkg/config"
	"github.com/decker502/brutalist/pkg/ecs"
	"github.com/decker502/brutalist/pkg/entities"
	"github.com/decker502/brutalist/pkg/game"
	"github.com/decker502/brutalist/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 悬停预览布局
const (
	hoverRowTop    = 180.0
	hoverRowHeight = 110.0
	hoverRowGap    = 16.0
	previewWidth   = 320
	previewHeight  = 220
	previewFollow  = 10.0 // 预览跟随指针的平滑速率（每秒）
	previewMaxTilt = 0.12 // 弧度
)

// galleryItem 图片占位条目
type galleryItem struct {
	entity ecs.EntityID
	color  color.RGBA
}

// galleryColor 解析配置中的颜色，非法颜色退回钢灰色
func galleryColor(g config.GalleryConfig) color.RGBA {
	c, err := config.ParseHexColor(g.Color)
	if err != nil {
		log.Printf("[Gallery] Invalid color %q for %s: %v", g.Color, g.Title, err)
		return config.ColorSteel
	}
	return c
}

// ImageHoverScene 列表行悬停时显示跟随指针的预览图
type ImageHoverScene struct {
	page
	items []galleryItem

	previewX, previewY float64
	previewVX          float64 // 上一帧的横向速度，用于倾斜
	previewAlpha       float64
	active             int // 当前预览的条目，-1 表示无
}

// NewImageHoverScene 创建悬停预览页
func NewImageHoverScene() *ImageHoverScene {
	return &ImageHoverScene{page: newPage("ImageHoverScene"), active: -1}
}

// Mount 为每个条目创建一行
func (s *ImageHoverScene) Mount(ctx *game.PageContext) {
	s.mountPage(ctx)
	width := float64(config.GameWindowWidth) - 2*config.PagePadding
	for i, g := range ctx.Config.Gallery {
		id, err := entities.NewCardEntity(s.entityManager, entities.CardSpec{
			X:      config.PagePadding,
			Y:      hoverRowTop + float64(i)*(hoverRowHeight+hoverRowGap),
			Width:  width,
			Height: hoverRowHeight,
			Title:  g.Title,
		})
		if err != nil {
			log.Printf("[ImageHoverScene] Failed to create row %d: %v", i, err)
			continue
		}
		s.items = append(s.items, galleryItem{entity: id, color: galleryColor(g)})
	}
}

// Unmount 卸载
func (s *ImageHoverScene) Unmount() {
	s.unmountPage()
}

// Active 当前预览的条目序号，-1 表示无
func (s *ImageHoverScene) Active() int {
	return s.active
}

// Update 预览位置平滑跟随指针
func (s *ImageHoverScene) Update(deltaTime float64) {
	if s.unmounted {
		return
	}
	in := s.pollInput()
	s.step(deltaTime)

	s.active = -1
	hovered := s.hoverSystem.Hovered()
	for i, item := range s.items {
		if item.entity == hovered {
			s.active = i
		}
	}

	k := math.Min(1, deltaTime*previewFollow)
	if s.reducedMotion() {
		k = 1
	}
	prevX := s.previewX
	s.previewX = utils.Lerp(s.previewX, float64(in.X), k)
	s.previewY = utils.Lerp(s.previewY, float64(in.Y), k)
	if deltaTime > 0 {
		s.previewVX = (s.previewX - prevX) / deltaTime
	}

	target := 0.0
	if s.active >= 0 {
		target = 1
	}
	s.previewAlpha = utils.Lerp(s.previewAlpha, target, k)
}

// Draw 绘制
func (s *ImageHoverScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)
	title, sub := routeTitle(s.ctx.Config, "/image-hover")
	s.drawHeader(screen, title, sub)
	s.renderSystem.DrawCards(screen)

	if s.active < 0 || s.previewAlpha < 0.01 {
		return
	}
	img := s.ctx.Resources.SolidImage(previewWidth, previewHeight, s.items[s.active].color)
	tilt := math.Max(-previewMaxTilt, math.Min(previewMaxTilt, s.previewVX/4000))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-previewWidth/2, -previewHeight/2)
	op.GeoM.Rotate(tilt)
	op.GeoM.Translate(s.previewX, s.previewY)
	op.ColorScale.ScaleAlpha(float32(s.previewAlpha))
	screen.DrawImage(img, op)
}
