package scenes

import (
	"log"

	"github.com/decker502/brutalist/pkg/config"
	"github.com/decker502/brutalist/pkg/entities"
	"github.com/decker502/brutalist/pkg/game"
	"github.com/decker502/brutalist/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// NotFoundScene 404 页
type NotFoundScene struct {
	page
	path string
}

// NewNotFoundScene 创建 404 页
func NewNotFoundScene() *NotFoundScene {
	return &NotFoundScene{page: newPage("NotFoundScene")}
}

// Mount 记录请求的路径并创建返回首页的按钮
func (s *NotFoundScene) Mount(ctx *game.PageContext) {
	s.mountPage(ctx)
	if ctx.CurrentPath != nil {
		s.path = ctx.CurrentPath()
	}
	_, err := entities.NewCardEntity(s.entityManager, entities.CardSpec{
		X:        config.PagePadding,
		Y:        460,
		Width:    320,
		Height:   100,
		Title:    "BACK HOME",
		Subtitle: "/",
		OnClick:  func() { s.navigate("/") },
	})
	if err != nil {
		log.Printf("[NotFoundScene] Failed to create home link: %v", err)
	}
}

// Unmount 卸载
func (s *NotFoundScene) Unmount() {
	s.unmountPage()
}

// Path 用户请求的路径
func (s *NotFoundScene) Path() string {
	return s.path
}

// Update 更新
func (s *NotFoundScene) Update(deltaTime float64) {
	if s.unmounted {
		return
	}
	s.pollInput()
	s.step(deltaTime)
}

// Draw 绘制
func (s *NotFoundScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)
	rm := s.ctx.Resources
	big := rm.Font(game.FontDisplay, config.TitleFontSize*3)
	utils.DrawText(screen, "404", big, config.PagePadding+config.ShadowOffset, 80+config.ShadowOffset, config.ColorAccent, 1)
	utils.DrawText(screen, "404", big, config.PagePadding, 80, config.ColorInk, 1)

	body := rm.Font(game.FontMono, config.BodyFontSize)
	utils.DrawText(screen, "NOTHING AT "+s.path, body, config.PagePadding, 380, config.ColorSteel, 1)
	s.renderSystem.DrawCards(screen)
}
