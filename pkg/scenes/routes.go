package scenes

import "github.com/decker502/brutalist/pkg/game"

// Factories 返回所有页面的路由表
// 立体 "mystery" 页面没有注册，访问时显示 404
func Factories() map[string]game.SceneFactory {
	return map[string]game.SceneFactory{
		"/":                func() game.Scene { return NewHomeScene() },
		"/loader":          func() game.Scene { return NewLoaderScene() },
		"/image-hover":     func() game.Scene { return NewImageHoverScene() },
		"/image-grid":      func() game.Scene { return NewImageGridScene() },
		"/marquee":         func() game.Scene { return NewMarqueeScene() },
		"/team":            func() game.Scene { return NewTeamScene() },
		"/ripple":          func() game.Scene { return NewRippleScene() },
		"/scroll-text":     func() game.Scene { return NewScrollTextScene() },
		game.NotFoundRoute: func() game.Scene { return NewNotFoundScene() },
	}
}

// RegisterAll 把所有页面注册到路由器
func RegisterAll(sm *game.SceneManager) {
	for path, factory := range Factories() {
		sm.Register(path, factory)
	}
}
