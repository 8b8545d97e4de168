package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a page of the showcase (home, loader, scroll text ...).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Mountable 是一个可选接口，场景在成为当前页面时收到注入的上下文
//
// 场景不得读取任何全局状态（会话、滚动锁、设置），一律通过 PageContext 获取
type Mountable interface {
	Mount(ctx *PageContext)
}

// Unmountable 是一个可选接口，场景被替换时同步调用
//
// 实现者必须在 Unmount 返回前取消所有帧回调和定时器，
// 之后不得再有任何回调修改场景状态
type Unmountable interface {
	Unmount()
}

// PointerTarget 是一个可选接口，报告指针是否停在可交互元素上
// CursorModule 据此放大自定义光标
type PointerTarget interface {
	PointerOverTarget() bool
}
