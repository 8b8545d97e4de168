package game

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// NotFoundRoute 未知路径回退到的路由
const NotFoundRoute = "*"

// ErrUnknownRoute 路径没有注册
var ErrUnknownRoute = errors.New("unknown route")

// SceneFactory 场景工厂函数类型
// 每次导航都创建新的场景实例，页面状态不跨导航保留
type SceneFactory func() Scene

// SceneManager 路由器：按路径创建场景，保证任一时刻只有一个场景在运行
type SceneManager struct {
	routes       map[string]SceneFactory
	currentScene Scene
	currentPath  string
	ctx          *PageContext

	pendingPath string
	hasPending  bool
	listeners   []func(path string)
}

// NewSceneManager 创建路由器
// ctx 会注入到每个 Mountable 场景；其 Navigate / CurrentPath 字段由路由器接管
func NewSceneManager(ctx *PageContext) *SceneManager {
	if ctx == nil {
		ctx = &PageContext{}
	}
	sm := &SceneManager{
		routes: make(map[string]SceneFactory),
		ctx:    ctx,
	}
	ctx.Navigate = sm.RequestNavigate
	ctx.CurrentPath = sm.CurrentPath
	return sm
}

// Context 返回注入给场景的上下文
func (sm *SceneManager) Context() *PageContext {
	return sm.ctx
}

// Register 注册路由；同一路径重复注册会覆盖
func (sm *SceneManager) Register(path string, factory SceneFactory) {
	if factory == nil {
		return
	}
	sm.routes[path] = factory
}

// Routes 返回已注册的路径（排序后，不含 NotFoundRoute）
func (sm *SceneManager) Routes() []string {
	paths := make([]string, 0, len(sm.routes))
	for p := range sm.routes {
		if p != NotFoundRoute {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}

// OnNavigate 注册导航完成后的回调（导航菜单用它更新高亮）
func (sm *SceneManager) OnNavigate(fn func(path string)) {
	sm.listeners = append(sm.listeners, fn)
}

// Navigate 立即切换到 path 对应的场景
//
// 顺序：旧场景 Unmount → 创建新场景 → Mount。
// 未注册的路径回退到 NotFoundRoute，并返回包装了 ErrUnknownRoute 的错误；
// 连 NotFoundRoute 都没有注册时保持当前场景不变。
func (sm *SceneManager) Navigate(path string) error {
	factory, ok := sm.routes[path]
	var routeErr error
	if !ok {
		routeErr = fmt.Errorf("%w: %s", ErrUnknownRoute, path)
		factory, ok = sm.routes[NotFoundRoute]
		if !ok {
			return routeErr
		}
		log.Printf("[SceneManager] Unknown route %q, showing not-found page", path)
	}

	if u, ok := sm.currentScene.(Unmountable); ok {
		u.Unmount()
	}

	scene := factory()
	sm.currentScene = scene
	sm.currentPath = path
	if m, ok := scene.(Mountable); ok {
		m.Mount(sm.ctx)
	}
	log.Printf("[SceneManager] Navigated to %s", path)

	for _, fn := range sm.listeners {
		fn(path)
	}
	return routeErr
}

// RequestNavigate 在当前帧结束后导航
// 场景在自己的 Update 内部请求跳转时使用，避免场景在执行中途被卸载
func (sm *SceneManager) RequestNavigate(path string) {
	sm.pendingPath = path
	sm.hasPending = true
}

// CurrentPath 返回当前路径（未知路径时为用户请求的原始路径）
func (sm *SceneManager) CurrentPath() string {
	return sm.currentPath
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update 更新当前场景，然后处理本帧请求的导航
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
	sm.flushPending()
}

func (sm *SceneManager) flushPending() {
	if !sm.hasPending {
		return
	}
	path := sm.pendingPath
	sm.pendingPath, sm.hasPending = "", false
	if err := sm.Navigate(path); err != nil {
		log.Printf("[SceneManager] Navigate error: %v", err)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Shutdown 卸载当前场景（程序退出时调用）
func (sm *SceneManager) Shutdown() {
	if u, ok := sm.currentScene.(Unmountable); ok {
		u.Unmount()
	}
	sm.currentScene = nil
}
