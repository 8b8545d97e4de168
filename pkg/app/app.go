// Package app 提供展示应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/brutalist/pkg/config"
	"github.com/decker502/brutalist/pkg/game"
	"github.com/decker502/brutalist/pkg/modules"
	"github.com/decker502/brutalist/pkg/scenes"
	"github.com/decker502/brutalist/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// DefaultConfigPath 默认展示配置路径（磁盘优先，其次嵌入资源）
const DefaultConfigPath = "data/showcase.yaml"

// AppName gdata 存储使用的应用名
const AppName = "brutalist_showcase"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Page 启动时打开的页面路径，为空则使用 "/"
	Page string
	// ConfigPath 展示配置文件路径，为空则使用 DefaultConfigPath
	ConfigPath string
}

// App 是展示应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	ctx          *game.PageContext
	navMenu      *modules.NavMenuModule
	cursor       *modules.CursorModule
	touchOnly    bool
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化展示应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入资源；
// 未初始化时只能从磁盘读取配置。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	showcaseConfig, err := config.LoadShowcaseConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("展示配置加载失败: %w", err)
	}

	if err := utils.EnsureStorageDir(AppName); err != nil {
		log.Printf("[App] Storage dir check failed: %v", err)
	}
	// gdata 打开失败时使用仅内存的设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}

	resourceManager := game.NewResourceManager()
	ctx := game.NewPageContext(showcaseConfig, settingsManager, resourceManager)

	sceneManager := game.NewSceneManager(ctx)
	scenes.RegisterAll(sceneManager)

	a := &App{
		sceneManager: sceneManager,
		ctx:          ctx,
		navMenu:      modules.NewNavMenuModule(ctx),
		cursor:       modules.NewCursorModule(),
		verbose:      cfg.Verbose,
	}
	sceneManager.OnNavigate(a.navMenu.SetCurrent)

	page := cfg.Page
	if page == "" {
		page = "/"
	}
	log.Printf("[App] Starting page: %s", page)
	if err := sceneManager.Navigate(page); err != nil {
		// 未知路径已回退到 404 页面，不中断启动
		log.Printf("[App] %v", err)
	}

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	// 触屏设备没有悬停指针，不使用自定义光标
	a.touchOnly = utils.IsMobile()
	if !a.touchOnly {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	return a, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.WindowSize())
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	utils.PollInput()
	in := utils.CurrentInput()

	// 菜单先处理输入，消费掉的点击和 Escape 不再传给页面
	if a.navMenu.Update(deltaTime, in) {
		utils.ConsumeClick()
		utils.ConsumeEscape()
	}

	a.sceneManager.Update(deltaTime)

	if a.touchOnly {
		return nil
	}
	overTarget := a.navMenu.PointerOverTarget()
	if pt, ok := a.sceneManager.GetCurrentScene().(game.PointerTarget); ok && !a.navMenu.IsOpen() {
		overTarget = overTarget || pt.PointerOverTarget()
	}
	a.cursor.Update(deltaTime, in, overTarget, a.ctx.Settings.GetSettings().ReducedMotion)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		a.ctx.Settings.SetFullscreen(false)
	} else {
		ebiten.SetFullscreen(true)
		a.ctx.Settings.SetFullscreen(true)
	}
	if err := a.ctx.Settings.Save(); err != nil {
		log.Printf("[App] Failed to save settings: %v", err)
	}
}

// Draw 绘制画面：页面 → 导航菜单 → 光标
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
	a.navMenu.Draw(screen)
	if !a.touchOnly {
		a.cursor.Draw(screen)
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Shutdown 卸载当前页面并保存设置（程序退出时调用）
// 可重复调用
func (a *App) Shutdown() {
	if a.sceneManager.GetCurrentScene() == nil {
		return
	}
	a.navMenu.Close()
	a.sceneManager.Shutdown()
	if err := a.ctx.Settings.Save(); err != nil {
		log.Printf("[App] Failed to save settings: %v", err)
	}
}

// WindowSize 初始窗口大小（来自展示配置）
func (a *App) WindowSize() (int, int) {
	return a.ctx.Config.WindowSize()
}

// Title 窗口标题（来自展示配置）
func (a *App) Title() string {
	return a.ctx.Config.Window.Title
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
