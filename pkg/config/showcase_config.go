package config

import (
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"github.com/decker502/brutalist/pkg/embedded"
	"github.com/decker502/brutalist/pkg/scroll"
	"gopkg.in/yaml.v3"
)

// DefaultShowcaseConfigPath 默认配置文件路径
const DefaultShowcaseConfigPath = "data/showcase.yaml"

// ShowcaseConfig 整个展示应用的配置
type ShowcaseConfig struct {
	Window  WindowConfig       `yaml:"window"`
	Cursor  CursorConfig       `yaml:"cursor"`
	Reveal  RevealConfig       `yaml:"reveal"`
	Words   []WordConfig       `yaml:"words"`
	Home    HomeConfig         `yaml:"home"`
	Loader  LoaderConfig       `yaml:"loader"`
	Marquee MarqueeConfig      `yaml:"marquee"`
	Ripple  RippleConfig       `yaml:"ripple"`
	Team    []TeamMemberConfig `yaml:"team"`
	Gallery []GalleryConfig    `yaml:"gallery"`
	Routes  []RouteConfig      `yaml:"routes"`
}

// WindowConfig 窗口配置
// Width/Height 是初始窗口大小；逻辑画面固定为 GameWindowWidth x GameWindowHeight，由 Ebitengine 缩放
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// CursorConfig 虚拟滚动游标配置
type CursorConfig struct {
	Mode            string  `yaml:"mode"`            // smoothed | native | spring
	Sensitivity     float64 `yaml:"sensitivity"`     // 滚轮增量倍率
	EaseFactor      float64 `yaml:"easeFactor"`      // 指数平滑系数 (0, 1)
	SpringFrequency float64 `yaml:"springFrequency"` // 弹簧角频率
	SpringDamping   float64 `yaml:"springDamping"`   // 弹簧阻尼比
	FPS             int     `yaml:"fps"`
}

// RevealConfig 字母堆叠参数
type RevealConfig struct {
	LineHeight   float64 `yaml:"lineHeight"`
	TransitionMs float64 `yaml:"transitionMs"` // 渲染层插值时长
	BlurStep     float64 `yaml:"blurStep"`
	MaxBlur      float64 `yaml:"maxBlur"`
	OpacityStep  float64 `yaml:"opacityStep"`
	MinOpacity   float64 `yaml:"minOpacity"`
	Direction    string  `yaml:"direction"` // ascending | descending
}

// WordConfig 单词配置
type WordConfig struct {
	Text      string  `yaml:"text"`
	FontSize  float64 `yaml:"fontSize"`
	Threshold float64 `yaml:"threshold"` // 每个字母消耗的滚动距离
	Offset    float64 `yaml:"offset"`    // 开始堆叠的滚动位置
}

// HomeConfig 首页配置
type HomeConfig struct {
	Hero          string  `yaml:"hero"`
	Tagline       string  `yaml:"tagline"`
	Footer        string  `yaml:"footer"`
	CardDelayMs   float64 `yaml:"cardDelayMs"`
	CardStaggerMs float64 `yaml:"cardStaggerMs"`
}

// LoaderConfig 加载动画配置
type LoaderConfig struct {
	Title      string        `yaml:"title"`
	CountTo    int           `yaml:"countTo"`
	NavigateTo string        `yaml:"navigateTo"`
	Phases     []PhaseConfig `yaml:"phases"`
}

// PhaseConfig 时间线阶段
type PhaseConfig struct {
	Name       string  `yaml:"name"`
	DurationMs float64 `yaml:"durationMs"`
}

// MarqueeConfig 跑马灯配置
type MarqueeConfig struct {
	Text  string  `yaml:"text"`
	Speed float64 `yaml:"speed"` // 像素/秒
}

// RippleConfig 涟漪配置
type RippleConfig struct {
	LifetimeMs float64 `yaml:"lifetimeMs"`
	MaxScale   float64 `yaml:"maxScale"`
	BaseRadius float64 `yaml:"baseRadius"`
}

// TeamMemberConfig 团队成员
type TeamMemberConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

// GalleryConfig 图片占位条目
type GalleryConfig struct {
	Title string `yaml:"title"`
	Color string `yaml:"color"` // #rrggbb
}

// RouteConfig 导航路由
type RouteConfig struct {
	Path        string `yaml:"path"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// LoadShowcaseConfig 加载展示配置
// 优先读取磁盘文件，不存在时使用嵌入的 data/ 目录
func LoadShowcaseConfig(filePath string) (*ShowcaseConfig, error) {
	data, err := embedded.ReadFileOrDisk(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read showcase config: %w", err)
	}

	cfg, err := ParseShowcaseConfig(data)
	if err != nil {
		return nil, err
	}

	log.Printf("[Config] 加载展示配置: %s (%d 个单词, %d 个路由)", filePath, len(cfg.Words), len(cfg.Routes))
	return cfg, nil
}

// ParseShowcaseConfig 解析 YAML 内容
// 未填写的字段使用 DefaultShowcaseConfig 的值
func ParseShowcaseConfig(data []byte) (*ShowcaseConfig, error) {
	cfg := DefaultShowcaseConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse showcase YAML: %w", err)
	}

	if err := validateShowcaseConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid showcase config: %w", err)
	}
	return cfg, nil
}

// DefaultShowcaseConfig 返回最小可用的默认配置
// 配置文件中缺少的字段保留这里的值；完整内容见 data/showcase.yaml
func DefaultShowcaseConfig() *ShowcaseConfig {
	return &ShowcaseConfig{
		Window: WindowConfig{Title: "CLOUD. NINE.", Width: GameWindowWidth, Height: GameWindowHeight},
		Cursor: CursorConfig{
			Mode:            "smoothed",
			Sensitivity:     scroll.DefaultSensitivity,
			EaseFactor:      scroll.DefaultEaseFactor,
			SpringFrequency: scroll.DefaultSpringFrequency,
			SpringDamping:   scroll.DefaultSpringDamping,
			FPS:             scroll.DefaultFPS,
		},
		Reveal: RevealConfig{
			LineHeight:   72,
			TransitionMs: 1200,
			BlurStep:     1.5,
			MaxBlur:      8,
			OpacityStep:  0.15,
			MinOpacity:   0.2,
			Direction:    "ascending",
		},
		Words: []WordConfig{
			{Text: "BRUTALIST", FontSize: 64, Threshold: 40, Offset: 80},
		},
		Home: HomeConfig{
			Hero:          "CLOUD. NINE.",
			Tagline:       "A hackathon project exploring brutalist design through interactive UI elements",
			Footer:        "Brutalist UI/UX Experiment",
			CardDelayMs:   1400,
			CardStaggerMs: 150,
		},
		Loader: LoaderConfig{
			Title:      "BRUTAL",
			CountTo:    100,
			NavigateTo: "/",
			Phases: []PhaseConfig{
				{Name: "count", DurationMs: 3000},
				{Name: "hold", DurationMs: 400},
				{Name: "morph", DurationMs: 2000},
				{Name: "navigate", DurationMs: 0},
			},
		},
		Marquee: MarqueeConfig{
			Text:  "BRUTALIST DESIGN • EXPERIMENTAL UI • BOLD TYPOGRAPHY • GEOMETRIC FORMS • ",
			Speed: 120,
		},
		Ripple: RippleConfig{LifetimeMs: 600, MaxScale: 20, BaseRadius: 5},
		Routes: []RouteConfig{
			{Path: "/", Title: "HOME", Description: "Feature Index"},
		},
	}
}

// validateShowcaseConfig 验证配置的有效性
func validateShowcaseConfig(cfg *ShowcaseConfig) error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}

	if _, ok := scroll.ParseCursorMode(cfg.Cursor.Mode); !ok {
		return fmt.Errorf("cursor.mode must be smoothed, native or spring, got %q", cfg.Cursor.Mode)
	}
	if cfg.Cursor.EaseFactor <= 0 || cfg.Cursor.EaseFactor >= 1 {
		return fmt.Errorf("cursor.easeFactor must be in (0, 1), got %v", cfg.Cursor.EaseFactor)
	}
	if cfg.Cursor.Sensitivity <= 0 {
		return fmt.Errorf("cursor.sensitivity must be > 0, got %v", cfg.Cursor.Sensitivity)
	}

	if cfg.Reveal.LineHeight <= 0 {
		return fmt.Errorf("reveal.lineHeight must be > 0, got %v", cfg.Reveal.LineHeight)
	}
	if cfg.Reveal.TransitionMs < 0 {
		return fmt.Errorf("reveal.transitionMs must be >= 0, got %v", cfg.Reveal.TransitionMs)
	}
	if cfg.Reveal.MinOpacity < 0 || cfg.Reveal.MinOpacity > 1 {
		return fmt.Errorf("reveal.minOpacity must be in [0, 1], got %v", cfg.Reveal.MinOpacity)
	}
	if _, ok := parseDirection(cfg.Reveal.Direction); !ok {
		return fmt.Errorf("reveal.direction must be ascending or descending, got %q", cfg.Reveal.Direction)
	}

	for i, w := range cfg.Words {
		if w.Threshold <= 0 {
			return fmt.Errorf("words[%d] (%q): threshold must be > 0, got %v", i, w.Text, w.Threshold)
		}
		if w.Offset < 0 {
			return fmt.Errorf("words[%d] (%q): offset must be >= 0, got %v", i, w.Text, w.Offset)
		}
	}

	seenPhase := make(map[string]bool)
	for i, p := range cfg.Loader.Phases {
		if p.Name == "" {
			return fmt.Errorf("loader.phases[%d]: name cannot be empty", i)
		}
		if seenPhase[p.Name] {
			return fmt.Errorf("loader.phases[%d]: duplicate phase %q", i, p.Name)
		}
		seenPhase[p.Name] = true
		if p.DurationMs < 0 {
			return fmt.Errorf("loader.phases[%d] (%s): durationMs must be >= 0, got %v", i, p.Name, p.DurationMs)
		}
	}
	if cfg.Loader.CountTo <= 0 {
		return fmt.Errorf("loader.countTo must be > 0, got %d", cfg.Loader.CountTo)
	}

	if cfg.Ripple.LifetimeMs <= 0 {
		return fmt.Errorf("ripple.lifetimeMs must be > 0, got %v", cfg.Ripple.LifetimeMs)
	}

	for i, g := range cfg.Gallery {
		if _, err := ParseHexColor(g.Color); err != nil {
			return fmt.Errorf("gallery[%d] (%s): %w", i, g.Title, err)
		}
	}

	seenRoute := make(map[string]bool)
	for i, r := range cfg.Routes {
		if !strings.HasPrefix(r.Path, "/") {
			return fmt.Errorf("routes[%d]: path must start with '/', got %q", i, r.Path)
		}
		if seenRoute[r.Path] {
			return fmt.Errorf("routes[%d]: duplicate path %q", i, r.Path)
		}
		seenRoute[r.Path] = true
	}

	return nil
}

// WindowSize 返回初始窗口大小，未配置时使用逻辑画面大小
func (cfg *ShowcaseConfig) WindowSize() (int, int) {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return GameWindowWidth, GameWindowHeight
	}
	return cfg.Window.Width, cfg.Window.Height
}

// CursorSettings 转换为 scroll.CursorConfig
func (cfg *ShowcaseConfig) CursorSettings() scroll.CursorConfig {
	mode, _ := scroll.ParseCursorMode(cfg.Cursor.Mode)
	return scroll.CursorConfig{
		Mode:            mode,
		Sensitivity:     cfg.Cursor.Sensitivity,
		EaseFactor:      cfg.Cursor.EaseFactor,
		SpringFrequency: cfg.Cursor.SpringFrequency,
		SpringDamping:   cfg.Cursor.SpringDamping,
		FPS:             cfg.Cursor.FPS,
	}
}

// RevealOptions 转换为 scroll.RevealOptions
func (cfg *ShowcaseConfig) RevealOptions() scroll.RevealOptions {
	dir, _ := parseDirection(cfg.Reveal.Direction)
	return scroll.RevealOptions{
		LineHeight:  cfg.Reveal.LineHeight,
		BlurStep:    cfg.Reveal.BlurStep,
		MaxBlur:     cfg.Reveal.MaxBlur,
		OpacityStep: cfg.Reveal.OpacityStep,
		MinOpacity:  cfg.Reveal.MinOpacity,
		Direction:   dir,
	}
}

// TransitionSeconds 渲染层插值时长（秒）
func (cfg *ShowcaseConfig) TransitionSeconds() float64 {
	return cfg.Reveal.TransitionMs / 1000
}

// BuildWords 根据配置创建 scroll.Word 列表
func (cfg *ShowcaseConfig) BuildWords() ([]scroll.Word, error) {
	words := make([]scroll.Word, 0, len(cfg.Words))
	for _, wc := range cfg.Words {
		w, err := scroll.NewWord(wc.Text, wc.FontSize, wc.Threshold, wc.Offset)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}

// FindRoute 按路径查找路由配置
func (cfg *ShowcaseConfig) FindRoute(path string) (RouteConfig, bool) {
	for _, r := range cfg.Routes {
		if r.Path == path {
			return r, true
		}
	}
	return RouteConfig{}, false
}

func parseDirection(name string) (scroll.Direction, bool) {
	switch name {
	case "ascending", "":
		return scroll.StackAscending, true
	case "descending":
		return scroll.StackDescending, true
	}
	return scroll.StackAscending, false
}

// ParseHexColor 解析 #rrggbb 格式颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color must be #rrggbb, got %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
