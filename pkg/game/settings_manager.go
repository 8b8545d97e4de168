package game

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/brutalist/pkg/scroll"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 滚轮灵敏度范围
const (
	MinWheelSensitivity = 0.25
	MaxWheelSensitivity = 4.0
)

// ShowcaseSettings 用户偏好设置
// 与配置文件不同，这些值由用户在运行时修改并持久化
type ShowcaseSettings struct {
	// ReducedMotion 减弱动效：暂停滚动文字帧驱动、跳过入场动画、插值直接到位
	ReducedMotion bool `yaml:"reducedMotion"`
	// CursorMode 覆盖配置文件中的游标模式，空字符串表示不覆盖
	CursorMode string `yaml:"cursorMode"`
	// WheelSensitivity 滚轮灵敏度倍率
	WheelSensitivity float64 `yaml:"wheelSensitivity"`
	// Fullscreen 启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *ShowcaseSettings {
	return &ShowcaseSettings{
		ReducedMotion:    false,
		CursorMode:       "",
		WheelSensitivity: 1.0,
		Fullscreen:       false,
	}
}

// SettingsManager 设置管理器
// 负责用户设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager    // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ShowcaseSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 始终为 nil，加载失败只记录日志并使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 在默认值之上反序列化，旧版本文件缺少的字段保持默认
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.WheelSensitivity = clampSensitivity(loaded.WheelSensitivity)
	if _, ok := scroll.ParseCursorMode(loaded.CursorMode); !ok {
		loaded.CursorMode = ""
	}

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *ShowcaseSettings {
	return sm.settings
}

// SetReducedMotion 设置减弱动效
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetReducedMotion(enabled bool) {
	sm.settings.ReducedMotion = enabled
}

// SetCursorMode 设置游标模式覆盖
//
// 参数：
//   - mode: smoothed | native | spring，空字符串表示使用配置文件
//
// 返回：
//   - error: 模式名称无效时返回错误，设置保持不变
func (sm *SettingsManager) SetCursorMode(mode string) error {
	if mode != "" {
		if _, ok := scroll.ParseCursorMode(mode); !ok {
			return fmt.Errorf("unknown cursor mode %q", mode)
		}
	}
	sm.settings.CursorMode = mode
	return nil
}

// SetWheelSensitivity 设置滚轮灵敏度，限制在 [MinWheelSensitivity, MaxWheelSensitivity]
func (sm *SettingsManager) SetWheelSensitivity(v float64) {
	sm.settings.WheelSensitivity = clampSensitivity(v)
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// ApplyCursor 把用户设置叠加到配置文件给出的游标配置上
func (sm *SettingsManager) ApplyCursor(base scroll.CursorConfig) scroll.CursorConfig {
	if mode, ok := scroll.ParseCursorMode(sm.settings.CursorMode); ok && sm.settings.CursorMode != "" {
		base.Mode = mode
	}
	if base.Sensitivity <= 0 {
		base.Sensitivity = scroll.DefaultSensitivity
	}
	base.Sensitivity *= sm.settings.WheelSensitivity
	return base
}

// clampSensitivity 将灵敏度限制在允许范围内，非法值回到 1
func clampSensitivity(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 1.0
	}
	return math.Max(MinWheelSensitivity, math.Min(MaxWheelSensitivity, v))
}
