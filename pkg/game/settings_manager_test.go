package game

import (
	"os"
	"testing"

	"github.com/decker502/brutalist/pkg/scroll"
	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata 管理器
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.ReducedMotion {
		t.Error("ReducedMotion: got true, want false")
	}
	if settings.CursorMode != "" {
		t.Errorf("CursorMode: got %q, want empty", settings.CursorMode)
	}
	if settings.WheelSensitivity != 1.0 {
		t.Errorf("WheelSensitivity: got %v, want 1.0", settings.WheelSensitivity)
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	sm.SetReducedMotion(true)
	// 降级模式下保存不报错
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode: %v", err)
	}
	if !sm.GetSettings().ReducedMotion {
		t.Error("in-memory setting lost")
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_brutalist_settings")

	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetReducedMotion(true)
	if err := sm1.SetCursorMode("spring"); err != nil {
		t.Fatalf("SetCursorMode() error: %v", err)
	}
	sm1.SetWheelSensitivity(2)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 创建新的设置管理器，验证加载
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()
	if !settings.ReducedMotion {
		t.Error("Loaded ReducedMotion: got false, want true")
	}
	if settings.CursorMode != "spring" {
		t.Errorf("Loaded CursorMode: got %q, want spring", settings.CursorMode)
	}
	if settings.WheelSensitivity != 2 {
		t.Errorf("Loaded WheelSensitivity: got %v, want 2", settings.WheelSensitivity)
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
}

// TestSettingsLoadCorrupted 测试损坏的设置文件回退到默认值
func TestSettingsLoadCorrupted(t *testing.T) {
	gdataManager := openTestGdata(t, "test_brutalist_corrupted")
	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("reducedMotion: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	if sm.GetSettings().WheelSensitivity != 1.0 {
		t.Error("corrupted settings should fall back to defaults")
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report the unmarshal error")
	}
}

// TestSetWheelSensitivityClamp 测试灵敏度范围校验
func TestSetWheelSensitivityClamp(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{1.5, 1.5},   // 正常值
		{0.1, 0.25},  // 低于下限
		{10, 4.0},    // 高于上限
		{0, 1.0},     // 非法值
		{-2, 1.0},    // 负数
	}

	for _, tt := range tests {
		sm.SetWheelSensitivity(tt.input)
		if sm.GetSettings().WheelSensitivity != tt.expected {
			t.Errorf("SetWheelSensitivity(%v): got %v, want %v",
				tt.input, sm.GetSettings().WheelSensitivity, tt.expected)
		}
	}
}

func TestSetCursorModeRejectsUnknown(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	if err := sm.SetCursorMode("bouncy"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if sm.GetSettings().CursorMode != "" {
		t.Error("invalid mode must not be stored")
	}
}

func TestApplyCursor(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	base := scroll.DefaultCursorConfig()

	got := sm.ApplyCursor(base)
	if got.Mode != scroll.CursorSmoothed || got.Sensitivity != 1 {
		t.Errorf("defaults should not change the config: %+v", got)
	}

	_ = sm.SetCursorMode("native")
	sm.SetWheelSensitivity(2)
	got = sm.ApplyCursor(base)
	if got.Mode != scroll.CursorNative {
		t.Errorf("Mode: got %v, want native", got.Mode)
	}
	if got.Sensitivity != 2 {
		t.Errorf("Sensitivity: got %v, want 2", got.Sensitivity)
	}
}
