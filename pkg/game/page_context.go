package game

import (
	"log"
	"sort"

	"github.com/decker502/brutalist/pkg/config"
)

// PageContext 注入给每个场景的上下文
// 代替浏览器中的全局对象（sessionStorage、document.body.style 等）
type PageContext struct {
	Session    *Session
	ScrollLock *ScrollLock
	Settings   *SettingsManager
	Config     *config.ShowcaseConfig
	Resources  *ResourceManager

	// Navigate 请求在帧末切换页面（由 SceneManager 设置）
	Navigate func(path string)
	// CurrentPath 当前页面路径（由 SceneManager 设置）
	CurrentPath func() string
}

// NewPageContext 创建上下文，nil 字段使用默认值
func NewPageContext(cfg *config.ShowcaseConfig, settings *SettingsManager, rm *ResourceManager) *PageContext {
	if cfg == nil {
		cfg = config.DefaultShowcaseConfig()
	}
	if settings == nil {
		settings, _ = NewSettingsManager(nil)
	}
	if rm == nil {
		rm = NewResourceManager()
	}
	return &PageContext{
		Session:    NewSession(),
		ScrollLock: NewScrollLock(),
		Settings:   settings,
		Config:     cfg,
		Resources:  rm,
	}
}

// Session 会话级标记（进程退出即丢失）
type Session struct {
	flags map[string]bool
}

// NewSession 创建空会话
func NewSession() *Session {
	return &Session{flags: make(map[string]bool)}
}

// Visited 检查标记是否已设置
func (s *Session) Visited(key string) bool {
	return s.flags[key]
}

// MarkVisited 设置标记
// 返回 true 表示这是本会话第一次设置
func (s *Session) MarkVisited(key string) bool {
	if s.flags[key] {
		return false
	}
	s.flags[key] = true
	return true
}

// ScrollLock 页面滚动锁
// 多个持有者可以同时加锁，全部释放后才解锁
type ScrollLock struct {
	holders map[string]struct{}
}

// NewScrollLock 创建未加锁的滚动锁
func NewScrollLock() *ScrollLock {
	return &ScrollLock{holders: make(map[string]struct{})}
}

// Acquire 以 owner 身份加锁（重复加锁无副作用）
func (l *ScrollLock) Acquire(owner string) {
	if _, held := l.holders[owner]; !held {
		l.holders[owner] = struct{}{}
		log.Printf("[ScrollLock] Acquired by %s", owner)
	}
}

// Release 释放 owner 持有的锁
func (l *ScrollLock) Release(owner string) {
	if _, held := l.holders[owner]; held {
		delete(l.holders, owner)
		log.Printf("[ScrollLock] Released by %s", owner)
	}
}

// Locked 是否有任何持有者
func (l *ScrollLock) Locked() bool {
	return len(l.holders) > 0
}

// Holders 返回当前持有者（排序后）
func (l *ScrollLock) Holders() []string {
	out := make([]string, 0, len(l.holders))
	for h := range l.holders {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}
