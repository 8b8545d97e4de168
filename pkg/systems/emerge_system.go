package systems

import (
	"github.com/decker502/brutalist/pkg/components"
	"github.com/decker502/brutalist/pkg/ecs"
)

// EmergeSystem 推进卡片入场动画
type EmergeSystem struct {
	entityManager *ecs.EntityManager
}

// NewEmergeSystem 创建入场动画系统
func NewEmergeSystem(em *ecs.EntityManager) *EmergeSystem {
	return &EmergeSystem{entityManager: em}
}

// Update 推进 deltaTime 秒
func (s *EmergeSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.EmergeComponent](s.entityManager) {
		emerge, _ := ecs.GetComponent[*components.EmergeComponent](s.entityManager, id)
		emerge.Elapsed += deltaTime
	}
}

// SkipAll 立即完成所有入场动画（减弱动效）
func (s *EmergeSystem) SkipAll() {
	for _, id := range ecs.GetEntitiesWith1[*components.EmergeComponent](s.entityManager) {
		emerge, _ := ecs.GetComponent[*components.EmergeComponent](s.entityManager, id)
		emerge.Elapsed = emerge.Delay + emerge.Duration
	}
}
