package systems

import (
	"github.com/decker502/brutalist/pkg/components"
	"github.com/decker502/brutalist/pkg/ecs"
)

// TweenSystem 推进所有位移插值
type TweenSystem struct {
	entityManager *ecs.EntityManager
}

// NewTweenSystem 创建插值系统
func NewTweenSystem(em *ecs.EntityManager) *TweenSystem {
	return &TweenSystem{entityManager: em}
}

// Update 推进 deltaTime 秒
func (s *TweenSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.OffsetTweenComponent](s.entityManager) {
		tween, _ := ecs.GetComponent[*components.OffsetTweenComponent](s.entityManager, id)
		tween.Tween.Advance(deltaTime)
	}
}

// Settled 所有插值是否都已到达目标
func (s *TweenSystem) Settled() bool {
	for _, id := range ecs.GetEntitiesWith1[*components.OffsetTweenComponent](s.entityManager) {
		tween, _ := ecs.GetComponent[*components.OffsetTweenComponent](s.entityManager, id)
		if !tween.Tween.Done() {
			return false
		}
	}
	return true
}
