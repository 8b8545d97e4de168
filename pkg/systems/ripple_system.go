package systems

import (
	"github.com/decker502/brutalist/pkg/components"
	"github.com/decker502/brutalist/pkg/ecs"
	"github.com/decker502/brutalist/pkg/utils"
)

// RippleSystem 根据生命周期进度更新涟漪的缩放和透明度
// 缩放 0 → MaxScale（ease-out cubic），透明度 1 → 0
type RippleSystem struct {
	entityManager *ecs.EntityManager
}

// NewRippleSystem 创建涟漪系统
func NewRippleSystem(em *ecs.EntityManager) *RippleSystem {
	return &RippleSystem{entityManager: em}
}

// Update 在 LifetimeSystem 之后调用
func (s *RippleSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.RippleComponent, *components.LifetimeComponent](s.entityManager)
	for _, id := range ids {
		ripple, _ := ecs.GetComponent[*components.RippleComponent](s.entityManager, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)

		e := utils.EaseOutCubic(lifetime.Progress())
		ripple.Scale = ripple.MaxScale * e
		ripple.Alpha = 1 - e
	}
}
