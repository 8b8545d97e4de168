package entities

import (
	"fmt"

	"github.com/decker502/brutalist/pkg/components"
	"github.com/decker502/brutalist/pkg/ecs"
)

// RippleSpec 涟漪参数
type RippleSpec struct {
	Lifetime   float64 // 秒
	BaseRadius float64
	MaxScale   float64
}

// NewRippleEffect 在点击位置创建一个涟漪实体
// 涟漪由 RippleSystem 放大并淡出，生命周期结束后由 LifetimeSystem 删除
//
// 参数:
//   - em: 实体管理器
//   - x, y: 点击位置（屏幕坐标）
//   - spec: 涟漪参数
//
// 返回:
//   - ecs.EntityID: 创建的实体ID，失败返回 0
//   - error: 参数非法时返回错误
func NewRippleEffect(em *ecs.EntityManager, x, y float64, spec RippleSpec) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if spec.Lifetime <= 0 {
		return 0, fmt.Errorf("ripple lifetime must be positive, got %v", spec.Lifetime)
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.RippleComponent{
		BaseRadius: spec.BaseRadius,
		MaxScale:   spec.MaxScale,
		Scale:      0,
		Alpha:      1,
	})
	em.AddComponent(entityID, &components.LifetimeComponent{
		MaxLifetime: spec.Lifetime,
	})
	return entityID, nil
}
