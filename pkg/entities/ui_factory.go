package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/brutalist/pkg/components"
	"github.com/decker502/brutalist/pkg/ecs"
)

// CardSpec 卡片实体参数
type CardSpec struct {
	X, Y, Width, Height float64
	Title, Subtitle     string
	Fill                color.RGBA

	// 入场动画：Delay 秒后开始，持续 EmergeDuration 秒；EmergeDuration 为 0 时直接显示
	Delay          float64
	EmergeDuration float64

	OnClick func()
}

// NewCardEntity 创建可悬停的卡片实体
//
// 参数:
//   - em: 实体管理器
//   - spec: 卡片参数
//
// 返回:
//   - ecs.EntityID: 创建的实体ID
//   - error: 尺寸非法时返回错误
func NewCardEntity(em *ecs.EntityManager, spec CardSpec) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return 0, fmt.Errorf("card %q has invalid size %vx%v", spec.Title, spec.Width, spec.Height)
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: spec.X, Y: spec.Y})
	em.AddComponent(entityID, &components.HoverComponent{
		X:       spec.X,
		Y:       spec.Y,
		Width:   spec.Width,
		Height:  spec.Height,
		OnClick: spec.OnClick,
	})
	em.AddComponent(entityID, &components.LabelComponent{
		Title:    spec.Title,
		Subtitle: spec.Subtitle,
		Fill:     spec.Fill,
	})
	if spec.EmergeDuration > 0 {
		em.AddComponent(entityID, &components.EmergeComponent{
			Delay:    spec.Delay,
			Duration: spec.EmergeDuration,
		})
	}
	return entityID, nil
}
