package systems

import (
	"math"

	"github.com/decker502/brutalist/pkg/components"
	"github.com/decker502/brutalist/pkg/ecs"
	"github.com/decker502/brutalist/pkg/utils"
)

// hoverLiftRate 悬停上移的平滑速率（每秒）
const hoverLiftRate = 12.0

// HoverSystem 卡片悬停与点击
//
// 职责：
//   - 检测指针悬停，更新 Hovered / HoverTime
//   - 平滑 Lift（0 ~ 1），供渲染系统做上移和阴影
//   - 指针按下时触发 OnClick
//
// 输入由调用方传入，系统本身不读取 ebiten 输入，便于测试
type HoverSystem struct {
	entityManager *ecs.EntityManager
	hovered       ecs.EntityID
}

// NewHoverSystem 创建悬停系统
func NewHoverSystem(em *ecs.EntityManager) *HoverSystem {
	return &HoverSystem{entityManager: em}
}

// Update 处理一帧输入
// 同一位置有多个卡片重叠时，ID 最大（最后创建、最上层）的卡片获得悬停
func (s *HoverSystem) Update(deltaTime float64, input utils.InputState) {
	px, py := float64(input.X), float64(input.Y)
	ids := ecs.GetEntitiesWith1[*components.HoverComponent](s.entityManager)

	var top ecs.EntityID
	for _, id := range ids {
		hover, _ := ecs.GetComponent[*components.HoverComponent](s.entityManager, id)
		if hover.Contains(px, py) {
			top = id
		}
	}
	s.hovered = top

	k := math.Min(1, deltaTime*hoverLiftRate)
	var clicked func()
	for _, id := range ids {
		hover, _ := ecs.GetComponent[*components.HoverComponent](s.entityManager, id)
		hover.Hovered = id == top
		target := 0.0
		if hover.Hovered {
			hover.HoverTime += deltaTime
			target = 1
			if input.JustPressed && hover.OnClick != nil {
				clicked = hover.OnClick
			}
		} else {
			hover.HoverTime = 0
		}
		hover.Lift += (target - hover.Lift) * k
	}

	// 回调可能导致页面切换，放在遍历之后执行
	if clicked != nil {
		clicked()
	}
}

// Hovered 返回当前悬停的实体，没有时返回 0
func (s *HoverSystem) Hovered() ecs.EntityID {
	return s.hovered
}
