package entities

import (
	"fmt"

	"github.com/decker502/brutalist/pkg/components"
	"github.com/decker502/brutalist/pkg/ecs"
	"github.com/decker502/brutalist/pkg/scroll"
)

// NewLetterEntity 为揭示单元创建字母实体
// 位移插值器直接停在 unit.TargetOffset，挂载时不播放动画
//
// 参数:
//   - em: 实体管理器
//   - wordIndex: 单词在引擎中的索引
//   - word: 所属单词
//   - unit: 当前揭示状态中的单元
//   - x, y: 单词第一个字母的屏幕坐标
//   - transition: 位移插值时长（秒）
//
// 返回:
//   - ecs.EntityID: 创建的实体ID
//   - error: 参数非法时返回错误
func NewLetterEntity(em *ecs.EntityManager, wordIndex int, word scroll.Word, unit scroll.UnitState, x, y, transition float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if unit.Index < 0 || unit.Index >= word.Len() {
		return 0, fmt.Errorf("unit index %d out of range for word %q", unit.Index, word.Text())
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.LetterComponent{
		WordIndex: wordIndex,
		Index:     unit.Index,
		Rune:      unit.Rune,
		FontSize:  word.FontSize(),
		Visible:   unit.Visible,
	})
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, components.NewOffsetTween(unit.TargetOffset, transition))
	em.AddComponent(entityID, &components.VisualComponent{
		Opacity:    unit.Opacity,
		Blur:       unit.Blur,
		StackDepth: unit.StackDepth,
	})
	return entityID, nil
}
