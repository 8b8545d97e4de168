package systems

import (
	"log"

	"github.com/decker502/brutalist/pkg/components"
	"github.com/decker502/brutalist/pkg/ecs"
	"github.com/decker502/brutalist/pkg/entities"
	"github.com/decker502/brutalist/pkg/scroll"
)

// RevealSystem 把滚动引擎的揭示状态同步到字母实体
//
// 职责：
//   - 每帧推进引擎（先 Tick 游标，再计算所有单词）
//   - 把每个单元的目标位移交给 OffsetTweenComponent（插值由 TweenSystem 完成）
//   - 更新可见性、不透明度、模糊和 z 序
type RevealSystem struct {
	entityManager *ecs.EntityManager
	engine        *scroll.Engine
	transition    float64

	letters [][]ecs.EntityID // [单词][单元]
	states  []scroll.RevealState
}

// NewRevealSystem 创建揭示系统
//
// 参数:
//   - em: 实体管理器
//   - engine: 滚动引擎
//   - transition: 位移插值时长（秒）
func NewRevealSystem(em *ecs.EntityManager, engine *scroll.Engine, transition float64) *RevealSystem {
	return &RevealSystem{
		entityManager: em,
		engine:        engine,
		transition:    transition,
	}
}

// SpawnLetters 为引擎中的每个单词创建字母实体
// origin 返回单词第一个字母的屏幕坐标
//
// 返回:
//   - int: 创建的实体数量
//   - error: 任一实体创建失败时返回错误
func (s *RevealSystem) SpawnLetters(origin func(wordIndex int) (x, y float64)) (int, error) {
	words := s.engine.Words()
	s.states = s.engine.Snapshot()
	s.letters = make([][]ecs.EntityID, len(words))

	count := 0
	for wi, w := range words {
		x, y := origin(wi)
		ids := make([]ecs.EntityID, 0, w.Len())
		for _, unit := range s.states[wi].Units {
			id, err := entities.NewLetterEntity(s.entityManager, wi, w, unit, x, y, s.transition)
			if err != nil {
				return count, err
			}
			ids = append(ids, id)
			count++
		}
		s.letters[wi] = ids
	}

	log.Printf("[RevealSystem] Spawned %d letters for %d words", count, len(words))
	return count, nil
}

// Update 推进引擎一帧并同步到实体
func (s *RevealSystem) Update(deltaTime float64) {
	s.apply(s.engine.Step(deltaTime))
}

// Sync 不推进游标，仅按当前位置重新同步（设置变化后使用）
func (s *RevealSystem) Sync() {
	s.apply(s.engine.Snapshot())
}

// SetTransition 修改插值时长（减弱动效时设为 0）
// 字母保持在当前位置：静止的保持静止，移动中的从当前位置继续，时长为 0 时冻结
func (s *RevealSystem) SetTransition(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	s.transition = seconds
	for _, id := range ecs.GetEntitiesWith1[*components.OffsetTweenComponent](s.entityManager) {
		tween, _ := ecs.GetComponent[*components.OffsetTweenComponent](s.entityManager, id)
		tween.Tween.SetDuration(seconds)
	}
}

// States 返回最近一次计算的揭示状态
func (s *RevealSystem) States() []scroll.RevealState {
	return s.states
}

// Letters 返回某个单词的字母实体（按单元序号）
func (s *RevealSystem) Letters(wordIndex int) []ecs.EntityID {
	if wordIndex < 0 || wordIndex >= len(s.letters) {
		return nil
	}
	return s.letters[wordIndex]
}

func (s *RevealSystem) apply(states []scroll.RevealState) {
	s.states = states
	for wi, st := range states {
		if wi >= len(s.letters) {
			break
		}
		ids := s.letters[wi]
		for _, u := range st.Units {
			if u.Index >= len(ids) {
				continue
			}
			id := ids[u.Index]
			if letter, ok := ecs.GetComponent[*components.LetterComponent](s.entityManager, id); ok {
				letter.Visible = u.Visible
			}
			if tween, ok := ecs.GetComponent[*components.OffsetTweenComponent](s.entityManager, id); ok {
				tween.Tween.Retarget(u.TargetOffset)
			}
			if visual, ok := ecs.GetComponent[*components.VisualComponent](s.entityManager, id); ok {
				visual.Opacity = u.Opacity
				visual.Blur = u.Blur
				visual.StackDepth = u.StackDepth
			}
		}
	}
}
