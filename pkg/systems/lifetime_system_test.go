package systems

import (
	"testing"

	"github.com/decker502/brutalist/pkg/components"
	"github.com/decker502/brutalist/pkg/ecs"
)

func TestLifetimeUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 10.0})

	// 模拟5秒更新
	if expired := system.Update(5.0); expired != 0 {
		t.Errorf("expected no expiration, got %d", expired)
	}

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if lifetime.CurrentLifetime != 5.0 {
		t.Errorf("Expected CurrentLifetime=5.0, got %f", lifetime.CurrentLifetime)
	}
	if lifetime.IsExpired {
		t.Error("Entity should not be expired yet")
	}
	if lifetime.Progress() != 0.5 {
		t.Errorf("Progress: got %v, want 0.5", lifetime.Progress())
	}
}

func TestLifetimeExpiration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 10.0})

	// 模拟超过最大生命周期
	if expired := system.Update(12.0); expired != 1 {
		t.Errorf("expected 1 expiration, got %d", expired)
	}

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !lifetime.IsExpired {
		t.Error("Entity should be expired")
	}

	// 再次更新不会重复计数
	if expired := system.Update(1.0); expired != 0 {
		t.Errorf("expired entity counted twice: %d", expired)
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be destroyed")
	}
}
