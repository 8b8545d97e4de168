package ecs

import "reflect"

// typeOf 返回 T 的反射类型（T 通常是组件指针类型）
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// GetComponent 类型安全地获取组件
//
// 用法：
//
//	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// HasComponent 类型安全地检查组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// RemoveComponent 类型安全地移除组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有组件 T 的实体
func GetEntitiesWith1[T any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T]())
}

// GetEntitiesWith2 查询同时拥有组件 T 和 U 的实体
func GetEntitiesWith2[T, U any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T](), typeOf[U]())
}

// GetEntitiesWith3 查询同时拥有组件 T、U 和 V 的实体
func GetEntitiesWith3[T, U, V any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T](), typeOf[U](), typeOf[V]())
}
