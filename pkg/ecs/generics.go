package ecs

import "reflect"

// 泛型组件访问
// 组件以其静态类型 T 为键，通常使用指针类型（如 *components.SlideComponent）

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddComponent 为实体添加组件（同类型组件会被替换）
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.add(id, typeOf[T](), component)
}

// GetComponent 获取实体的 T 类型组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	comp, found := em.get(id, typeOf[T]())
	if !found {
		var zero T
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// RemoveComponent 移除实体的 T 类型组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.remove(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有 T1 组件的实体（顺序不保证）
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.query(typeOf[T1]())
}
