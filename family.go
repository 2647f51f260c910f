package ecs

import (
	"fmt"
	"reflect"
)

// family identifies a component type with a small, stable integer, assigned
// the first time that type participates in any registry operation. Per
// spec §4.3 this is process-wide state shared by every Registry in the
// process; it is initialized lazily and has no teardown.
var (
	familyOf     = make(map[reflect.Type]uint32, 64)
	nextFamilyID uint32
)

// ResetFamilyRegistry clears the process-wide type-family mapping. It
// exists for test isolation (mirroring edwinsyarief-lazyecs's
// ResetGlobalRegistry) — production code never calls it, since resetting
// while any Registry still holds storages keyed by the old family ids would
// desynchronize that registry's storage table from its own type usage.
func ResetFamilyRegistry() {
	familyOf = make(map[reflect.Type]uint32, 64)
	nextFamilyID = 0
}

// familyID returns the family id for T, assigning one on first use.
// Overflow of the counter is a fatal program error per spec §4.3: there is
// no way to recover a caller's expectation that every component type gets a
// distinct small integer once the space is exhausted.
func familyID[T any]() uint32 {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if id, ok := familyOf[t]; ok {
		return id
	}
	if nextFamilyID == ^uint32(0) {
		panic(fmt.Sprintf("ecs: family id space exhausted registering %s", t))
	}
	id := nextFamilyID
	familyOf[t] = id
	nextFamilyID++
	return id
}
