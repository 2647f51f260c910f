package ecs

// Each2 iterates every entity that carries both A and B, visiting them in
// the dense order of A's storage. Per spec §4.6 the driving storage is
// always the first-listed type parameter — there is no automatic
// smallest-storage-first optimization, unlike rdtc8822-debug-L1JGO-Whale's
// own query.Each2, which picks whichever of the two stores is currently
// smaller. A missing storage for either type means zero visits.
func Each2[A, B any](r *Registry, fn func(Entity, *A, *B) bool) {
	sa, ok := getStorage[A](r)
	if !ok {
		return
	}
	sb, ok := getStorage[B](r)
	if !ok {
		return
	}
	sa.forEach(func(index uint32, a *A) bool {
		b := sb.find(index)
		if b == nil {
			return true
		}
		e, ok := r.entityAt(index)
		if !ok {
			return true
		}
		return fn(e, a, b)
	})
}

// Each3 iterates every entity carrying A, B and C, driven by A's storage.
func Each3[A, B, C any](r *Registry, fn func(Entity, *A, *B, *C) bool) {
	sa, ok := getStorage[A](r)
	if !ok {
		return
	}
	sb, ok := getStorage[B](r)
	if !ok {
		return
	}
	sc, ok := getStorage[C](r)
	if !ok {
		return
	}
	sa.forEach(func(index uint32, a *A) bool {
		b := sb.find(index)
		if b == nil {
			return true
		}
		c := sc.find(index)
		if c == nil {
			return true
		}
		e, ok := r.entityAt(index)
		if !ok {
			return true
		}
		return fn(e, a, b, c)
	})
}

// Each4 iterates every entity carrying A, B, C and D, driven by A's storage.
func Each4[A, B, C, D any](r *Registry, fn func(Entity, *A, *B, *C, *D) bool) {
	sa, ok := getStorage[A](r)
	if !ok {
		return
	}
	sb, ok := getStorage[B](r)
	if !ok {
		return
	}
	sc, ok := getStorage[C](r)
	if !ok {
		return
	}
	sd, ok := getStorage[D](r)
	if !ok {
		return
	}
	sa.forEach(func(index uint32, a *A) bool {
		b := sb.find(index)
		if b == nil {
			return true
		}
		c := sc.find(index)
		if c == nil {
			return true
		}
		d := sd.find(index)
		if d == nil {
			return true
		}
		e, ok := r.entityAt(index)
		if !ok {
			return true
		}
		return fn(e, a, b, c, d)
	})
}

// FindComponents2 returns pointers to e's A and B, or false if e lacks
// either. Supplements the single-type accessors with the tuple-fetch
// convenience ecs.hpp exposes as registry::find_components<A, B>: never an
// error, a routine absence result like FindComponent.
func FindComponents2[A, B any](r *Registry, e Entity) (*A, *B, bool) {
	a, ok := FindComponent[A](r, e)
	if !ok {
		return nil, nil, false
	}
	b, ok := FindComponent[B](r, e)
	if !ok {
		return nil, nil, false
	}
	return a, b, true
}

// FindComponents3 returns pointers to e's A, B and C, or false if any is
// absent.
func FindComponents3[A, B, C any](r *Registry, e Entity) (*A, *B, *C, bool) {
	a, ok := FindComponent[A](r, e)
	if !ok {
		return nil, nil, nil, false
	}
	b, ok := FindComponent[B](r, e)
	if !ok {
		return nil, nil, nil, false
	}
	c, ok := FindComponent[C](r, e)
	if !ok {
		return nil, nil, nil, false
	}
	return a, b, c, true
}

// FindComponents4 returns pointers to e's A, B, C and D, or false if any is
// absent.
func FindComponents4[A, B, C, D any](r *Registry, e Entity) (*A, *B, *C, *D, bool) {
	a, ok := FindComponent[A](r, e)
	if !ok {
		return nil, nil, nil, nil, false
	}
	b, ok := FindComponent[B](r, e)
	if !ok {
		return nil, nil, nil, nil, false
	}
	c, ok := FindComponent[C](r, e)
	if !ok {
		return nil, nil, nil, nil, false
	}
	d, ok := FindComponent[D](r, e)
	if !ok {
		return nil, nil, nil, nil, false
	}
	return a, b, c, d, true
}

// GetComponents2 returns pointers to e's A and B, or ErrComponentNotFound if
// either is missing. The error-returning counterpart to FindComponents2,
// mirroring ecs.hpp's registry::get_components<A, B> versus
// find_components<A, B>.
func GetComponents2[A, B any](r *Registry, e Entity) (*A, *B, error) {
	a, b, ok := FindComponents2[A, B](r, e)
	if !ok {
		return nil, nil, ErrComponentNotFound
	}
	return a, b, nil
}

// GetComponents3 returns pointers to e's A, B and C, or ErrComponentNotFound
// if any is missing.
func GetComponents3[A, B, C any](r *Registry, e Entity) (*A, *B, *C, error) {
	a, b, c, ok := FindComponents3[A, B, C](r, e)
	if !ok {
		return nil, nil, nil, ErrComponentNotFound
	}
	return a, b, c, nil
}

// GetComponents4 returns pointers to e's A, B, C and D, or
// ErrComponentNotFound if any is missing.
func GetComponents4[A, B, C, D any](r *Registry, e Entity) (*A, *B, *C, *D, error) {
	a, b, c, d, ok := FindComponents4[A, B, C, D](r, e)
	if !ok {
		return nil, nil, nil, nil, ErrComponentNotFound
	}
	return a, b, c, d, nil
}
