package chase

// EntityID is a stable handle to an entity in an Arena.
// The low 32 bits hold the slot index and the high 32 bits the slot
// generation, so a handle to a removed entity never resolves to its
// slot's next occupant. The zero ID is never issued.
type EntityID uint64

func makeID(index, gen uint32) EntityID {
	return EntityID(uint64(gen)<<32 | uint64(index))
}

func (id EntityID) index() uint32 { return uint32(id) }
func (id EntityID) gen() uint32   { return uint32(id >> 32) }

type slot struct {
	entity Entity
	gen    uint32
	live   bool
}

// Arena owns all live entities. Removed slots are recycled through a free list.
type Arena struct {
	slots []slot
	free  []uint32
	count int
}

// Insert stores e and returns its new ID. Any ID already set on e is replaced.
func (a *Arena) Insert(e Entity) EntityID {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot{})
	}

	s := &a.slots[idx]
	s.gen++
	e.ID = makeID(idx, s.gen)
	s.entity = e
	s.live = true
	a.count++
	return e.ID
}

// Get returns the entity for id, or false if it was removed.
func (a *Arena) Get(id EntityID) (Entity, bool) {
	s := a.lookup(id)
	if s == nil {
		return Entity{}, false
	}
	return s.entity, true
}

// Remove deletes the entity for id. It reports false for stale or unknown IDs.
func (a *Arena) Remove(id EntityID) bool {
	s := a.lookup(id)
	if s == nil {
		return false
	}
	s.live = false
	s.entity = Entity{}
	a.free = append(a.free, id.index())
	a.count--
	return true
}

// Len returns the number of live entities.
func (a *Arena) Len() int {
	return a.count
}

// Count returns the number of live entities of kind k.
func (a *Arena) Count(k Kind) int {
	n := 0
	for i := range a.slots {
		if a.slots[i].live && a.slots[i].entity.Kind == k {
			n++
		}
	}
	return n
}

// Each calls fn for every live entity in slot order.
// fn may modify the entity but must not insert or remove.
func (a *Arena) Each(fn func(e *Entity)) {
	for i := range a.slots {
		if a.slots[i].live {
			fn(&a.slots[i].entity)
		}
	}
}

// Clear removes every entity. Outstanding IDs become stale.
func (a *Arena) Clear() {
	a.free = a.free[:0]
	for i := range a.slots {
		if a.slots[i].live {
			a.slots[i].live = false
			a.slots[i].entity = Entity{}
		}
		a.free = append(a.free, uint32(i))
	}
	a.count = 0
}

// Advance moves every entity by its velocity, ages it by dt and removes
// those that expired. It returns how many were removed.
func (a *Arena) Advance(dt float64) int {
	var expired []EntityID
	a.Each(func(e *Entity) {
		e.Age += dt
		e.Pos = e.Pos.Add(e.Vel.Scale(dt))
		if e.expired() {
			expired = append(expired, e.ID)
		}
	})
	for _, id := range expired {
		a.Remove(id)
	}
	return len(expired)
}

func (a *Arena) lookup(id EntityID) *slot {
	idx := id.index()
	if int(idx) >= len(a.slots) {
		return nil
	}
	s := &a.slots[idx]
	if !s.live || s.gen != id.gen() {
		return nil
	}
	return s
}
