package room

// Table is the authoritative map of live rooms. It is owned by the hub's
// dispatch loop and is never touched from any other goroutine.
type Table struct {
	rooms map[string]*Room
}

func NewTable() *Table {
	return &Table{rooms: make(map[string]*Room)}
}

// Ensure returns the room for id, creating it on first use.
func (t *Table) Ensure(id string) *Room {
	rm, ok := t.rooms[id]
	if !ok {
		rm = newRoom(id)
		t.rooms[id] = rm
	}
	return rm
}

func (t *Table) Get(id string) (*Room, bool) {
	rm, ok := t.rooms[id]
	return rm, ok
}

func (t *Table) Delete(id string) {
	delete(t.rooms, id)
}

func (t *Table) Len() int {
	return len(t.rooms)
}

// Each calls fn for every live room. Iteration order is unspecified.
func (t *Table) Each(fn func(*Room)) {
	for _, rm := range t.rooms {
		fn(rm)
	}
}
