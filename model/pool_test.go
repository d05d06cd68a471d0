package model

import "testing"

func TestPoolMarkThenCompact(t *testing.T) {
	w := NewWorld(nil, Player{})
	a := w.AddEnemy(NewEnemy(1, 1))
	b := w.AddEnemy(NewEnemy(2, 2))
	c := w.AddEnemy(NewEnemy(3, 3))

	visited := 0
	w.Enemies.Each(func(id Handle, e *Enemy) bool {
		visited++
		if id == b {
			if !w.Enemies.Remove(id) {
				t.Errorf("Remove(%d) = false", id)
			}
		}
		return true
	})
	if visited != 3 {
		t.Fatalf("visited %d enemies, want 3", visited)
	}

	if w.Enemies.Len() != 2 {
		t.Errorf("Len after mark = %d, want 2", w.Enemies.Len())
	}
	if _, ok := w.Enemies.Get(b); ok {
		t.Errorf("marked enemy must not be returned by Get")
	}
	if w.Enemies.Remove(b) {
		t.Errorf("second Remove must report false")
	}

	if n := w.Enemies.Compact(); n != 1 {
		t.Errorf("Compact dropped %d, want 1", n)
	}

	for _, id := range []Handle{a, c} {
		e, ok := w.Enemies.Get(id)
		if !ok {
			t.Fatalf("Get(%d) missing after compact", id)
		}
		if e.ID != id {
			t.Errorf("Get(%d) returned enemy %d", id, e.ID)
		}
	}

	items := w.Enemies.Items()
	if len(items) != 2 || items[0].ID != a || items[1].ID != c {
		t.Errorf("Items = %+v, want order [%d %d]", items, a, c)
	}
}

func TestPoolHandlesAreUnique(t *testing.T) {
	w := NewWorld(nil, Player{})
	seen := map[Handle]bool{}
	for i := 0; i < 10; i++ {
		id := w.AddProjectile(NewProjectile(0, 0, 0, 1, OwnerPlayer))
		if seen[id] {
			t.Fatalf("handle %d reused", id)
		}
		seen[id] = true
		w.Projectiles.Remove(id)
		w.Compact()
	}
	if w.Projectiles.Len() != 0 {
		t.Errorf("Len = %d, want 0", w.Projectiles.Len())
	}
}

func TestPoolEachStops(t *testing.T) {
	p := NewPool[int]()
	for i := 0; i < 5; i++ {
		p.Insert(Handle(i+1), i)
	}
	n := 0
	p.Each(func(_ Handle, v *int) bool {
		n++
		return *v < 2
	})
	if n != 3 {
		t.Errorf("Each visited %d, want 3", n)
	}
}
