package smashout

import "testing"

// At returns the slot at index i, active or not.
func (p *Pool[T]) At(i int) *T {
	return &p.slots[i]
}

func TestPoolSpawnUsesFirstFreeSlot(t *testing.T) {
	p := NewPool[Ball](3)

	for i := range 3 {
		if _, ok := p.Spawn(Ball{Radius: float64(i), Active: true}); !ok {
			t.Fatalf("Spawn #%d failed on a pool with free slots", i)
		}
	}
	if p.ActiveCount() != 3 {
		t.Fatalf("ActiveCount() = %d, expected 3", p.ActiveCount())
	}

	// Free the middle slot; the next spawn must reuse it.
	p.At(1).Active = false
	slot, ok := p.Spawn(Ball{Radius: 42, Active: true})
	if !ok {
		t.Fatal("Spawn should reuse the freed slot")
	}
	if slot != p.At(1) {
		t.Error("Spawn should return the lowest free slot")
	}
}

func TestPoolExhaustionDropsSpawn(t *testing.T) {
	p := NewPool[PowerUp](2)
	p.Spawn(PowerUp{Active: true})
	p.Spawn(PowerUp{Active: true})

	slot, ok := p.Spawn(PowerUp{Type: PowerUpExtraLife, Active: true})
	if ok || slot != nil {
		t.Error("Spawn on a full pool should return nil, false")
	}
	if p.ActiveCount() != 2 {
		t.Errorf("ActiveCount() = %d, expected 2", p.ActiveCount())
	}
}

func TestPoolEachAndClear(t *testing.T) {
	p := NewPool[Ball](4)
	p.Spawn(Ball{Radius: 1, Active: true})
	p.Spawn(Ball{Radius: 2, Active: true})
	p.Spawn(Ball{Radius: 3, Active: true})
	p.At(1).Active = false

	var seen []int
	p.Each(func(i int, b *Ball) { seen = append(seen, i) })
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 2 {
		t.Errorf("Each visited %v, expected [0 2]", seen)
	}

	first, ok := p.First()
	if !ok || first.Radius != 1 {
		t.Errorf("First() = %v, %v; expected radius 1", first, ok)
	}

	p.Clear()
	if p.ActiveCount() != 0 {
		t.Errorf("ActiveCount() after Clear = %d, expected 0", p.ActiveCount())
	}
	if _, ok := p.First(); ok {
		t.Error("First() on an empty pool should report false")
	}
	if p.Cap() != 4 {
		t.Errorf("Cap() = %d, expected 4", p.Cap())
	}
}

func TestRegistryCapacities(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name string
		cap  int
		want int
	}{
		{"balls", reg.Balls.Cap(), MaxBalls},
		{"powerups", reg.PowerUps.Cap(), MaxPowerUps},
		{"particles", reg.Particles.Cap(), MaxParticles},
		{"texts", reg.Texts.Cap(), MaxFloatingTexts},
		{"bricks", len(reg.Bricks), GridCols * GridRows},
	}
	for _, tc := range tests {
		if tc.cap != tc.want {
			t.Errorf("%s capacity = %d, expected %d", tc.name, tc.cap, tc.want)
		}
	}
}
