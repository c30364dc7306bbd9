package domain

import (
	"math"
	"testing"

	"nightshift-server/internal/testutil"
)

func TestDifficulty(t *testing.T) {
	tests := []struct {
		ai, hour int
		want     float64
	}{
		{0, 0, 0},
		{2, 0, 0.1},
		{3, 5, 0.4},
		{20, 6, 1.3}, // не ограничено сверху
	}
	for _, tt := range tests {
		if got := Difficulty(tt.ai, tt.hour); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Difficulty(%d, %d) = %v, want %v", tt.ai, tt.hour, got, tt.want)
		}
	}
}

func TestAdvance(t *testing.T) {
	t.Run("timer not expired does not roll", func(t *testing.T) {
		rng := testutil.Constant(0)
		a := NewAnimatronic("Bonnie", 20, 5.0)

		moved := a.Advance(1.0, 0, rng)

		if moved || a.Location != LocationStage {
			t.Fatalf("moved early: %v at %v", moved, a.Location)
		}
		if a.MoveTimer != 4.0 {
			t.Errorf("timer = %v, want 4", a.MoveTimer)
		}
		if rng.Calls != 0 {
			t.Errorf("rng consulted %d times before expiry", rng.Calls)
		}
	})

	t.Run("successful roll moves and rearms long timer", func(t *testing.T) {
		// Float64: 0.05 < 0.1 -> ход; 0.5 -> таймер 3 + 0.5*5 = 5.5
		rng := testutil.Sequence(0.05, 0.5)
		a := NewAnimatronic("Freddy", 2, 1.0)

		moved := a.Advance(1.0, 0, rng)

		if !moved || a.Location != LocationDining {
			t.Fatalf("expected move to Dining, got %v at %v", moved, a.Location)
		}
		if math.Abs(a.MoveTimer-5.5) > 1e-12 {
			t.Errorf("timer = %v, want 5.5", a.MoveTimer)
		}
	})

	t.Run("failed roll rearms short timer", func(t *testing.T) {
		// 0.2 >= 0.1 -> нет хода; 0.5 -> таймер 2 + 0.5*3 = 3.5
		rng := testutil.Sequence(0.2, 0.5)
		a := NewAnimatronic("Freddy", 2, 0.5)

		moved := a.Advance(1.0, 0, rng)

		if moved || a.Location != LocationStage {
			t.Fatalf("unexpected move to %v", a.Location)
		}
		if math.Abs(a.MoveTimer-3.5) > 1e-12 {
			t.Errorf("timer = %v, want 3.5", a.MoveTimer)
		}
	})

	t.Run("zero AI never moves", func(t *testing.T) {
		rng := testutil.Constant(0)
		a := NewAnimatronic("Golden", 0, 0)
		for i := 0; i < 100; i++ {
			a.Advance(10, 0, rng)
		}
		if a.Location != LocationStage {
			t.Errorf("AI 0 moved to %v", a.Location)
		}
	})

	t.Run("inactive is frozen", func(t *testing.T) {
		a := NewAnimatronic("Chica", 20, 0)
		a.Active = false
		if a.Advance(10, 5, testutil.Constant(0)) || a.MoveTimer != 0 {
			t.Error("inactive animatronic advanced")
		}
	})
}

func TestMove_FollowsGraph(t *testing.T) {
	a := NewAnimatronic("Bonnie", 3, 0)
	a.Location = LocationHallway

	a.Move(&testutil.ConstRandom{Index: 1})
	if a.Location != LocationRightDoor {
		t.Fatalf("Hallway + index 1 = %v, want RIGHT_DOOR", a.Location)
	}

	// Дверь поглощающая
	a.Move(&testutil.ConstRandom{Index: 0})
	if a.Location != LocationRightDoor {
		t.Errorf("left the door: %v", a.Location)
	}
}

func TestAnimatronic_Reset(t *testing.T) {
	a := NewAnimatronic("Freddy", 2, 5.0)
	a.Location = LocationLeftDoor
	a.MoveTimer = -1
	a.Active = false

	a.Reset()

	if a.Location != LocationStage || a.MoveTimer != 5.0 || !a.Active {
		t.Errorf("reset state = %+v", a)
	}
}

func TestDefaultRoster(t *testing.T) {
	roster := DefaultRoster()
	if len(roster) != 3 {
		t.Fatalf("roster size = %d", len(roster))
	}
	want := []struct {
		name  string
		ai    int
		timer float64
	}{
		{"Freddy", 2, 5.0},
		{"Bonnie", 3, 4.0},
		{"Chica", 3, 4.5},
	}
	for i, w := range want {
		a := roster[i]
		if a.Name != w.name || a.AILevel != w.ai || a.MoveTimer != w.timer || a.Location != LocationStage {
			t.Errorf("roster[%d] = %+v", i, a)
		}
	}

	names := NamesAt(roster, LocationStage)
	if len(names) != 3 {
		t.Errorf("NamesAt(Stage) = %v", names)
	}
	if got := NamesAt(roster, LocationHallway); got == nil || len(got) != 0 {
		t.Errorf("NamesAt(Hallway) = %#v, want empty non-nil", got)
	}
}

func TestAnimatronic_HallwayBranches(t *testing.T) {
	// Каждый ход: бросок на ход + бросок на таймер; ветку выбирает Intn
	rng := testutil.Sequence(0, 0).WithInts(0, 1)

	left := NewAnimatronic("Bonnie", 20, 0)
	left.Location = LocationHallway
	right := NewAnimatronic("Chica", 20, 0)
	right.Location = LocationHallway

	left.Advance(1, 0, rng)
	right.Advance(1, 0, rng)

	if left.Location != LocationLeftDoor || right.Location != LocationRightDoor {
		t.Errorf("got %v and %v, want LEFT_DOOR and RIGHT_DOOR", left.Location, right.Location)
	}
	if rng.FloatCalls() != 4 {
		t.Errorf("float draws = %d, want 4", rng.FloatCalls())
	}
}
