package rover

import (
	"errors"
	"testing"
)

func TestNewAgent_UniqueIdentity(t *testing.T) {
	a := NewAgent(0, 0, 5, Explorer)
	b := NewAgent(0, 0, 5, Explorer)
	if a.ID == b.ID {
		t.Fatal("two agents share an ID")
	}
	if n := NewAgent(1, 1, -4, None).Energy; n != 0 {
		t.Fatalf("negative energy should floor to 0, got %d", n)
	}
}

func TestRoster_InsertionOrderAndLabels(t *testing.T) {
	r := NewRoster()
	for i := 0; i < 3; i++ {
		idx, err := r.Add(NewAgent(i, 0, 0, None))
		if err != nil {
			t.Fatal(err)
		}
		if idx != i {
			t.Fatalf("handle %d, want %d", idx, i)
		}
	}
	for i, a := range r.Agents() {
		if a.Pos.X != i {
			t.Fatalf("roster order broken at %d", i)
		}
	}
	if r.At(2).Label != "R2" {
		t.Fatalf("label %q, want R2", r.At(2).Label)
	}

	named := NewAgent(0, 0, 0, None)
	named.Label = "scout"
	if _, err := r.Add(named); err != nil {
		t.Fatal(err)
	}
	if named.Label != "scout" {
		t.Fatal("explicit label should be kept")
	}
}

func TestRoster_RejectsDuplicate(t *testing.T) {
	r := NewRoster()
	a := NewAgent(0, 0, 0, None)
	if _, err := r.Add(a); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Add(a); !errors.Is(err, ErrDuplicateAgent) {
		t.Fatalf("err=%v, want ErrDuplicateAgent", err)
	}
	if r.Len() != 1 {
		t.Fatalf("roster len %d after rejected add", r.Len())
	}
	if got, ok := r.Lookup(a.ID); !ok || got != a {
		t.Fatal("lookup by ID failed")
	}
}
