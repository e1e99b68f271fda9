package fifomap

import (
	"slices"
	"testing"
)

func TestSetGet(t *testing.T) {
	m := New[string, int]()

	if _, ok := m.Get("a"); ok {
		t.Fatal("empty map returned a value")
	}

	m.Set("a", 1)
	m.Set("b", 2)
	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Len())
	}
	if v, ok := m.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = %d, %v", v, ok)
	}
	if v, ok := m.Get("b"); !ok || v != 2 {
		t.Fatalf("Get(b) = %d, %v", v, ok)
	}
}

func TestUpdateKeepsPosition(t *testing.T) {
	m := New[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10)

	if v, _ := m.Get("a"); v != 10 {
		t.Fatalf("Get(a) = %d, want updated 10", v)
	}
	if k, _ := m.Oldest(); k != "a" {
		t.Fatalf("Oldest = %q, want a (update must not reorder)", k)
	}
}

func TestInsertionOrder(t *testing.T) {
	m := New[int, string]()
	for _, k := range []int{3, 1, 4, 1, 5} {
		m.Set(k, "")
	}

	want := []int{3, 1, 4, 5}
	if got := m.Keys(); !slices.Equal(got, want) {
		t.Fatalf("Keys = %v, want %v", got, want)
	}
}

func TestDelete(t *testing.T) {
	m := New[int, int]()
	m.Set(1, 0)
	m.Set(2, 0)
	m.Set(3, 0)

	if !m.Delete(2) {
		t.Fatal("Delete(2) = false")
	}
	if m.Delete(2) {
		t.Fatal("double Delete(2) = true")
	}
	if got := m.Keys(); !slices.Equal(got, []int{1, 3}) {
		t.Fatalf("Keys = %v, want [1 3]", got)
	}

	// Head and tail removal keep the list intact.
	m.Delete(1)
	m.Delete(3)
	if m.Len() != 0 {
		t.Fatalf("Len = %d, want 0", m.Len())
	}
	if _, ok := m.Oldest(); ok {
		t.Fatal("Oldest on empty map = true")
	}
}

func TestPopOldest(t *testing.T) {
	m := New[int, string]()
	m.Set(1, "one")
	m.Set(2, "two")
	m.Set(3, "three")

	k, v, ok := m.PopOldest()
	if !ok || k != 1 || v != "one" {
		t.Fatalf("PopOldest = %d, %q, %v", k, v, ok)
	}
	k, _, _ = m.PopOldest()
	if k != 2 {
		t.Fatalf("second PopOldest = %d, want 2", k)
	}
	k, _, _ = m.PopOldest()
	if k != 3 {
		t.Fatalf("third PopOldest = %d, want 3", k)
	}
	if _, _, ok := m.PopOldest(); ok {
		t.Fatal("PopOldest on empty map = true")
	}
}

func TestRange(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 5; i++ {
		m.Set(i, i * i)
	}

	var keys []int
	m.Range(func(k, v int) bool {
		if v != k*k {
			t.Fatalf("Range saw %d -> %d", k, v)
		}
		keys = append(keys, k)
		return true
	})
	if !slices.Equal(keys, []int{0, 1, 2, 3, 4}) {
		t.Fatalf("Range order = %v", keys)
	}

	// Early stop.
	n := 0
	m.Range(func(int, int) bool {
		n++
		return n < 2
	})
	if n != 2 {
		t.Fatalf("Range visited %d entries after early stop, want 2", n)
	}
}

func TestClear(t *testing.T) {
	m := New[int, int]()
	m.Set(1, 1)
	m.Set(2, 2)
	m.Clear()

	if m.Len() != 0 {
		t.Fatalf("Len = %d after Clear", m.Len())
	}
	if _, _, ok := m.PopOldest(); ok {
		t.Fatal("PopOldest after Clear = true")
	}

	// The map is reusable after Clear.
	m.Set(7, 7)
	if k, _ := m.Oldest(); k != 7 {
		t.Fatalf("Oldest = %d, want 7", k)
	}
}
