package ringbuffer

import "testing"

func TestReverseTraversalOrder(t *testing.T) {
	b := New[int](4)
	for i := 1; i <= 6; i++ {
		b.PushBack(i * 10) // ends with 30,40,50,60
	}
	want := []int{60, 50, 40, 30}

	i := 0
	for it := b.RBegin(); it != b.REnd(); it = it.Next() {
		if got := *it.Item(); got != want[i] {
			t.Errorf("reverse position %d: expected %d, got %d", i, want[i], got)
		}
		i++
	}
	if i != b.Len() {
		t.Fatalf("reverse traversal visited %d of %d", i, b.Len())
	}

	i = 0
	for it := b.ConstRBegin(); it != b.ConstREnd(); it = it.Next() {
		if it.Item() != want[i] {
			t.Errorf("const reverse position %d: expected %d, got %d", i, want[i], it.Item())
		}
		i++
	}
	if i != b.Len() {
		t.Fatalf("const reverse traversal visited %d of %d", i, b.Len())
	}
}

func TestReverseDereferencesBaseMinusOne(t *testing.T) {
	b := New[int](3)
	b.PushBack(1)
	b.PushBack(2)
	b.PushBack(3)

	r := b.RBegin()
	if r.Base() != b.End() {
		t.Error("RBegin base is not End")
	}
	if got := *r.Item(); got != *b.Back() {
		t.Errorf("RBegin item %d != back %d", got, *b.Back())
	}

	r = r.Next()
	if r.Base() != b.End().Prev() {
		t.Error("advancing reverse cursor did not step base backward")
	}
	if got := *r.Item(); got != 2 {
		t.Errorf("second reverse element=%d", got)
	}

	if r.Prev() != b.RBegin() {
		t.Error("Prev did not invert Next")
	}
}

func TestReverseMutation(t *testing.T) {
	b := New[int](3)
	b.PushBack(1)
	b.PushBack(2)
	b.PushBack(3)

	// A reversed mutable iterator dereferences to *T.
	for it := b.RBegin(); it != b.REnd(); it = it.Next() {
		*it.Item() += 100
	}
	for i, want := range []int{101, 102, 103} {
		if got := *b.Get(i); got != want {
			t.Errorf("index %d: expected %d, got %d", i, want, got)
		}
	}
}

func TestReverseOfNarrowedIterator(t *testing.T) {
	b := New[int](3)
	b.PushBack(7)
	b.PushBack(8)

	// The adaptor works for any bidirectional cursor, including one
	// narrowed after construction.
	r := Reversed[int](b.End().Const())
	if got := r.Item(); got != 8 {
		t.Errorf("item=%d", got)
	}
	if r != b.ConstRBegin() {
		t.Error("reversed narrowed End differs from ConstRBegin")
	}
}
