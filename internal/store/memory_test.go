package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Aryan1092raj/HoneyPot/internal/session"
)

func TestMemoryGetPut(t *testing.T) {
	m := NewMemory(0)
	defer m.Close()
	ctx := context.Background()

	if _, err := m.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	s := session.New("abc")
	if err := m.Put(ctx, s); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := m.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "abc" {
		t.Errorf("got session %q", got.ID)
	}
}

func TestMemoryList(t *testing.T) {
	m := NewMemory(0)
	defer m.Close()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := m.Put(ctx, session.New(id)); err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}
	list, err := m.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("list length = %d, want 3", len(list))
	}
}

func TestMemoryHandsOutCopies(t *testing.T) {
	m := NewMemory(0)
	defer m.Close()
	ctx := context.Background()

	s := session.New("abc")
	s.Intelligence.UPIIDs = append(s.Intelligence.UPIIDs, "fraud@paytm")
	if err := m.Put(ctx, s); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Mutating the caller's session after Put must not leak into the store.
	s.Intelligence.UPIIDs = append(s.Intelligence.UPIIDs, "second@ybl")
	s.AppendTurn("in", "out")
	s.AddRedFlags([]string{"Urgency / pressure tactics"})

	got, err := m.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Intelligence.UPIIDs) != 1 {
		t.Errorf("stored UPI ids = %v, want the snapshot from Put", got.Intelligence.UPIIDs)
	}
	if len(got.History) != 0 || len(got.RedFlags) != 0 {
		t.Error("stored session should not see mutations made after Put")
	}

	// And mutating a Get result must not leak back either.
	got.Intelligence.PhoneNumbers = append(got.Intelligence.PhoneNumbers, "9876543210")
	again, err := m.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(again.Intelligence.PhoneNumbers) != 0 {
		t.Errorf("stored phone numbers = %v, want none", again.Intelligence.PhoneNumbers)
	}

	list, err := m.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	list[0].Intelligence.BankAccounts = append(list[0].Intelligence.BankAccounts, "123456789")
	again, _ = m.Get(ctx, "abc")
	if len(again.Intelligence.BankAccounts) != 0 {
		t.Errorf("stored bank accounts = %v, want none", again.Intelligence.BankAccounts)
	}
}

func TestMemoryEvictIdle(t *testing.T) {
	m := NewMemory(time.Minute)
	defer m.Close()
	ctx := context.Background()

	stale := session.New("stale")
	stale.LastActivityAt = time.Now().UTC().Add(-2 * time.Minute)
	fresh := session.New("fresh")

	_ = m.Put(ctx, stale)
	_ = m.Put(ctx, fresh)

	m.evictIdle(time.Now().UTC())

	if _, err := m.Get(ctx, "stale"); !errors.Is(err, ErrNotFound) {
		t.Error("stale session should have been evicted")
	}
	if _, err := m.Get(ctx, "fresh"); err != nil {
		t.Errorf("fresh session evicted: %v", err)
	}
}
