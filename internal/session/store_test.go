package session_test

import (
	"fmt"
	"sync"
	"testing"

	"fitcoach/internal/profile"
	"fitcoach/internal/session"
)

func TestStore_RoundTrip(t *testing.T) {
	store := session.NewStore()

	sess := session.Session{
		Profile: profile.UserProfile{Weight: 70, Height: 175, Age: 30},
		BMI:     22.9,
		Level:   4,
	}
	store.Create("abc", sess)

	got, ok := store.Get("abc")
	if !ok {
		t.Fatal("expected session to exist")
	}
	if got.BMI != 22.9 || got.Level != 4 || got.Profile.Weight != 70 {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	store.Delete("abc")
	if _, ok := store.Get("abc"); ok {
		t.Fatal("expected session to be gone after delete")
	}
}

// Create is an upsert: a second create fully replaces the prior data,
// no merging.
func TestStore_CreateReplaces(t *testing.T) {
	store := session.NewStore()

	first := session.Session{BMI: 22.9, Level: 4, Extra: map[string]string{"note": "first"}}
	second := session.Session{BMI: 31.2, Level: 1}

	store.Create("abc", first)
	store.Create("abc", second)

	got, ok := store.Get("abc")
	if !ok {
		t.Fatal("expected session to exist")
	}
	if got.BMI != 31.2 || got.Level != 1 {
		t.Fatalf("second create did not replace: %+v", got)
	}
	if got.Extra != nil {
		t.Fatalf("fields from the first create leaked through: %+v", got.Extra)
	}
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	store := session.NewStore()
	store.Delete("never-existed") // must not panic or error
	store.Create("abc", session.Session{})
	store.Delete("abc")
	store.Delete("abc")
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d", store.Len())
	}
}

// Different ids never interfere, even under concurrent access.
func TestStore_ConcurrentDistinctIDs(t *testing.T) {
	store := session.NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("session-%d", i)
			store.Create(id, session.Session{Level: i % 7})
			if _, ok := store.Get(id); !ok {
				t.Errorf("session %s missing", id)
			}
		}(i)
	}
	wg.Wait()

	if store.Len() != 50 {
		t.Fatalf("expected 50 sessions, got %d", store.Len())
	}
}
