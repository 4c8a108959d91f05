package storage

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
)

func TestNewMemoryStorageIsEmpty(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	if _, err := store.GetSymbols(); !errors.Is(err, ErrEmptySet) {
		t.Fatalf("expected ErrEmptySet, got %v", err)
	}
}

func TestSetSymbolsUpdatesState(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	if err := store.SetSymbols([]string{"b", "a", "b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetSymbols()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// input order and duplicates are preserved
	want := []string{"b", "a", "b"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// ensure mutation safety
	got[0] = "zzz"
	again, err := store.GetSymbols()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(again, want) {
		t.Fatalf("expected defensive copy, got %v", again)
	}
}

func TestSetSymbolsRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	testCases := [][]string{nil, {}}

	for idx, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("case_%d", idx), func(t *testing.T) {
			store := NewMemoryStorage()
			if err := store.SetSymbols(tc); !errors.Is(err, ErrEmptySet) {
				t.Fatalf("expected ErrEmptySet for %v, got %v", tc, err)
			}
		})
	}
}

func TestParseSymbols(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		got, err := ParseSymbols("  a b\tc  a ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := []string{"a", "b", "c", "a"}; !slices.Equal(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("blank", func(t *testing.T) {
		if _, err := ParseSymbols("   "); !errors.Is(err, ErrEmptySet) {
			t.Fatalf("expected ErrEmptySet, got %v", err)
		}
	})
}

func TestMemoryStorageConcurrentAccess(t *testing.T) {
	store := NewMemoryStorage()
	if err := store.SetSymbols([]string{"seed"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(2)

		go func(offset int) {
			defer wg.Done()
			symbols := []string{fmt.Sprint(offset), "x"}
			if err := store.SetSymbols(symbols); err != nil {
				t.Errorf("SetSymbols failed: %v", err)
			}
		}(i)

		go func() {
			defer wg.Done()
			if _, err := store.GetSymbols(); err != nil {
				t.Errorf("GetSymbols failed: %v", err)
			}
		}()
	}

	wg.Wait()

	if _, err := store.GetSymbols(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
