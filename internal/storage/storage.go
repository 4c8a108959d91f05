package storage

import (
	"errors"
	"slices"
	"strings"
	"sync"
)

var (
	// ErrEmptySet indicates that no symbols were provided.
	ErrEmptySet = errors.New("at least one element must be entered")
)

// Storage holds the symbol set the calculator operates on during a session.
type Storage interface {
	GetSymbols() ([]string, error)
	SetSymbols(symbols []string) error
}

// MemoryStorage keeps the symbol set in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu      sync.RWMutex
	symbols []string
}

// NewMemoryStorage initialises an empty storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// GetSymbols returns a copy of the current symbol set in input order.
func (s *MemoryStorage) GetSymbols() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.symbols) == 0 {
		return nil, ErrEmptySet
	}
	return slices.Clone(s.symbols), nil
}

// SetSymbols validates and replaces the current symbol set.
func (s *MemoryStorage) SetSymbols(symbols []string) error {
	if len(symbols) == 0 {
		return ErrEmptySet
	}

	s.mu.Lock()
	s.symbols = slices.Clone(symbols)
	s.mu.Unlock()

	return nil
}

// ParseSymbols splits a line of user input on whitespace.
func ParseSymbols(line string) ([]string, error) {
	symbols := strings.Fields(line)
	if len(symbols) == 0 {
		return nil, ErrEmptySet
	}
	return symbols, nil
}
