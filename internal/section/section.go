// Package section tracks the active filter tab of an independent dashboard
// section. Each section (category carousel, feed tabs, global-news tabs,
// sidebar menu) gets its own Filter; they share no state.
package section

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFilterKey = errors.New("invalid filter key")
	ErrEmptyKeySet      = errors.New("section has no filter keys")
	ErrDuplicateKey     = errors.New("duplicate filter key")
)

// Filter holds exactly one active key drawn from a fixed key set.
// The zero value is not usable; construct with New.
type Filter[K comparable] struct {
	name   string
	keys   []K
	active int
}

// New returns a filter over keys with initial active.
func New[K comparable](name string, keys []K, initial K) (Filter[K], error) {
	if len(keys) == 0 {
		return Filter[K]{}, fmt.Errorf("%s: %w", name, ErrEmptyKeySet)
	}

	seen := make(map[K]bool, len(keys))
	own := make([]K, len(keys))
	for i, k := range keys {
		if seen[k] {
			return Filter[K]{}, fmt.Errorf("%s: %w: %v", name, ErrDuplicateKey, k)
		}
		seen[k] = true
		own[i] = k
	}

	f := Filter[K]{name: name, keys: own, active: -1}
	f.active = f.indexOf(initial)
	if f.active < 0 {
		return Filter[K]{}, fmt.Errorf("%s: initial key %v: %w", name, initial, ErrInvalidFilterKey)
	}
	return f, nil
}

// SetActive makes k the active key. Unknown keys leave the filter unchanged.
func (f Filter[K]) SetActive(k K) (Filter[K], error) {
	i := f.indexOf(k)
	if i < 0 {
		return f, fmt.Errorf("%s: %w: %v", f.name, ErrInvalidFilterKey, k)
	}
	f.active = i
	return f, nil
}

// Active returns the current key.
func (f Filter[K]) Active() K {
	return f.keys[f.active]
}

// Next advances to the following key, wrapping at the end.
func (f Filter[K]) Next() Filter[K] {
	f.active = (f.active + 1) % len(f.keys)
	return f
}

// Prev steps back to the previous key, wrapping at the start.
func (f Filter[K]) Prev() Filter[K] {
	f.active = (f.active - 1 + len(f.keys)) % len(f.keys)
	return f
}

// Keys returns a copy of the key set in order.
func (f Filter[K]) Keys() []K {
	out := make([]K, len(f.keys))
	copy(out, f.keys)
	return out
}

func (f Filter[K]) Contains(k K) bool { return f.indexOf(k) >= 0 }
func (f Filter[K]) Name() string      { return f.name }

func (f Filter[K]) indexOf(k K) int {
	for i, cur := range f.keys {
		if cur == k {
			return i
		}
	}
	return -1
}
