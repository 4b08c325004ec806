// Package store provides the per-target accumulator of discovered resources and usages.
package store

import (
	"sync"

	"github.com/lerenn/sur/pkg/resource"
)

//go:generate mockgen -source=store.go -destination=mocks/store.gen.go -package=mocks

// Snapshot is a consistent copy of the store content.
type Snapshot struct {
	Resources []resource.Resource
	Usages    []resource.Usage
}

// Store accumulates the resources and usages of the target being explored.
// Every method is safe for concurrent use.
type Store interface {
	// AddResources appends resources in the given order.
	AddResources(resources ...resource.Resource)
	// AddUsages appends usages in the given order.
	AddUsages(usages ...resource.Usage)
	// Snapshot returns a copy of everything appended since the last reset.
	Snapshot() Snapshot
	// Reset clears resources and usages.
	Reset()
}

type realStore struct {
	mu        sync.Mutex
	resources []resource.Resource
	usages    []resource.Usage
}

// NewStore creates a new empty Store.
func NewStore() Store {
	return &realStore{}
}

// AddResources appends resources in the given order.
func (s *realStore) AddResources(resources ...resource.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources = append(s.resources, resources...)
}

// AddUsages appends usages in the given order.
func (s *realStore) AddUsages(usages ...resource.Usage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usages = append(s.usages, usages...)
}

// Snapshot returns a copy of everything appended since the last reset.
func (s *realStore) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Resources: append([]resource.Resource(nil), s.resources...),
		Usages:    append([]resource.Usage(nil), s.usages...),
	}
}

// Reset clears resources and usages.
func (s *realStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources = nil
	s.usages = nil
}
