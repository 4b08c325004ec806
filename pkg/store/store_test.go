//go:build unit

package store

import (
	"sync"
	"testing"

	"github.com/lerenn/sur/pkg/resource"
	"github.com/stretchr/testify/assert"
)

func TestStore_AddAndSnapshot(t *testing.T) {
	s := NewStore()

	logo := resource.Resource{Name: "logo", Kind: resource.KindImage, Path: "/p/Assets.xcassets/logo.imageset"}
	brand := resource.Resource{Name: "brand", Kind: resource.KindColor, Path: "/p/Assets.xcassets/brand.colorset"}
	s.AddResources(logo)
	s.AddResources(brand)
	s.AddUsages(resource.Literal(resource.KindImage, "logo"))

	snapshot := s.Snapshot()
	assert.Equal(t, []resource.Resource{logo, brand}, snapshot.Resources)
	assert.Equal(t, []resource.Usage{resource.Literal(resource.KindImage, "logo")}, snapshot.Usages)

	// Snapshots are copies
	snapshot.Resources[0].Name = "changed"
	assert.Equal(t, "logo", s.Snapshot().Resources[0].Name)
}

func TestStore_Reset(t *testing.T) {
	s := NewStore()
	s.AddResources(resource.Resource{Name: "logo"})
	s.AddUsages(resource.Literal(resource.KindImage, "logo"))

	s.Reset()

	snapshot := s.Snapshot()
	assert.Empty(t, snapshot.Resources)
	assert.Empty(t, snapshot.Usages)
}

func TestStore_ConcurrentProducers(t *testing.T) {
	s := NewStore()

	const producers = 50
	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddUsages(
				resource.Literal(resource.KindImage, "a"),
				resource.ModernIdentifier(resource.KindColor, "b"),
			)
			s.AddResources(resource.Resource{Name: "r"})
		}()
	}
	wg.Wait()

	snapshot := s.Snapshot()
	assert.Len(t, snapshot.Usages, producers*2)
	assert.Len(t, snapshot.Resources, producers)
}
