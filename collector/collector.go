package collector

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ElizabethCF01/system-monitor-cli/model"
)

// Collector is the interface for all metric collectors.
type Collector interface {
	Name() string
	Collect(snap *model.Snapshot) error
}

// Registry holds all registered collectors.
type Registry struct {
	collectors []Collector
}

// NewRegistry creates a registry with all default collectors.
func NewRegistry() *Registry {
	return &Registry{
		collectors: []Collector{
			&CPUCollector{},
			&MemoryCollector{},
			&ProcessCollector{},
			&UptimeCollector{},
		},
	}
}

// Add registers an additional collector.
func (r *Registry) Add(c Collector) {
	r.collectors = append(r.collectors, c)
}

// CollectAll runs all collectors concurrently against the snapshot.
// Each collector writes a disjoint set of snapshot fields, so no locking
// is needed. If any collector fails the whole pass fails and the caller
// must discard the snapshot.
func (r *Registry) CollectAll(snap *model.Snapshot) error {
	var g errgroup.Group
	for _, c := range r.collectors {
		c := c
		g.Go(func() error {
			if err := c.Collect(snap); err != nil {
				return fmt.Errorf("%s: %w", c.Name(), err)
			}
			return nil
		})
	}
	return g.Wait()
}
