package index

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/virtscope/vm-inventory/pkg/facet"
	"github.com/virtscope/vm-inventory/pkg/sorting"
	"github.com/virtscope/vm-inventory/pkg/types"
)

var (
	totalItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "vminventory_items_total",
		Help: "The total number of records in the inventory",
	})
	noUpserts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vminventory_item_upserts_total",
		Help: "The total number of record upserts applied",
	})
	noDeletes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vminventory_item_deletes_total",
		Help: "The total number of record deletes applied",
	})
)

// Index owns the ordered record collection and the loading flag. All reads
// and mutations go through the mutex so the pipeline never observes a
// partially applied update.
type Index struct {
	mu      sync.RWMutex
	items   []types.VM
	loading bool
}

func NewIndex() *Index {
	return &Index{loading: true}
}

// SetItems replaces the whole collection and clears the loading flag.
func (i *Index) SetItems(items []types.VM) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.items = items
	i.loading = false
	totalItems.Set(float64(len(items)))
}

// UpsertItems updates records in place by id, appending unknown ids in
// message order.
func (i *Index) UpsertItems(items []types.VM) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, item := range items {
		found := false
		for idx := range i.items {
			if i.items[idx].Id == item.Id {
				i.items[idx] = item
				found = true
				break
			}
		}
		if !found {
			i.items = append(i.items, item)
		}
		noUpserts.Inc()
	}
	i.loading = false
	totalItems.Set(float64(len(i.items)))
}

// DeleteItems removes records by id; unknown ids are ignored.
func (i *Index) DeleteItems(ids []string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, id := range ids {
		for idx := range i.items {
			if i.items[idx].Id == id {
				i.items = append(i.items[:idx], i.items[idx+1:]...)
				noDeletes.Inc()
				break
			}
		}
	}
	totalItems.Set(float64(len(i.items)))
}

// Loading reports whether the collection has not been supplied yet. While
// loading the pipeline is not run over stale data.
func (i *Index) Loading() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.loading
}

// Items returns a copy of the collection in source order.
func (i *Index) Items() []types.VM {
	i.mu.RLock()
	defer i.mu.RUnlock()
	items := make([]types.VM, len(i.items))
	copy(items, i.items)
	return items
}

func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.items)
}

// Result is one visible page of the filtered and ordered collection.
type Result struct {
	Loading  bool       `json:"loading,omitempty"`
	Items    []types.VM `json:"items"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"pageSize"`
}

// Query runs the filter, sort and page pipeline over the current
// collection. It is a pure recomputation of {records, filters, sort, page};
// no state is kept between calls.
func (i *Index) Query(f *types.AppliedFilters, spec types.SortSpec, page types.PageState) *Result {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.loading {
		return &Result{Loading: true, Items: []types.VM{}}
	}
	matched := facet.Filter(i.items, f)
	ordered := sorting.Sort(matched, spec)
	return &Result{
		Items:    Paginate(ordered, page),
		Total:    len(ordered),
		Page:     page.Number,
		PageSize: page.Size,
	}
}

// FacetOptions are the selectable values and aggregate counts derived from
// the current collection.
type FacetOptions struct {
	Clusters    []string                 `json:"clusters"`
	Datacenters []string                 `json:"datacenters"`
	Statuses    map[types.PowerState]int `json:"statuses"`
	Readiness   map[types.Readiness]int  `json:"readiness"`
	WithIssues  int                      `json:"withIssues"`
}

func (i *Index) FacetOptions() *FacetOptions {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return &FacetOptions{
		Clusters:    facet.Clusters(i.items),
		Datacenters: facet.Datacenters(i.items),
		Statuses:    facet.CountByStatus(i.items),
		Readiness:   facet.CountByReadiness(i.items),
		WithIssues:  facet.CountWithIssues(i.items),
	}
}
