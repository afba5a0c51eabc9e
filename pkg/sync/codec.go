package sync

import (
	"log"
	"net/url"
	"slices"
	"strconv"

	"github.com/gorilla/schema"

	"github.com/virtscope/vm-inventory/pkg/types"
)

// Scope marker identifying the inventory view's section in a shared
// location reference. Inbound synchronization only fires when the marker is
// active.
const (
	TabKey   = "tab"
	TabValue = "vms"
)

// filterKeys is the stable key set the codec owns in a location reference.
// Outbound writes replace exactly these keys and leave unrelated ones
// alone.
var filterKeys = []string{
	"search",
	"status",
	"cluster",
	"datacenter",
	"migrationReadiness",
	"hasIssues",
	"diskMin",
	"diskMax",
	"memMin",
	"memMax",
}

// IsFilterKey reports whether the codec owns a location key.
func IsFilterKey(key string) bool {
	return slices.Contains(filterKeys, key)
}

type locationQuery struct {
	Search             string   `schema:"search"`
	Status             []string `schema:"status"`
	Cluster            []string `schema:"cluster"`
	Datacenter         []string `schema:"datacenter"`
	MigrationReadiness []string `schema:"migrationReadiness"`
	DiskMin            *int64   `schema:"diskMin"`
	DiskMax            *int64   `schema:"diskMax"`
	MemMin             *int64   `schema:"memMin"`
	MemMax             *int64   `schema:"memMax"`
}

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// Decode deserializes a location's query values into a filter state. Absent
// keys yield neutral values; malformed values are dropped rather than
// surfaced as errors.
func Decode(values url.Values) *types.AppliedFilters {
	query := locationQuery{}
	if err := decoder.Decode(&query, values); err != nil {
		log.Printf("ignoring malformed filter values: %v", err)
	}
	f := &types.AppliedFilters{
		Search:             query.Search,
		Statuses:           query.Status,
		Clusters:           query.Cluster,
		Datacenters:        query.Datacenter,
		MigrationReadiness: query.MigrationReadiness,
		DiskRange:          rangeOf(query.DiskMin, query.DiskMax),
		MemoryRange:        rangeOf(query.MemMin, query.MemMax),
	}
	// Presence alone switches the flag on.
	_, f.HasIssues = values["hasIssues"]
	return f
}

func rangeOf(min, max *int64) *types.SizeRange {
	if min == nil && max == nil {
		return nil
	}
	r := &types.SizeRange{Max: max}
	if min != nil {
		r.Min = *min
	}
	return r
}

// Encode serializes a filter state into its flat key-value representation.
// Neutral fields are omitted; sets are emitted sorted so the result is
// deterministic. decode(encode(f)) is observationally equal to f.
func Encode(f *types.AppliedFilters) url.Values {
	values := url.Values{}
	if f == nil {
		return values
	}
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	addSorted(values, "status", f.Statuses)
	addSorted(values, "cluster", f.Clusters)
	addSorted(values, "datacenter", f.Datacenters)
	addSorted(values, "migrationReadiness", f.MigrationReadiness)
	if f.HasIssues {
		values.Set("hasIssues", "true")
	}
	addRange(values, "diskMin", "diskMax", f.DiskRange)
	addRange(values, "memMin", "memMax", f.MemoryRange)
	return values
}

func addSorted(values url.Values, key string, set []string) {
	for _, v := range slices.Sorted(slices.Values(set)) {
		values.Add(key, v)
	}
}

func addRange(values url.Values, minKey, maxKey string, r *types.SizeRange) {
	if r == nil {
		return
	}
	values.Set(minKey, strconv.FormatInt(r.Min, 10))
	if r.Max != nil {
		values.Set(maxKey, strconv.FormatInt(*r.Max, 10))
	}
}

// FilterURL builds a location string that navigates to a pre-filtered view
// of the inventory, with the scope marker set. This is the click-through
// contract used by chart segments and row links.
func FilterURL(f *types.AppliedFilters, basePath string) string {
	if basePath == "" {
		basePath = "/report"
	}
	values := Encode(f)
	values.Set(TabKey, TabValue)
	return basePath + "?" + values.Encode()
}
