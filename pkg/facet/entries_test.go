package facet

import (
	"testing"

	"github.com/virtscope/vm-inventory/pkg/types"
)

func TestEntries_OnePerAtomicConstraint(t *testing.T) {
	max := int64(50 * types.MBInTB)
	f := &types.AppliedFilters{
		Search:             "web",
		Statuses:           []string{"poweredOn", "suspended"},
		Clusters:           []string{"c1"},
		Datacenters:        []string{"dc2"},
		MigrationReadiness: []string{"ready"},
		HasIssues:          true,
		DiskRange:          &types.SizeRange{Min: 20*types.MBInTB + 1, Max: &max},
	}
	entries := Entries(f)

	// Search lives in the search input, not in the chip list.
	if len(entries) != 7 {
		t.Fatalf("expected 7 entries, got %d: %+v", len(entries), entries)
	}

	byKey := make(map[string]types.AppliedFilterEntry, len(entries))
	for _, e := range entries {
		byKey[e.Key] = e
	}

	if e := byKey["diskSize"]; e.Label != "21-50 TB" || e.Category != "Disk size" {
		t.Errorf("unexpected disk entry %+v", e)
	}
	if e := byKey["status-poweredOn"]; e.Label != "Powered on" || e.Category != "Status" {
		t.Errorf("unexpected status entry %+v", e)
	}
	if e := byKey["status-suspended"]; e.Label != "Suspended" {
		t.Errorf("unexpected status entry %+v", e)
	}
	if e := byKey["cluster-c1"]; e.Label != "c1" || e.Category != "Cluster" {
		t.Errorf("unexpected cluster entry %+v", e)
	}
	if e := byKey["datacenter-dc2"]; e.Category != "Data center" {
		t.Errorf("unexpected datacenter entry %+v", e)
	}
	if e := byKey["migration-readiness-ready"]; e.Label != "Ready" || e.Category != "Migration Readiness" {
		t.Errorf("unexpected readiness entry %+v", e)
	}
	if e := byKey["hasIssues"]; e.Label != "Has issues" || e.Category != "Issues" {
		t.Errorf("unexpected issues entry %+v", e)
	}
}

func TestEntries_NeutralFiltersYieldNone(t *testing.T) {
	if got := Entries(&types.AppliedFilters{}); len(got) != 0 {
		t.Errorf("expected no entries for neutral filters, got %+v", got)
	}
	if got := Entries(nil); got != nil {
		t.Errorf("expected nil entries for nil filters, got %+v", got)
	}
}
