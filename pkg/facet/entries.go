package facet

import "github.com/virtscope/vm-inventory/pkg/types"

// Entries derives the display-ready chip list from applied state: one entry
// per active atomic constraint. The free-text search is shown in the search
// input itself and gets no chip.
func Entries(f *types.AppliedFilters) []types.AppliedFilterEntry {
	if f == nil {
		return nil
	}
	entries := make([]types.AppliedFilterEntry, 0, 8)

	if label := types.MemoryRangeLabel(f.MemoryRange); label != "" {
		entries = append(entries, types.AppliedFilterEntry{
			Category: "Memory",
			Label:    label,
			Key:      types.KeyMemorySize,
		})
	}
	if label := types.DiskRangeLabel(f.DiskRange); label != "" {
		entries = append(entries, types.AppliedFilterEntry{
			Category: "Disk size",
			Label:    label,
			Key:      types.KeyDiskSize,
		})
	}
	for _, status := range f.Statuses {
		entries = append(entries, types.AppliedFilterEntry{
			Category: "Status",
			Label:    types.StatusLabel(types.PowerState(status)),
			Key:      types.KeyStatusPrefix + status,
		})
	}
	for _, cluster := range f.Clusters {
		entries = append(entries, types.AppliedFilterEntry{
			Category: "Cluster",
			Label:    cluster,
			Key:      types.KeyClusterPrefix + cluster,
		})
	}
	for _, datacenter := range f.Datacenters {
		entries = append(entries, types.AppliedFilterEntry{
			Category: "Data center",
			Label:    datacenter,
			Key:      types.KeyDatacenterPrefix + datacenter,
		})
	}
	for _, readiness := range f.MigrationReadiness {
		entries = append(entries, types.AppliedFilterEntry{
			Category: "Migration Readiness",
			Label:    types.ReadinessLabel(types.Readiness(readiness)),
			Key:      types.KeyReadinessPrefix + readiness,
		})
	}
	if f.HasIssues {
		entries = append(entries, types.AppliedFilterEntry{
			Category: "Issues",
			Label:    "Has issues",
			Key:      types.KeyHasIssues,
		})
	}
	return entries
}
