package sorting

import (
	"sort"

	"github.com/virtscope/vm-inventory/pkg/types"
)

// Sort orders a record sequence by the spec's column and direction. An
// unset spec returns the input as-is. The sort is stable: records with
// equal primary keys keep their relative input order. Descending flips the
// comparator sign, not the sorted output, so ties stay stable either way.
func Sort(vms []types.VM, spec types.SortSpec) []types.VM {
	if spec.IsZero() {
		return vms
	}
	compare := comparator(spec.Column)
	sorted := make([]types.VM, len(vms))
	copy(sorted, vms)
	sort.SliceStable(sorted, func(i, j int) bool {
		c := compare(&sorted[i], &sorted[j])
		if spec.Descending {
			return c > 0
		}
		return c < 0
	})
	return sorted
}

func comparator(column types.SortColumn) func(a, b *types.VM) int {
	switch column {
	case types.SortByName:
		return func(a, b *types.VM) int { return compareString(a.Name, b.Name) }
	case types.SortByStatus:
		return func(a, b *types.VM) int { return compareString(string(a.PowerState), string(b.PowerState)) }
	case types.SortById:
		return func(a, b *types.VM) int { return compareString(a.Id, b.Id) }
	case types.SortByDatacenter:
		return func(a, b *types.VM) int { return compareString(a.Datacenter, b.Datacenter) }
	case types.SortByCluster:
		return func(a, b *types.VM) int { return compareString(a.Cluster, b.Cluster) }
	case types.SortByDiskSize:
		return func(a, b *types.VM) int { return compareInt(a.DiskSizeMB, b.DiskSizeMB) }
	case types.SortByMemory:
		return func(a, b *types.VM) int { return compareInt(a.MemoryMB, b.MemoryMB) }
	case types.SortByIssues:
		return func(a, b *types.VM) int { return compareInt(int64(a.IssueCount), int64(b.IssueCount)) }
	case types.SortByMigratable:
		// Ready sorts before not ready in ascending order.
		return func(a, b *types.VM) int { return compareInt(boolValue(b.Migratable), boolValue(a.Migratable)) }
	}
	return func(a, b *types.VM) int { return 0 }
}

func compareString(a, b string) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func compareInt(a, b int64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func boolValue(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
