package facet

import (
	"slices"

	"github.com/virtscope/vm-inventory/pkg/types"
)

// Clusters returns the distinct non-empty cluster names in the collection,
// sorted for stable option lists.
func Clusters(vms []types.VM) []string {
	return distinct(vms, func(vm *types.VM) string { return vm.Cluster })
}

// Datacenters returns the distinct non-empty datacenter names, sorted.
func Datacenters(vms []types.VM) []string {
	return distinct(vms, func(vm *types.VM) string { return vm.Datacenter })
}

func distinct(vms []types.VM, value func(*types.VM) string) []string {
	seen := make(map[string]struct{}, len(vms))
	for i := range vms {
		v := value(&vms[i])
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	result := make([]string, 0, len(seen))
	for v := range seen {
		result = append(result, v)
	}
	slices.Sort(result)
	return result
}

// CountByReadiness aggregates the collection for the readiness chart
// segments.
func CountByReadiness(vms []types.VM) map[types.Readiness]int {
	counts := make(map[types.Readiness]int, 2)
	for i := range vms {
		counts[vms[i].Readiness()]++
	}
	return counts
}

// CountByStatus aggregates the collection by power state.
func CountByStatus(vms []types.VM) map[types.PowerState]int {
	counts := make(map[types.PowerState]int, 3)
	for i := range vms {
		counts[vms[i].PowerState]++
	}
	return counts
}

// CountWithIssues returns how many records report at least one issue.
func CountWithIssues(vms []types.VM) int {
	n := 0
	for i := range vms {
		if vms[i].IssueCount > 0 {
			n++
		}
	}
	return n
}
