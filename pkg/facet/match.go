package facet

import (
	"slices"
	"strings"

	"github.com/virtscope/vm-inventory/pkg/types"
)

// Matches evaluates one record against the full applied-filter set. It is
// pure and total: constraints combine with AND, membership inside one facet
// with OR, and absent record fields degrade to their zero value.
func Matches(vm *types.VM, f *types.AppliedFilters) bool {
	if f == nil {
		return true
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(vm.Name), strings.ToLower(f.Search)) {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, string(vm.PowerState)) {
		return false
	}
	if len(f.Clusters) > 0 && !slices.Contains(f.Clusters, vm.Cluster) {
		return false
	}
	if len(f.Datacenters) > 0 && !slices.Contains(f.Datacenters, vm.Datacenter) {
		return false
	}
	if len(f.MigrationReadiness) > 0 && !slices.Contains(f.MigrationReadiness, string(vm.Readiness())) {
		return false
	}
	if f.HasIssues && vm.IssueCount == 0 {
		return false
	}
	if !f.DiskRange.Contains(vm.DiskSizeMB) {
		return false
	}
	if !f.MemoryRange.Contains(vm.MemoryMB) {
		return false
	}
	return true
}

// Filter returns the records satisfying every active constraint, preserving
// input order.
func Filter(vms []types.VM, f *types.AppliedFilters) []types.VM {
	result := make([]types.VM, 0, len(vms))
	for i := range vms {
		if Matches(&vms[i], f) {
			result = append(result, vms[i])
		}
	}
	return result
}
