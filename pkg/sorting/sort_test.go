package sorting

import (
	"testing"

	"github.com/virtscope/vm-inventory/pkg/types"
)

func testVMs() []types.VM {
	return []types.VM{
		{Id: "vm-1", Name: "charlie", DiskSizeMB: 30, MemoryMB: 16, IssueCount: 2, Migratable: false},
		{Id: "vm-2", Name: "alpha", DiskSizeMB: 10, MemoryMB: 64, IssueCount: 0, Migratable: true},
		{Id: "vm-3", Name: "bravo", DiskSizeMB: 30, MemoryMB: 8, IssueCount: 1, Migratable: false},
		{Id: "vm-4", Name: "alpha", DiskSizeMB: 20, MemoryMB: 32, IssueCount: 0, Migratable: true},
	}
}

func order(vms []types.VM) []string {
	result := make([]string, len(vms))
	for i, vm := range vms {
		result[i] = vm.Id
	}
	return result
}

func expectOrder(t *testing.T, vms []types.VM, want ...string) {
	t.Helper()
	got := order(vms)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSort_UnsetSpecIsPassthrough(t *testing.T) {
	vms := testVMs()
	got := Sort(vms, types.SortSpec{})
	expectOrder(t, got, "vm-1", "vm-2", "vm-3", "vm-4")
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	vms := testVMs()
	Sort(vms, types.SortSpec{Column: types.SortByName})
	expectOrder(t, vms, "vm-1", "vm-2", "vm-3", "vm-4")
}

func TestSort_ByNameAscendingAndDescending(t *testing.T) {
	vms := testVMs()
	asc := Sort(vms, types.SortSpec{Column: types.SortByName})
	expectOrder(t, asc, "vm-2", "vm-4", "vm-3", "vm-1")

	desc := Sort(vms, types.SortSpec{Column: types.SortByName, Descending: true})
	expectOrder(t, desc, "vm-1", "vm-3", "vm-2", "vm-4")
}

func TestSort_TiesKeepInputOrder(t *testing.T) {
	vms := testVMs()
	// vm-1 and vm-3 share disk size 30; both directions keep vm-1 first.
	asc := Sort(vms, types.SortSpec{Column: types.SortByDiskSize})
	expectOrder(t, asc, "vm-2", "vm-4", "vm-1", "vm-3")

	desc := Sort(vms, types.SortSpec{Column: types.SortByDiskSize, Descending: true})
	expectOrder(t, desc, "vm-1", "vm-3", "vm-4", "vm-2")
}

func TestSort_MigratableReadyFirstAscending(t *testing.T) {
	vms := testVMs()
	asc := Sort(vms, types.SortSpec{Column: types.SortByMigratable})
	expectOrder(t, asc, "vm-2", "vm-4", "vm-1", "vm-3")

	desc := Sort(vms, types.SortSpec{Column: types.SortByMigratable, Descending: true})
	expectOrder(t, desc, "vm-1", "vm-3", "vm-2", "vm-4")
}

func TestSort_ByIssuesNumeric(t *testing.T) {
	vms := testVMs()
	asc := Sort(vms, types.SortSpec{Column: types.SortByIssues})
	expectOrder(t, asc, "vm-2", "vm-4", "vm-3", "vm-1")
}

func TestSort_UnknownColumnKeepsOrder(t *testing.T) {
	vms := testVMs()
	got := Sort(vms, types.SortSpec{Column: "bogus"})
	expectOrder(t, got, "vm-1", "vm-2", "vm-3", "vm-4")
}
