package index

import "github.com/virtscope/vm-inventory/pkg/types"

// Paginate slices one page out of an ordered sequence. A page pointing past
// the end yields an empty page; resetting the page number after filter
// changes is the store's job.
func Paginate(vms []types.VM, page types.PageState) []types.VM {
	if page.Size <= 0 || page.Number < 1 {
		return []types.VM{}
	}
	start := (page.Number - 1) * page.Size
	if start >= len(vms) {
		return []types.VM{}
	}
	end := start + page.Size
	if end > len(vms) {
		end = len(vms)
	}
	result := make([]types.VM, end-start)
	copy(result, vms[start:end])
	return result
}
