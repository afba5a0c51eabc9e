package types

// SortColumn names one sortable column of the inventory table.
type SortColumn string

const (
	SortByName       SortColumn = "name"
	SortByStatus     SortColumn = "status"
	SortById         SortColumn = "id"
	SortByDatacenter SortColumn = "datacenter"
	SortByCluster    SortColumn = "cluster"
	SortByDiskSize   SortColumn = "diskSize"
	SortByMemory     SortColumn = "memory"
	SortByIssues     SortColumn = "issues"
	SortByMigratable SortColumn = "migratable"
)

// SortSpec selects the active sort column and direction. The zero value
// means no explicit order: the collection order is preserved.
type SortSpec struct {
	Column     SortColumn `json:"column,omitempty"`
	Descending bool       `json:"descending,omitempty"`
}

func (s SortSpec) IsZero() bool {
	return s.Column == ""
}
