package types

// Removal keys identify one atomic applied constraint. Set members carry a
// category prefix plus the value; single-valued constraints use a fixed key.
const (
	KeyStatusPrefix     = "status-"
	KeyClusterPrefix    = "cluster-"
	KeyDatacenterPrefix = "datacenter-"
	KeyReadinessPrefix  = "migration-readiness-"
	KeyMemorySize       = "memorySize"
	KeyDiskSize         = "diskSize"
	KeyHasIssues        = "hasIssues"
)

// AppliedFilterEntry is one display-ready chip derived from applied state.
// Entries are recomputed on every filter change and never mutated; removal
// goes through the store using Key.
type AppliedFilterEntry struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Key      string `json:"key"`
}
