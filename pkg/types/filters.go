package types

import "slices"

// AppliedFilters is the filter state currently affecting visible results.
// Every field's zero representation means "no constraint from this facet".
// Constraints across fields combine with AND; membership inside one set
// combines with OR.
type AppliedFilters struct {
	Search             string     `json:"search,omitempty"`
	Statuses           []string   `json:"statuses,omitempty"`
	Clusters           []string   `json:"clusters,omitempty"`
	Datacenters        []string   `json:"datacenters,omitempty"`
	MigrationReadiness []string   `json:"migrationReadiness,omitempty"`
	HasIssues          bool       `json:"hasIssues,omitempty"`
	DiskRange          *SizeRange `json:"diskRange,omitempty"`
	MemoryRange        *SizeRange `json:"memoryRange,omitempty"`
}

// Clone returns an independent copy.
func (f *AppliedFilters) Clone() AppliedFilters {
	return AppliedFilters{
		Search:             f.Search,
		Statuses:           slices.Clone(f.Statuses),
		Clusters:           slices.Clone(f.Clusters),
		Datacenters:        slices.Clone(f.Datacenters),
		MigrationReadiness: slices.Clone(f.MigrationReadiness),
		HasIssues:          f.HasIssues,
		DiskRange:          f.DiskRange.Clone(),
		MemoryRange:        f.MemoryRange.Clone(),
	}
}

// IsZero reports whether no facet imposes a constraint.
func (f *AppliedFilters) IsZero() bool {
	return f.Search == "" &&
		len(f.Statuses) == 0 &&
		len(f.Clusters) == 0 &&
		len(f.Datacenters) == 0 &&
		len(f.MigrationReadiness) == 0 &&
		!f.HasIssues &&
		f.DiskRange == nil &&
		f.MemoryRange == nil
}

// Equal compares two filter states. Multi-valued facets are compared as
// sets; insertion order does not matter.
func (f *AppliedFilters) Equal(other *AppliedFilters) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.Search == other.Search &&
		sameSet(f.Statuses, other.Statuses) &&
		sameSet(f.Clusters, other.Clusters) &&
		sameSet(f.Datacenters, other.Datacenters) &&
		sameSet(f.MigrationReadiness, other.MigrationReadiness) &&
		f.HasIssues == other.HasIssues &&
		f.DiskRange.Equal(other.DiskRange) &&
		f.MemoryRange.Equal(other.MemoryRange)
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := slices.Clone(a)
	bs := slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}

// toggleValue adds value when absent and removes it when present.
func toggleValue(values []string, value string) []string {
	for i, v := range values {
		if v == value {
			return append(values[:i:i], values[i+1:]...)
		}
	}
	return append(values, value)
}

// DraftFilters is the modal-scoped editing copy of AppliedFilters, plus the
// mutually exclusive issue-type checkboxes. NoIssues is display-only: it
// never survives the projection back onto the applied shape.
type DraftFilters struct {
	AppliedFilters
	NoIssues bool
}

func (d *DraftFilters) ToggleStatus(status string) {
	d.Statuses = toggleValue(d.Statuses, status)
}

func (d *DraftFilters) ToggleCluster(cluster string) {
	d.Clusters = toggleValue(d.Clusters, cluster)
}

func (d *DraftFilters) ToggleDatacenter(datacenter string) {
	d.Datacenters = toggleValue(d.Datacenters, datacenter)
}

func (d *DraftFilters) ToggleReadiness(readiness string) {
	d.MigrationReadiness = toggleValue(d.MigrationReadiness, readiness)
}

// SetHasIssues turns the "has issues" checkbox on or off. Turning it on
// forces "no issues" off.
func (d *DraftFilters) SetHasIssues(on bool) {
	d.HasIssues = on
	if on {
		d.NoIssues = false
	}
}

// SetNoIssues turns the "no issues" checkbox on or off. Turning it on
// forces "has issues" off.
func (d *DraftFilters) SetNoIssues(on bool) {
	d.NoIssues = on
	if on {
		d.HasIssues = false
	}
}

// ToggleDiskRange selects the bucket's range, or clears the range when the
// same bucket is already selected.
func (d *DraftFilters) ToggleDiskRange(bucket SizeBucket) {
	if bucket.Range.Equal(d.DiskRange) {
		d.DiskRange = nil
		return
	}
	d.DiskRange = bucket.Range.Clone()
}

// ToggleMemoryRange selects the bucket's range, or clears it when already
// selected.
func (d *DraftFilters) ToggleMemoryRange(bucket SizeBucket) {
	if bucket.Range.Equal(d.MemoryRange) {
		d.MemoryRange = nil
		return
	}
	d.MemoryRange = bucket.Range.Clone()
}

// Applied projects the draft onto the applied shape, dropping the
// display-only NoIssues flag.
func (d *DraftFilters) Applied() AppliedFilters {
	return d.AppliedFilters.Clone()
}
