package types

import (
	"reflect"
	"testing"
)

func TestToggleValue_AddAndRemove(t *testing.T) {
	d := &DraftFilters{}
	d.ToggleStatus("poweredOn")
	d.ToggleStatus("suspended")
	if !reflect.DeepEqual(d.Statuses, []string{"poweredOn", "suspended"}) {
		t.Errorf("expected both statuses selected, got %v", d.Statuses)
	}
	d.ToggleStatus("poweredOn")
	if !reflect.DeepEqual(d.Statuses, []string{"suspended"}) {
		t.Errorf("expected poweredOn removed, got %v", d.Statuses)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	max := int64(50 * MBInTB)
	original := AppliedFilters{
		Search:    "web",
		Clusters:  []string{"c1"},
		DiskRange: &SizeRange{Min: 1, Max: &max},
	}
	clone := original.Clone()
	clone.Clusters[0] = "c2"
	clone.DiskRange.Min = 99

	if original.Clusters[0] != "c1" {
		t.Errorf("clone shares cluster slice with original")
	}
	if original.DiskRange.Min != 1 {
		t.Errorf("clone shares range with original")
	}
}

func TestEqual_IgnoresSetOrder(t *testing.T) {
	a := AppliedFilters{Statuses: []string{"poweredOn", "suspended"}}
	b := AppliedFilters{Statuses: []string{"suspended", "poweredOn"}}
	if !a.Equal(&b) {
		t.Errorf("expected set equality to ignore insertion order")
	}
	b.Statuses = []string{"suspended"}
	if a.Equal(&b) {
		t.Errorf("expected different sets to differ")
	}
}

func TestEqual_NilAndEmptySetsMatch(t *testing.T) {
	a := AppliedFilters{Statuses: []string{}}
	b := AppliedFilters{}
	if !a.Equal(&b) {
		t.Errorf("empty and nil sets should be the same neutral value")
	}
}

func TestDraftIssueFlags_AreMutuallyExclusive(t *testing.T) {
	d := &DraftFilters{}
	d.SetHasIssues(true)
	d.SetNoIssues(true)
	if d.HasIssues {
		t.Errorf("selecting no-issues must clear has-issues")
	}
	if !d.NoIssues {
		t.Errorf("no-issues should be selected")
	}
	d.SetHasIssues(true)
	if d.NoIssues {
		t.Errorf("selecting has-issues must clear no-issues")
	}
}

func TestDraftProjection_DropsNoIssues(t *testing.T) {
	d := &DraftFilters{}
	d.SetNoIssues(true)
	d.ToggleCluster("c1")
	applied := d.Applied()
	if applied.HasIssues {
		t.Errorf("no-issues must never become an applied constraint")
	}
	if len(applied.Clusters) != 1 || applied.Clusters[0] != "c1" {
		t.Errorf("expected cluster selection to survive projection, got %v", applied.Clusters)
	}
}

func TestToggleDiskRange_SameBucketClears(t *testing.T) {
	d := &DraftFilters{}
	d.ToggleDiskRange(DiskSizeBuckets[2])
	if d.DiskRange == nil || d.DiskRange.Min != 20*MBInTB+1 {
		t.Fatalf("expected 21-50 TB bucket selected, got %+v", d.DiskRange)
	}
	d.ToggleDiskRange(DiskSizeBuckets[2])
	if d.DiskRange != nil {
		t.Errorf("selecting the same bucket again should clear the range")
	}
	d.ToggleDiskRange(DiskSizeBuckets[0])
	d.ToggleDiskRange(DiskSizeBuckets[3])
	if d.DiskRange == nil || d.DiskRange.Max != nil {
		t.Errorf("expected open-ended 50+ TB bucket, got %+v", d.DiskRange)
	}
}

func TestSizeRangeContains(t *testing.T) {
	max := int64(50 * MBInTB)
	r := &SizeRange{Min: 20*MBInTB + 1, Max: &max}
	if r.Contains(20 * MBInTB) {
		t.Errorf("value below min should not match")
	}
	if !r.Contains(50 * MBInTB) {
		t.Errorf("value at max is inclusive")
	}
	if r.Contains(50*MBInTB + 1) {
		t.Errorf("value above max should not match")
	}
	var unset *SizeRange
	if !unset.Contains(0) {
		t.Errorf("nil range imposes no constraint")
	}
	open := &SizeRange{Min: 0}
	if !open.Contains(0) {
		t.Errorf("min=0 with no max matches everything")
	}
}

func TestRangeLabels(t *testing.T) {
	for _, bucket := range DiskSizeBuckets {
		if got := DiskRangeLabel(bucket.Range.Clone()); got != bucket.Label {
			t.Errorf("expected bucket label %q, got %q", bucket.Label, got)
		}
	}
	max := int64(3 * MBInTB)
	if got := DiskRangeLabel(&SizeRange{Min: MBInTB, Max: &max}); got != "1-3 TB" {
		t.Errorf("expected composed label 1-3 TB, got %q", got)
	}
	if got := MemoryRangeLabel(&SizeRange{Min: 8 * MBInGB}); got != "≥ 8 GB" {
		t.Errorf("expected open-ended label, got %q", got)
	}
	if got := MemoryRangeLabel(nil); got != "" {
		t.Errorf("nil range has no label, got %q", got)
	}
}

func TestFormatSizes(t *testing.T) {
	if got := FormatDiskSize(2 * MBInTB); got != "2 TB" {
		t.Errorf("expected 2 TB, got %q", got)
	}
	if got := FormatDiskSize(MBInTB / 2); got != "512 GB" {
		t.Errorf("expected 512 GB, got %q", got)
	}
	if got := FormatDiskSize(MBInTB + MBInTB/4); got != "1.25 TB" {
		t.Errorf("expected 1.25 TB, got %q", got)
	}
	if got := FormatMemorySize(16 * MBInGB); got != "16 GB" {
		t.Errorf("expected 16 GB, got %q", got)
	}
}
