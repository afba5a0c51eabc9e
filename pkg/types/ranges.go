package types

import "strconv"

// SizeRange is an inclusive numeric constraint in MB. A nil Max means
// unbounded above.
type SizeRange struct {
	Min int64  `json:"min"`
	Max *int64 `json:"max,omitempty"`
}

// Contains reports whether value satisfies the range. A nil range imposes
// no constraint.
func (r *SizeRange) Contains(value int64) bool {
	if r == nil {
		return true
	}
	if value < r.Min {
		return false
	}
	if r.Max != nil && value > *r.Max {
		return false
	}
	return true
}

func (r *SizeRange) Equal(other *SizeRange) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.Min != other.Min {
		return false
	}
	if r.Max == nil || other.Max == nil {
		return r.Max == nil && other.Max == nil
	}
	return *r.Max == *other.Max
}

func (r *SizeRange) Clone() *SizeRange {
	if r == nil {
		return nil
	}
	clone := &SizeRange{Min: r.Min}
	if r.Max != nil {
		max := *r.Max
		clone.Max = &max
	}
	return clone
}

// SizeBucket is one selectable range option in the filter surface.
type SizeBucket struct {
	Label string `json:"label"`
	Range SizeRange
}

func upTo(mb int64) *int64 { return &mb }

// DiskSizeBuckets are the selectable disk size ranges, in MB, displayed
// as TB.
var DiskSizeBuckets = []SizeBucket{
	{Label: "0-10 TB", Range: SizeRange{Min: 0, Max: upTo(10 * MBInTB)}},
	{Label: "11-20 TB", Range: SizeRange{Min: 10*MBInTB + 1, Max: upTo(20 * MBInTB)}},
	{Label: "21-50 TB", Range: SizeRange{Min: 20*MBInTB + 1, Max: upTo(50 * MBInTB)}},
	{Label: "50+ TB", Range: SizeRange{Min: 50*MBInTB + 1}},
}

// MemorySizeBuckets are the selectable memory size ranges, in MB, displayed
// as GB.
var MemorySizeBuckets = []SizeBucket{
	{Label: "0-4 GB", Range: SizeRange{Min: 0, Max: upTo(4 * MBInGB)}},
	{Label: "5-16 GB", Range: SizeRange{Min: 4*MBInGB + 1, Max: upTo(16 * MBInGB)}},
	{Label: "17-32 GB", Range: SizeRange{Min: 16*MBInGB + 1, Max: upTo(32 * MBInGB)}},
	{Label: "33-64 GB", Range: SizeRange{Min: 32*MBInGB + 1, Max: upTo(64 * MBInGB)}},
	{Label: "65-128 GB", Range: SizeRange{Min: 64*MBInGB + 1, Max: upTo(128 * MBInGB)}},
	{Label: "129-256 GB", Range: SizeRange{Min: 128*MBInGB + 1, Max: upTo(256 * MBInGB)}},
	{Label: "256+ GB", Range: SizeRange{Min: 256*MBInGB + 1}},
}

// DiskRangeLabel returns the chip label for a disk range: the matching
// bucket label when one exists, otherwise a composed TB label.
func DiskRangeLabel(r *SizeRange) string {
	return rangeLabel(r, DiskSizeBuckets, MBInTB, "TB")
}

// MemoryRangeLabel returns the chip label for a memory range.
func MemoryRangeLabel(r *SizeRange) string {
	return rangeLabel(r, MemorySizeBuckets, MBInGB, "GB")
}

func rangeLabel(r *SizeRange, buckets []SizeBucket, unitMB int64, unit string) string {
	if r == nil {
		return ""
	}
	for _, bucket := range buckets {
		if bucket.Range.Equal(r) {
			return bucket.Label
		}
	}
	min := strconv.FormatInt(r.Min/unitMB, 10)
	if r.Max != nil {
		return min + "-" + strconv.FormatInt(*r.Max/unitMB, 10) + " " + unit
	}
	return "≥ " + min + " " + unit
}
