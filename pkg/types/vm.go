package types

import (
	"math"
	"strconv"
)

// PowerState is the operational state reported by the source hypervisor.
type PowerState string

const (
	PowerStateOn        PowerState = "poweredOn"
	PowerStateOff       PowerState = "poweredOff"
	PowerStateSuspended PowerState = "suspended"
)

// StatusLabels maps power states to their display names.
var StatusLabels = map[PowerState]string{
	PowerStateOn:        "Powered on",
	PowerStateOff:       "Powered off",
	PowerStateSuspended: "Suspended",
}

// StatusLabel returns the display name for a power state, falling back to
// the raw value for states the inventory source invents later.
func StatusLabel(state PowerState) string {
	if label, ok := StatusLabels[state]; ok {
		return label
	}
	return string(state)
}

// Readiness classifies a VM's migratable flag.
type Readiness string

const (
	ReadinessReady    Readiness = "ready"
	ReadinessNotReady Readiness = "not-ready"
)

// ReadinessLabel returns the display name for a readiness value.
func ReadinessLabel(r Readiness) string {
	if r == ReadinessReady {
		return "Ready"
	}
	return "Not ready"
}

// VM is one machine-inventory record. Records are supplied by the inventory
// source and are read-only to the filter pipeline. Optional fields decode to
// their zero value.
type VM struct {
	Id         string     `json:"id"`
	Name       string     `json:"name"`
	PowerState PowerState `json:"vCenterState"`
	Datacenter string     `json:"datacenter,omitempty"`
	Cluster    string     `json:"cluster,omitempty"`
	DiskSizeMB int64      `json:"diskSize"`
	MemoryMB   int64      `json:"memory"`
	IssueCount int        `json:"issueCount"`
	Migratable bool       `json:"migratable"`
}

func (v *VM) Readiness() Readiness {
	if v.Migratable {
		return ReadinessReady
	}
	return ReadinessNotReady
}

const (
	MBInGB int64 = 1024
	MBInTB int64 = 1024 * 1024
)

// FormatDiskSize renders a disk size in MB as TB when at least one TB,
// otherwise as GB.
func FormatDiskSize(sizeMB int64) string {
	if sizeMB >= MBInTB {
		return formatSize(float64(sizeMB)/float64(MBInTB), "TB")
	}
	return formatSize(float64(sizeMB)/float64(MBInGB), "GB")
}

// FormatMemorySize renders a memory size in MB as GB.
func FormatMemorySize(sizeMB int64) string {
	return formatSize(float64(sizeMB)/float64(MBInGB), "GB")
}

func formatSize(value float64, unit string) string {
	if value == math.Trunc(value) {
		return strconv.FormatFloat(value, 'f', 0, 64) + " " + unit
	}
	return strconv.FormatFloat(value, 'f', 2, 64) + " " + unit
}
