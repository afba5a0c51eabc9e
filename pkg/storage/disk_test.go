package storage

import (
	"os"
	"testing"

	"github.com/virtscope/vm-inventory/pkg/types"
)

func TestDiskStorage_SaveAndLoadSnapshot(t *testing.T) {
	store := NewDiskStorage(t.TempDir())

	saved := []types.VM{
		{Id: "vm-1", Name: "web-1", PowerState: types.PowerStateOn, Cluster: "c1", Datacenter: "dc1", DiskSizeMB: 5 * types.MBInTB, MemoryMB: 8 * types.MBInGB, Migratable: true},
		{Id: "vm-2", Name: "db-1", PowerState: types.PowerStateOff, IssueCount: 3},
	}
	if err := store.SaveSnapshot(saved); err != nil {
		t.Fatalf("saving snapshot: %v", err)
	}

	loaded, err := store.LoadSnapshot()
	if err != nil {
		t.Fatalf("loading snapshot: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 records, got %d", len(loaded))
	}
	if loaded[0] != saved[0] || loaded[1] != saved[1] {
		t.Errorf("round trip changed records:\n in: %+v\nout: %+v", saved, loaded)
	}
}

func TestDiskStorage_MissingSnapshot(t *testing.T) {
	store := NewDiskStorage(t.TempDir())
	if _, err := store.LoadSnapshot(); !os.IsNotExist(err) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestDiskStorage_OverwriteKeepsLatest(t *testing.T) {
	store := NewDiskStorage(t.TempDir())
	if err := store.SaveSnapshot([]types.VM{{Id: "vm-1"}}); err != nil {
		t.Fatalf("saving first snapshot: %v", err)
	}
	if err := store.SaveSnapshot([]types.VM{{Id: "vm-2"}, {Id: "vm-3"}}); err != nil {
		t.Fatalf("saving second snapshot: %v", err)
	}
	loaded, err := store.LoadSnapshot()
	if err != nil {
		t.Fatalf("loading snapshot: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Id != "vm-2" {
		t.Errorf("expected the latest snapshot, got %+v", loaded)
	}
}
