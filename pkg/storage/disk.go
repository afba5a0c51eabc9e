package storage

import (
	"compress/gzip"
	"os"
	"path"

	"github.com/bytedance/sonic"

	"github.com/virtscope/vm-inventory/pkg/types"
)

const snapshotFile = "inventory.json.gz"

// DiskStorage persists inventory snapshots as gzipped JSON under Path.
type DiskStorage struct {
	Path string
}

func NewDiskStorage(basePath string) *DiskStorage {
	return &DiskStorage{Path: basePath}
}

func (d *DiskStorage) fileName() string {
	return path.Join(d.Path, snapshotFile)
}

// LoadSnapshot reads the persisted record collection. A missing file is an
// error the caller may treat as "no snapshot yet".
func (d *DiskStorage) LoadSnapshot() ([]types.VM, error) {
	file, err := os.Open(d.fileName())
	if err != nil {
		return nil, err
	}
	defer file.Close()
	zip, err := gzip.NewReader(file)
	if err != nil {
		return nil, err
	}
	defer zip.Close()
	var items []types.VM
	if err := sonic.ConfigDefault.NewDecoder(zip).Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveSnapshot writes the record collection to a temp file and renames it
// into place, so a crash mid-write leaves the previous snapshot intact.
func (d *DiskStorage) SaveSnapshot(items []types.VM) error {
	if err := os.MkdirAll(d.Path, 0755); err != nil {
		return err
	}
	tmp := d.fileName() + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return err
	}
	zip := gzip.NewWriter(file)
	if err := sonic.ConfigDefault.NewEncoder(zip).Encode(items); err != nil {
		file.Close()
		return err
	}
	if err := zip.Close(); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, d.fileName())
}
