package storage

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/shashiranjanraj/laziz/config"
	"github.com/shashiranjanraj/laziz/pkg/logger"
)

var (
	mu    sync.RWMutex
	disks = map[string]Disk{}
)

// Connect initialises the disk named by STORAGE_DISK and registers it as
// the default. Call once at boot, after config.Load.
func Connect() error {
	name := config.StorageDefault()

	var (
		d   Disk
		err error
	)
	switch name {
	case "local":
		d = newLocalDisk(config.StorageLocalRoot(), config.StorageURL())
	case "s3":
		d, err = newS3Disk()
	default:
		return fmt.Errorf("storage: unknown disk %q", name)
	}
	if err != nil {
		return fmt.Errorf("storage: connect %s: %w", name, err)
	}

	RegisterDisk(name, d)
	logger.Info("storage connected", "disk", name)
	return nil
}

// RegisterDisk makes a named disk available through Use.
// The first registered disk becomes the default.
func RegisterDisk(name string, d Disk) {
	mu.Lock()
	defer mu.Unlock()
	if len(disks) == 0 {
		disks["default"] = d
	}
	disks[name] = d
}

// Use returns the disk registered under name.
func Use(name string) (Disk, error) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := disks[name]
	if !ok {
		return nil, fmt.Errorf("storage: disk %q not registered", name)
	}
	return d, nil
}

func defaultDisk() Disk {
	mu.RLock()
	defer mu.RUnlock()
	return disks["default"]
}

// ── Default-disk helpers ─────────────────────────────────────────────

func Put(path string, content []byte) error        { return defaultDisk().Put(path, content) }
func PutStream(path string, r io.Reader) error     { return defaultDisk().PutStream(path, r) }
func Get(path string) ([]byte, error)              { return defaultDisk().Get(path) }
func GetStream(path string) (io.ReadCloser, error) { return defaultDisk().GetStream(path) }
func Exists(path string) bool                      { return defaultDisk().Exists(path) }
func Missing(path string) bool                     { return defaultDisk().Missing(path) }
func Size(path string) (int64, error)              { return defaultDisk().Size(path) }
func LastModified(path string) (time.Time, error)  { return defaultDisk().LastModified(path) }
func URL(path string) string                       { return defaultDisk().URL(path) }
func Delete(path string) error                     { return defaultDisk().Delete(path) }
func Files(directory string) ([]string, error)     { return defaultDisk().Files(directory) }
