package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// localDisk stores files under a root directory on the local filesystem.
type localDisk struct {
	root    string
	baseURL string
}

func newLocalDisk(root, baseURL string) *localDisk {
	return &localDisk{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

// NewLocal returns a local-filesystem disk rooted at root, for callers
// that register disks themselves instead of going through Connect.
func NewLocal(root, baseURL string) Disk {
	return newLocalDisk(root, baseURL)
}

func (d *localDisk) fullPath(path string) string {
	return filepath.Join(d.root, filepath.Clean("/"+path))
}

func (d *localDisk) Put(path string, content []byte) error {
	full := d.fullPath(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, content, 0o644)
}

func (d *localDisk) PutStream(path string, r io.Reader) error {
	full := d.fullPath(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	f, err := os.Create(full)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, r)
	return err
}

func (d *localDisk) Get(path string) ([]byte, error) {
	return os.ReadFile(d.fullPath(path))
}

func (d *localDisk) GetStream(path string) (io.ReadCloser, error) {
	return os.Open(d.fullPath(path))
}

func (d *localDisk) Exists(path string) bool {
	info, err := os.Stat(d.fullPath(path))
	return err == nil && !info.IsDir()
}

func (d *localDisk) Missing(path string) bool { return !d.Exists(path) }

func (d *localDisk) Size(path string) (int64, error) {
	info, err := os.Stat(d.fullPath(path))
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (d *localDisk) LastModified(path string) (time.Time, error) {
	info, err := os.Stat(d.fullPath(path))
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

func (d *localDisk) URL(path string) string {
	return d.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (d *localDisk) Delete(path string) error {
	err := os.Remove(d.fullPath(path))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (d *localDisk) Files(directory string) ([]string, error) {
	entries, err := os.ReadDir(d.fullPath(directory))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	files := []string{}
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, e.Name())
		}
	}
	return files, nil
}
