package upload

import (
	"os"
	"path/filepath"
)

// Store persists object bytes under a bucket/key pair and returns the
// public URL the object is served from. Writing an existing key
// overwrites the previous object.
type Store interface {
	Save(bucket, key string, data []byte) (string, error)
}

// DiskStore keeps objects on the local filesystem, one directory per
// bucket, served back through the static file route.
type DiskStore struct {
	BaseDir      string
	PublicPrefix string
}

func NewDiskStore(baseDir, publicPrefix string) *DiskStore {
	return &DiskStore{BaseDir: baseDir, PublicPrefix: publicPrefix}
}

func (s *DiskStore) Save(bucket, key string, data []byte) (string, error) {
	dir := filepath.Join(s.BaseDir, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, key), data, 0o644); err != nil {
		return "", err
	}
	return s.PublicPrefix + "/" + bucket + "/" + key, nil
}
