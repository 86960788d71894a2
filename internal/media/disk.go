package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskUploader writes files under a local directory and returns a
// path-style URL served by the API's static file route. Used for local
// development and tests when no Cloudinary credentials are configured.
type DiskUploader struct {
	dir string
}

func NewDiskUploader(dir string) (*DiskUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskUploader{dir: dir}, nil
}

func (u *DiskUploader) Upload(_ context.Context, file io.Reader, folder, filename string) (string, error) {
	name := PublicID(filename) + filepath.Ext(filename)
	dir := filepath.Join(u.dir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return fmt.Sprintf("/uploads/%s/%s", folder, name), nil
}
