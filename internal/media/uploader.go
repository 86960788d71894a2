// Package media stores uploaded files (resumes, company logos) and
// returns durable URLs. Uploads are independent of the store write
// that records the URL; there is no compensating transaction if one
// of the two fails.
package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Uploader interface {
	// Upload stores the file under folder and returns its durable URL.
	Upload(ctx context.Context, file io.Reader, folder, filename string) (string, error)
}

// PublicID derives a collision-free identifier from the original
// filename, mirroring the "<name>-<suffix>" convention used for
// resume uploads.
func PublicID(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if base == "" {
		base = "file"
	}
	return fmt.Sprintf("%s-%s", base, uuid.NewString()[:8])
}
