package infra

// storage.go — local-disk image store for animal gallery uploads.
// Files are written under the configured upload directory with randomized
// (uuid) names; the original filename is only used for its extension. The
// router serves the directory statically at /uploads.

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore persists uploaded images on local disk.
type ImageStore struct {
	dir string
}

func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("storage: create upload dir: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

var extensionesPermitidas = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

// Save writes the uploaded file with a randomized name and returns the
// public path ("/uploads/<name>") stored in animal_imagenes.ruta.
func (s *ImageStore) Save(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !extensionesPermitidas[ext] {
		return "", fmt.Errorf("storage: extension no permitida: %s", ext)
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(s.dir, name)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("storage: open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("storage: write file: %w", err)
	}

	return "/uploads/" + name, nil
}

// Dir returns the backing directory (for the static route).
func (s *ImageStore) Dir() string { return s.dir }
