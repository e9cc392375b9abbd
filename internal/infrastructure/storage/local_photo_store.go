// Package storage writes uploaded complaint photos to a public uploads
// directory served statically by the API.
package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"civic_pulse/internal/usecase/interfaces"
)

const publicPrefix = "/uploads"

// dataURLPattern matches the only accepted photoBase64 shape:
// data:image/<subtype>;base64,<payload>
var dataURLPattern = regexp.MustCompile(`^data:image/(\w+);base64,(.+)$`)

// LocalPhotoStore persists photos on the local filesystem.
//
// Filenames are {unix-ms}-{random-int}.{ext}; a collision would require two
// writes in the same millisecond drawing the same random integer, which the
// expected volume never approaches. Stored files are retained forever.

type LocalPhotoStore struct {
	baseDir string
}

var _ interfaces.IPhotoStore = (*LocalPhotoStore)(nil)

func NewLocalPhotoStore(baseDir string) (*LocalPhotoStore, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}
	return &LocalPhotoStore{baseDir: abs}, nil
}

// BaseDir returns the uploads directory for static file serving.
func (s *LocalPhotoStore) BaseDir() string {
	return s.baseDir
}

func (s *LocalPhotoStore) StoreUpload(_ context.Context, r io.Reader, filenameHint string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filenameHint), "."))
	return s.write(r, ext)
}

func (s *LocalPhotoStore) StoreDataURL(_ context.Context, dataURL string) (string, error) {
	m := dataURLPattern.FindStringSubmatch(dataURL)
	if m == nil {
		return "", interfaces.ErrInvalidDataURL
	}

	data, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return "", fmt.Errorf("%w: %v", interfaces.ErrInvalidDataURL, err)
	}
	return s.write(strings.NewReader(string(data)), m[1])
}

func (s *LocalPhotoStore) write(r io.Reader, ext string) (string, error) {
	if ext == "" {
		ext = "png"
	}
	name := fmt.Sprintf("%d-%d.%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)

	f, err := os.Create(filepath.Join(s.baseDir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return publicPrefix + "/" + name, nil
}

func (s *LocalPhotoStore) AbsolutePath(relPath string) (string, error) {
	name, err := s.filename(relPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.baseDir, name), nil
}

func (s *LocalPhotoStore) Remove(relPath string) error {
	name, err := s.filename(relPath)
	if err != nil {
		return err
	}
	return os.Remove(filepath.Join(s.baseDir, name))
}

// filename extracts the bare stored filename, rejecting paths pointing
// outside the uploads directory.
func (s *LocalPhotoStore) filename(relPath string) (string, error) {
	if !strings.HasPrefix(relPath, publicPrefix+"/") {
		return "", errors.New("photo path outside uploads directory")
	}
	name := strings.TrimPrefix(relPath, publicPrefix+"/")
	if name == "" || name != filepath.Base(name) {
		return "", errors.New("photo path outside uploads directory")
	}
	return name, nil
}
