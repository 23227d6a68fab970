package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const localURLPrefix = "/uploads/"

// Local grava em disco; os arquivos são servidos em /uploads.
type Local struct {
	basePath string
}

func NewLocal(basePath string) *Local {
	if basePath == "" {
		basePath = "./uploads"
	}
	return &Local{basePath: basePath}
}

func (s *Local) BasePath() string {
	return s.basePath
}

func (s *Local) Upload(ctx context.Context, r io.Reader, path, contentType string) (string, error) {
	path = cleanPath(path)
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(path))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	out, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.PublicURL(path), nil
}

func (s *Local) Delete(ctx context.Context, path string) error {
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(cleanPath(path)))

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.removeEmptyDirs(filepath.Dir(fullPath))
	return nil
}

func (s *Local) PublicURL(path string) string {
	return localURLPrefix + cleanPath(path)
}

func (s *Local) PathFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, localURLPrefix) {
		return "", false
	}
	path := strings.TrimPrefix(url, localURLPrefix)
	if path == "" || strings.Contains(path, "..") {
		return "", false
	}
	return path, true
}

// removeEmptyDirs sobe até basePath removendo diretórios vazios.
func (s *Local) removeEmptyDirs(dir string) {
	rel, err := filepath.Rel(s.basePath, dir)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return
	}
	if err := os.Remove(dir); err == nil {
		s.removeEmptyDirs(filepath.Dir(dir))
	}
}
