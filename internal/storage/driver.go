package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/BruksfildServices01/petshop-scheduler/internal/config"
)

// Driver grava objetos (fotos dos pets) e devolve a URL pública.
type Driver interface {
	Upload(ctx context.Context, r io.Reader, path, contentType string) (string, error)
	Delete(ctx context.Context, path string) error
	PublicURL(path string) string
	// PathFromURL faz o caminho inverso de PublicURL; false quando a URL
	// não pertence a este driver.
	PathFromURL(url string) (string, bool)
}

func NewDriver(cfg config.StorageConfig) (Driver, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", "local":
		return NewLocal(cfg.UploadsPath), nil
	case "s3":
		return NewS3(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}

func cleanPath(path string) string {
	return strings.TrimPrefix(path, "/")
}
