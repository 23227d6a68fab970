package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BruksfildServices01/petshop-scheduler/internal/config"
)

func TestLocal_UploadAndDelete(t *testing.T) {
	base := t.TempDir()
	drv := NewLocal(base)
	ctx := context.Background()

	url, err := drv.Upload(ctx, strings.NewReader("img"), "pets/7/a.webp", "image/webp")
	if err != nil {
		t.Fatal(err)
	}
	if url != "/uploads/pets/7/a.webp" {
		t.Fatalf("unexpected url %q", url)
	}

	data, err := os.ReadFile(filepath.Join(base, "pets", "7", "a.webp"))
	if err != nil || string(data) != "img" {
		t.Fatalf("file not written: %v", err)
	}

	path, ok := drv.PathFromURL(url)
	if !ok || path != "pets/7/a.webp" {
		t.Fatalf("unexpected path %q %v", path, ok)
	}

	if err := drv.Delete(ctx, path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(base, "pets")); !os.IsNotExist(err) {
		t.Fatalf("expected empty dirs removed, got %v", err)
	}
}

func TestLocal_PathFromURLRejectsForeign(t *testing.T) {
	drv := NewLocal(t.TempDir())

	for _, url := range []string{"https://cdn.x.com/a.webp", "/uploads/../etc/passwd", "/uploads/"} {
		if _, ok := drv.PathFromURL(url); ok {
			t.Fatalf("expected %q rejected", url)
		}
	}
}

func TestNewDriver(t *testing.T) {
	if _, err := NewDriver(config.StorageConfig{Driver: "ftp"}); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
	if _, err := NewDriver(config.StorageConfig{Driver: "s3"}); err == nil {
		t.Fatalf("expected missing bucket error")
	}

	drv, err := NewDriver(config.StorageConfig{
		Driver:             "s3",
		AWSBucket:          "fotos",
		AWSRegion:          "sa-east-1",
		AWSAccessKeyID:     "k",
		AWSSecretAccessKey: "s",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := drv.PublicURL("pets/1/x.webp"); got != "https://fotos.s3.sa-east-1.amazonaws.com/pets/1/x.webp" {
		t.Fatalf("unexpected public url %q", got)
	}
	if p, ok := drv.PathFromURL("https://fotos.s3.sa-east-1.amazonaws.com/pets/1/x.webp"); !ok || p != "pets/1/x.webp" {
		t.Fatalf("unexpected path %q", p)
	}
}
