package petphoto

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/petshop-scheduler/internal/imaging"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
	"github.com/BruksfildServices01/petshop-scheduler/internal/storage"
)

// Pets é implementado pelo serviço de pets.
type Pets interface {
	FindByID(ctx context.Context, id uint) (*models.Pet, error)
	UpdatePhoto(ctx context.Context, id uint, url string) (*models.Pet, string, error)
}

type Service struct {
	pets    Pets
	storage storage.Driver
	maxSide int
}

func NewService(pets Pets, drv storage.Driver) *Service {
	return &Service{
		pets:    pets,
		storage: drv,
		maxSide: imaging.DefaultMaxSide,
	}
}

func (s *Service) Upload(ctx context.Context, petID uint, r io.Reader) (*models.Pet, error) {

	// --------------------------------------------------
	// 1️⃣ Pet
	// --------------------------------------------------
	if _, err := s.pets.FindByID(ctx, petID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ WebP
	// --------------------------------------------------
	data, err := imaging.ToWebP(r, s.maxSide, imaging.DefaultQuality)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Storage
	// --------------------------------------------------
	path := fmt.Sprintf("pets/%d/%s.webp", petID, uuid.NewString())

	url, err := s.storage.Upload(ctx, bytes.NewReader(data), path, "image/webp")
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Pet.fotoUrl
	// --------------------------------------------------
	p, previous, err := s.pets.UpdatePhoto(ctx, petID, url)
	if err != nil {
		if derr := s.storage.Delete(ctx, path); derr != nil {
			slog.Warn("orphan pet photo", "path", path, "error", derr)
		}
		return nil, err
	}

	if previous != "" {
		if old, ok := s.storage.PathFromURL(previous); ok {
			if err := s.storage.Delete(ctx, old); err != nil {
				slog.Warn("failed to delete previous pet photo", "path", old, "error", err)
			}
		}
	}

	return p, nil
}
