package dashboard

import (
	"context"
	"log/slog"
	"time"

	domain "github.com/BruksfildServices01/petshop-scheduler/internal/domain/dashboard"
	"github.com/BruksfildServices01/petshop-scheduler/internal/dto"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
	"github.com/BruksfildServices01/petshop-scheduler/internal/timezone"
)

const listLimit = 5

// Cache é satisfeito por *cache.Client.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type Service struct {
	repo  domain.Repository
	cache Cache
	ttl   time.Duration
	loc   *time.Location
	now   func() time.Time
}

// NewService aceita cache nil (sem REDIS_URL).
func NewService(repo domain.Repository, c Cache, ttl time.Duration, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:  repo,
		cache: c,
		ttl:   ttl,
		loc:   loc,
		now:   time.Now,
	}
}

func (s *Service) key(day time.Time) string {
	return "dashboard:summary:" + day.In(s.loc).Format("2006-01-02")
}

func (s *Service) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := s.now()
	key := s.key(now)

	if s.cache != nil {
		var cached dto.DashboardSummaryDTO
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			slog.Warn("dashboard cache read failed", "key", key, "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	summary, err := s.compute(ctx, now)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && s.ttl > 0 {
		if err := s.cache.SetJSON(ctx, key, summary, s.ttl); err != nil {
			slog.Warn("dashboard cache write failed", "key", key, "error", err)
		}
	}

	return summary, nil
}

func (s *Service) compute(ctx context.Context, now time.Time) (*dto.DashboardSummaryDTO, error) {
	start, end := timezone.DayWindow(now, s.loc)

	revenue, err := s.repo.RevenueBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	clients, err := s.repo.CountClients(ctx)
	if err != nil {
		return nil, err
	}

	appointments, err := s.repo.CountAppointments(ctx)
	if err != nil {
		return nil, err
	}

	pets, err := s.repo.CountPets(ctx)
	if err != nil {
		return nil, err
	}

	latest, err := s.repo.ListByDate(ctx, domain.OrderDesc, listLimit)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.repo.ListByDate(ctx, domain.OrderAsc, listLimit)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardSummaryDTO{
		TodayRevenue:      revenue,
		TotalClients:      clients,
		TotalAppointments: appointments,
		TotalPets:         pets,
		Latest:            toList(latest),
		Upcoming:          toList(upcoming),
	}, nil
}

// Invalidate descarta o resumo de hoje. Falha de cache só é logada.
func (s *Service) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	key := s.key(s.now())
	if err := s.cache.Delete(ctx, key); err != nil {
		slog.Warn("dashboard cache invalidate failed", "key", key, "error", err)
	}
}

func toList(aps []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		item := dto.AppointmentListDTO{ID: ap.ID, Date: ap.Date}
		if ap.Pet != nil {
			item.PetName = ap.Pet.Name
			if ap.Pet.Client != nil {
				item.ClientName = ap.Pet.Client.Name
			}
		}
		out = append(out, item)
	}
	return out
}
