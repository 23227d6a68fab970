package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/petshop-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

type memCache struct {
	data    map[string][]byte
	deletes int
	fail    bool
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (m *memCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	if m.fail {
		return false, errors.New("down")
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (m *memCache) SetJSON(_ context.Context, key string, v any, _ time.Duration) error {
	if m.fail {
		return errors.New("down")
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memCache) Delete(_ context.Context, keys ...string) error {
	m.deletes++
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

type seed struct {
	store *memory.Store
	now   time.Time
}

func seedStore(t *testing.T) seed {
	t.Helper()
	ctx := context.Background()

	store := memory.NewStore()
	clients := memory.NewClientRepo(store)
	pets := memory.NewPetRepo(store)
	services := memory.NewServiceRepo(store)
	aps := memory.NewAppointmentRepo(store)

	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

	c := &models.Client{Name: "Ana", Email: "ana@x.com", Phone: "1"}
	_ = clients.Create(ctx, c)
	p := &models.Pet{Name: "Rex", Species: "Cão", Breed: "SRD", Weight: 5, ClientID: c.ID}
	_ = pets.Create(ctx, p)

	banho := &models.Service{Name: "Banho", Description: "b", Price: 50}
	tosa := &models.Service{Name: "Tosa", Description: "t", Price: 30.5}
	_ = services.Create(ctx, banho)
	_ = services.Create(ctx, tosa)

	today := &models.Appointment{Date: time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC), Status: "AGENDADO", PetID: p.ID}
	todayLate := &models.Appointment{Date: time.Date(2024, 5, 10, 23, 0, 0, 0, time.UTC), Status: "AGENDADO", PetID: p.ID}
	tomorrow := &models.Appointment{Date: time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), Status: "AGENDADO", PetID: p.ID}
	yesterday := &models.Appointment{Date: time.Date(2024, 5, 9, 10, 0, 0, 0, time.UTC), Status: "CONCLUIDO", PetID: p.ID}
	for _, ap := range []*models.Appointment{today, todayLate, tomorrow, yesterday} {
		_ = aps.Create(ctx, ap)
	}

	_ = aps.AddService(ctx, today.ID, banho.ID)
	_ = aps.AddService(ctx, today.ID, tosa.ID)
	_ = aps.AddService(ctx, todayLate.ID, banho.ID)
	_ = aps.AddService(ctx, tomorrow.ID, banho.ID)
	_ = aps.AddService(ctx, yesterday.ID, tosa.ID)

	return seed{store: store, now: now}
}

func TestGetSummary(t *testing.T) {
	s := seedStore(t)
	svc := NewService(memory.NewDashboardRepo(s.store), nil, 0, time.UTC)
	svc.now = func() time.Time { return s.now }

	got, err := svc.GetSummary(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// 50 + 30.5 + 50 (hoje); amanhã 00:00 fica fora da janela
	if got.TodayRevenue != 130.5 {
		t.Fatalf("expected revenue 130.5, got %v", got.TodayRevenue)
	}
	if got.TotalClients != 1 || got.TotalPets != 1 || got.TotalAppointments != 4 {
		t.Fatalf("unexpected counts: %+v", got)
	}
	if len(got.Latest) != 4 || !got.Latest[0].Date.Equal(time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected latest list: %+v", got.Latest)
	}
	if !got.Upcoming[0].Date.Equal(time.Date(2024, 5, 9, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected upcoming list: %+v", got.Upcoming)
	}
	if got.Latest[0].PetName != "Rex" || got.Latest[0].ClientName != "Ana" {
		t.Fatalf("expected pet and client names, got %+v", got.Latest[0])
	}
}

func TestGetSummary_UsesBusinessDay(t *testing.T) {
	s := seedStore(t)
	loc := time.FixedZone("BRT", -3*3600)
	svc := NewService(memory.NewDashboardRepo(s.store), nil, 0, loc)
	svc.now = func() time.Time { return s.now }

	got, err := svc.GetSummary(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// janela local: 10/05 03:00Z até 11/05 03:00Z
	if got.TodayRevenue != 180.5 {
		t.Fatalf("expected revenue 180.5, got %v", got.TodayRevenue)
	}
}

func TestGetSummary_CacheAndInvalidate(t *testing.T) {
	s := seedStore(t)
	c := newMemCache()
	svc := NewService(memory.NewDashboardRepo(s.store), c, time.Minute, time.UTC)
	svc.now = func() time.Time { return s.now }
	ctx := context.Background()

	if _, err := svc.GetSummary(ctx); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.data["dashboard:summary:2024-05-10"]; !ok {
		t.Fatalf("expected summary cached, keys: %v", c.data)
	}

	// linha nova não aparece até invalidar
	_ = memory.NewClientRepo(s.store).Create(ctx, &models.Client{Name: "Bia", Email: "bia@x.com", Phone: "2"})

	got, _ := svc.GetSummary(ctx)
	if got.TotalClients != 1 {
		t.Fatalf("expected cached count 1, got %d", got.TotalClients)
	}

	svc.Invalidate(ctx)
	got, _ = svc.GetSummary(ctx)
	if got.TotalClients != 2 {
		t.Fatalf("expected fresh count 2, got %d", got.TotalClients)
	}
}

func TestGetSummary_CacheFailureIsIgnored(t *testing.T) {
	s := seedStore(t)
	c := newMemCache()
	c.fail = true
	svc := NewService(memory.NewDashboardRepo(s.store), c, time.Minute, time.UTC)
	svc.now = func() time.Time { return s.now }

	if _, err := svc.GetSummary(context.Background()); err != nil {
		t.Fatalf("cache failure should not fail summary: %v", err)
	}
}
