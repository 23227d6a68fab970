package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/petshop-scheduler/internal/domain/dashboard"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

type DashboardGormRepository struct {
	db *gorm.DB
}

func NewDashboardGormRepository(db *gorm.DB) *DashboardGormRepository {
	return &DashboardGormRepository{db: db}
}

func (r *DashboardGormRepository) RevenueBetween(ctx context.Context, start, end time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Table("appointment_services").
		Select("COALESCE(SUM(services.price), 0)").
		Joins("JOIN services ON services.id = appointment_services.service_id").
		Joins("JOIN appointments ON appointments.id = appointment_services.appointment_id").
		Where("appointments.date >= ? AND appointments.date < ?", start, end).
		Row().
		Scan(&total)
	return total, err
}

func (r *DashboardGormRepository) CountClients(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Client{})
}

func (r *DashboardGormRepository) CountAppointments(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Appointment{})
}

func (r *DashboardGormRepository) CountPets(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Pet{})
}

func (r *DashboardGormRepository) count(ctx context.Context, model any) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(model).Count(&n).Error
	return n, err
}

func (r *DashboardGormRepository) ListByDate(ctx context.Context, order dashboard.Order, limit int) ([]models.Appointment, error) {
	dir := "date DESC"
	if order == dashboard.OrderAsc {
		dir = "date ASC"
	}

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Pet.Client").
		Order(dir).
		Limit(limit).
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

var _ dashboard.Repository = (*DashboardGormRepository)(nil)
