package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/petshop-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceGormRepository) FindByID(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *ServiceGormRepository) FindByAppointmentID(ctx context.Context, appointmentID uint) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Joins("JOIN appointment_services ON appointment_services.service_id = services.id").
		Where("appointment_services.appointment_id = ?", appointmentID).
		Order("appointment_services.created_at ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceGormRepository) Create(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ServiceGormRepository) Update(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ServiceGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Service{}, id).Error
}

func (r *ServiceGormRepository) CountAppointmentLinks(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AppointmentService{}).
		Where("service_id = ?", id).
		Count(&count).Error
	return count, err
}

var _ catalog.Repository = (*ServiceGormRepository)(nil)
