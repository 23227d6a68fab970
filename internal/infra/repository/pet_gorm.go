package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/petshop-scheduler/internal/domain/pet"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

type PetGormRepository struct {
	db *gorm.DB
}

func NewPetGormRepository(db *gorm.DB) *PetGormRepository {
	return &PetGormRepository{db: db}
}

func (r *PetGormRepository) FindAll(ctx context.Context) ([]models.Pet, error) {
	var pets []models.Pet
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Order("name ASC").
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *PetGormRepository) FindByID(ctx context.Context, id uint) (*models.Pet, error) {
	return r.first(r.db.WithContext(ctx), id)
}

func (r *PetGormRepository) FindByClientID(ctx context.Context, clientID uint) ([]models.Pet, error) {
	var pets []models.Pet
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("name ASC").
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *PetGormRepository) FindWithClient(ctx context.Context, id uint) (*models.Pet, error) {
	return r.first(r.db.WithContext(ctx).Preload("Client"), id)
}

func (r *PetGormRepository) FindWithAppointments(ctx context.Context, id uint) (*models.Pet, error) {
	return r.first(r.db.WithContext(ctx).
		Preload("Appointments", func(db *gorm.DB) *gorm.DB {
			return db.Order("appointments.date ASC")
		}), id)
}

func (r *PetGormRepository) first(q *gorm.DB, id uint) (*models.Pet, error) {
	var p models.Pet
	if err := q.First(&p, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PetGormRepository) Create(ctx context.Context, p *models.Pet) error {
	return r.db.WithContext(ctx).Omit("Client", "Appointments").Create(p).Error
}

func (r *PetGormRepository) Update(ctx context.Context, p *models.Pet) error {
	return r.db.WithContext(ctx).Omit("Client", "Appointments").Save(p).Error
}

func (r *PetGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Pet{}, id).Error
}

func (r *PetGormRepository) CountAppointments(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("pet_id = ?", id).
		Count(&count).Error
	return count, err
}

var _ domain.Repository = (*PetGormRepository)(nil)
