package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/petshop-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) FindAll(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) FindByID(ctx context.Context, id uint) (*models.Client, error) {
	return r.first(ctx, r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *ClientGormRepository) FindByEmail(ctx context.Context, email string) (*models.Client, error) {
	return r.first(ctx, r.db.WithContext(ctx).Where("email = ?", email))
}

func (r *ClientGormRepository) FindWithPets(ctx context.Context, id uint) (*models.Client, error) {
	return r.first(ctx, r.db.WithContext(ctx).
		Preload("Pets", func(db *gorm.DB) *gorm.DB {
			return db.Order("pets.name ASC")
		}).
		Where("id = ?", id))
}

func (r *ClientGormRepository) first(_ context.Context, q *gorm.DB) (*models.Client, error) {
	var c models.Client
	if err := q.First(&c).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *ClientGormRepository) Create(ctx context.Context, c *models.Client) error {
	err := r.db.WithContext(ctx).Omit("Pets").Create(c).Error
	if isUniqueViolation(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *ClientGormRepository) Update(ctx context.Context, c *models.Client) error {
	err := r.db.WithContext(ctx).Omit("Pets").Save(c).Error
	if isUniqueViolation(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *ClientGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Client{}, id).Error
}

func (r *ClientGormRepository) CountPets(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Pet{}).
		Where("client_id = ?", id).
		Count(&count).Error
	return count, err
}

var _ domain.Repository = (*ClientGormRepository)(nil)
