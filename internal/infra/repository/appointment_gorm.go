package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/petshop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// linha da junção + colunas do serviço
type appointmentServiceRow struct {
	AppointmentID uint
	models.Service
}

// --------------------------------------------------
// Leitura
// --------------------------------------------------

func (r *AppointmentGormRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		Order("date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	if err := r.attachServices(ctx, aps); err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) FindByPetID(ctx context.Context, petID uint) ([]models.Appointment, error) {
	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Order("date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) FindWithPet(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).Preload("Pet").First(&ap, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) FindWithServices(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, err := r.FindByID(ctx, id)
	if err != nil || ap == nil {
		return ap, err
	}

	list := []models.Appointment{*ap}
	if err := r.attachServices(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

// attachServices monta a lista "servicos" a partir de appointment_services
// com uma única consulta (join + agrupamento em memória).
func (r *AppointmentGormRepository) attachServices(ctx context.Context, aps []models.Appointment) error {
	if len(aps) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(aps))
	for _, ap := range aps {
		ids = append(ids, ap.ID)
	}

	var rows []appointmentServiceRow
	if err := r.db.WithContext(ctx).
		Table("appointment_services").
		Select("appointment_services.appointment_id, services.*").
		Joins("JOIN services ON services.id = appointment_services.service_id").
		Where("appointment_services.appointment_id IN ?", ids).
		Order("appointment_services.created_at ASC").
		Scan(&rows).Error; err != nil {
		return err
	}

	byAppointment := make(map[uint][]models.Service, len(aps))
	for _, row := range rows {
		byAppointment[row.AppointmentID] = append(byAppointment[row.AppointmentID], row.Service)
	}

	for i := range aps {
		if svcs, ok := byAppointment[aps[i].ID]; ok {
			aps[i].Services = svcs
		} else {
			aps[i].Services = []models.Service{}
		}
	}
	return nil
}

// --------------------------------------------------
// Escrita
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Omit("Pet").Create(ap).Error
}

func (r *AppointmentGormRepository) Update(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Omit("Pet").Save(ap).Error
}

func (r *AppointmentGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("appointment_id = ?", id).
			Delete(&models.AppointmentService{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Appointment{}, id).Error
	})
}

// --------------------------------------------------
// Serviços vinculados
// --------------------------------------------------

func (r *AppointmentGormRepository) HasService(ctx context.Context, appointmentID, serviceID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AppointmentService{}).
		Where("appointment_id = ? AND service_id = ?", appointmentID, serviceID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AppointmentGormRepository) AddService(ctx context.Context, appointmentID, serviceID uint) error {
	link := models.AppointmentService{
		AppointmentID: appointmentID,
		ServiceID:     serviceID,
	}

	err := r.db.WithContext(ctx).
		Omit("Appointment", "Service").
		Create(&link).Error
	if isUniqueViolation(err) {
		return domain.ErrServiceAlreadyLinked
	}
	return err
}

func (r *AppointmentGormRepository) RemoveService(ctx context.Context, appointmentID, serviceID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("appointment_id = ? AND service_id = ?", appointmentID, serviceID).
		Delete(&models.AppointmentService{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
