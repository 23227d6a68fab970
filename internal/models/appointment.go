package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date   time.Time `gorm:"column:date;index;not null" json:"data"`
	Status string    `gorm:"size:20;default:'AGENDADO'" json:"status"`
	Note   string    `gorm:"type:text;not null;default:''" json:"observacao"`

	PetID uint `gorm:"index;not null" json:"petId"`
	Pet   *Pet `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"pet,omitempty"`

	// Projeção de leitura montada a partir de appointment_services.
	Services []Service `gorm:"-" json:"servicos,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentService é a linha de junção agendamento <-> serviço.
type AppointmentService struct {
	AppointmentID uint `gorm:"primaryKey;autoIncrement:false" json:"agendamentoId"`
	ServiceID     uint `gorm:"primaryKey;autoIncrement:false" json:"servicoId"`

	Appointment Appointment `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Service     Service     `gorm:"constraint:OnDelete:RESTRICT;" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}
