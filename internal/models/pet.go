package models

import "time"

type Pet struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string  `gorm:"size:100;not null" json:"nome"`
	Species  string  `gorm:"size:50;not null" json:"especie"`
	Breed    string  `gorm:"size:50;not null" json:"raca"`
	Age      int     `gorm:"not null" json:"idade"`
	Weight   float64 `gorm:"not null" json:"peso"`
	PhotoURL string  `gorm:"size:255" json:"fotoUrl,omitempty"`

	ClientID uint    `gorm:"index;not null" json:"clienteId"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"cliente,omitempty"`

	Appointments []Appointment `gorm:"foreignKey:PetID" json:"agendamentos,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
