package models

import "time"

// Cliente do pet shop. Também é o usuário que faz login no painel.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"nome"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"size:20;not null" json:"telefone"`
	PasswordHash string `gorm:"column:password_hash;size:255;not null" json:"-"`
	Status       string `gorm:"size:20;default:'ATIVO'" json:"status"`
	Note         string `gorm:"type:text" json:"observacao"`

	Pets []Pet `gorm:"foreignKey:ClientID" json:"pets,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
