package models

import "time"

// Service é um serviço de banho/tosa oferecido pelo pet shop.
type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"nome"`
	Description string  `gorm:"size:255;not null" json:"descricao"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"preco"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
