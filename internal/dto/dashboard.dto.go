package dto

import "time"

type AppointmentListDTO struct {
	ID         uint      `json:"id"`
	Date       time.Time `json:"data"`
	PetName    string    `json:"petName"`
	ClientName string    `json:"clientName"`
}

type DashboardSummaryDTO struct {
	TodayRevenue      float64              `json:"totalDinheiroHoje"`
	TotalClients      int64                `json:"totalNovosClientes"`
	TotalAppointments int64                `json:"totalAgendamentos"`
	TotalPets         int64                `json:"totalPets"`
	Latest            []AppointmentListDTO `json:"ultimosAgendamentos"`
	Upcoming          []AppointmentListDTO `json:"proximosAgendamentos"`
}
