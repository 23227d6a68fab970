package handlers

import "github.com/BruksfildServices01/petshop-scheduler/internal/models"

// As projeções com relação sempre trazem a chave, mesmo vazia ("servicos": []).
// O campo de fora tem precedência sobre o do modelo embutido no JSON.

type appointmentWithServices struct {
	*models.Appointment
	Services []models.Service `json:"servicos"`
}

func withServices(ap *models.Appointment) appointmentWithServices {
	svcs := ap.Services
	if svcs == nil {
		svcs = []models.Service{}
	}
	return appointmentWithServices{Appointment: ap, Services: svcs}
}

func withServicesAll(aps []models.Appointment) []appointmentWithServices {
	out := make([]appointmentWithServices, 0, len(aps))
	for i := range aps {
		out = append(out, withServices(&aps[i]))
	}
	return out
}

type clientWithPets struct {
	*models.Client
	Pets []models.Pet `json:"pets"`
}

func withPets(c *models.Client) clientWithPets {
	pets := c.Pets
	if pets == nil {
		pets = []models.Pet{}
	}
	return clientWithPets{Client: c, Pets: pets}
}

type petWithAppointments struct {
	*models.Pet
	Appointments []models.Appointment `json:"agendamentos"`
}

func withAppointments(p *models.Pet) petWithAppointments {
	aps := p.Appointments
	if aps == nil {
		aps = []models.Appointment{}
	}
	return petWithAppointments{Pet: p, Appointments: aps}
}
