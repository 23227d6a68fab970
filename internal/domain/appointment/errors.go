package appointment

import "github.com/BruksfildServices01/petshop-scheduler/internal/httperr"

var (
	ErrAppointmentNotFound = httperr.NotFoundErr("appointment_not_found", "Agendamento não encontrado")

	// Pet informado no corpo do agendamento (400).
	ErrPetNotFound = httperr.Validation("pet_not_found", "Pet não encontrado")
	// Pet informado na rota (404).
	ErrPetLookupNotFound = httperr.NotFoundErr("pet_not_found", "Pet não encontrado")

	ErrServiceNotFound = httperr.NotFoundErr("service_not_found", "Serviço não encontrado")

	ErrMissingFields = httperr.Validation("missing_fields", "Data e status são campos obrigatórios")
	ErrInvalidDate   = httperr.Validation("invalid_date", "Data inválida")
	ErrInvalidStatus = httperr.Validation("invalid_status", "Status inválido. Valores válidos: AGENDADO, CONCLUIDO, CANCELADO")

	ErrSchedulingConflict = httperr.Conflict("scheduling_conflict", "Já existe um agendamento nesta data e horário")

	ErrServiceAlreadyLinked = httperr.Conflict("service_already_linked", "Serviço já vinculado a este agendamento")
	ErrServiceNotLinked     = httperr.NotFoundErr("service_not_linked", "Serviço não vinculado a este agendamento")
)
