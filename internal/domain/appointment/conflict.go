package appointment

import (
	"time"

	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

// SameSlot compara ano, mês, dia e hora no calendário local; minutos e
// segundos não entram.
func SameSlot(a, b time.Time, loc *time.Location) bool {
	la, lb := a.In(loc), b.In(loc)
	return la.Year() == lb.Year() &&
		la.Month() == lb.Month() &&
		la.Day() == lb.Day() &&
		la.Hour() == lb.Hour()
}

// HasConflict faz a varredura linear sobre todos os agendamentos.
// excludeID = 0 não exclui nenhum.
func HasConflict(
	existing []models.Appointment,
	candidate time.Time,
	excludeID uint,
	loc *time.Location,
) bool {
	for _, ap := range existing {
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		if SameSlot(ap.Date, candidate, loc) {
			return true
		}
	}
	return false
}
