package appointment

import "strings"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "AGENDADO"
	StatusDone      Status = "CONCLUIDO"
	StatusCancelled Status = "CANCELADO"
)

var aliases = map[string]Status{
	"AGENDADO":  StatusScheduled,
	"CONCLUIDO": StatusDone,
	"CANCELADO": StatusCancelled,
	"SCHEDULED": StatusScheduled,
	"DONE":      StatusDone,
	"CANCELLED": StatusCancelled,
}

// NormalizeStatus aceita qualquer caixa e os nomes em inglês. Não há grafo
// de transição: qualquer status válido pode ser gravado a qualquer momento.
func NormalizeStatus(raw string) (Status, error) {
	st, ok := aliases[strings.ToUpper(strings.TrimSpace(raw))]
	if !ok {
		return "", ErrInvalidStatus
	}
	return st, nil
}
