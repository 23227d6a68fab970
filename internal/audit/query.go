package audit

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

const (
	defaultLimit = 50
	maxLimit     = 200

	// acima disso (Page-1)*Limit estoura int
	maxPage = math.MaxInt / maxLimit
)

type Filter struct {
	Action string
	Entity string
	From   *time.Time
	// To inclui o dia inteiro: created_at < To + 1 dia.
	To    *time.Time
	Page  int
	Limit int
}

type Lister interface {
	List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error)
}

// ParseFilter lê os parâmetros da query string; valores inválidos são
// ignorados.
func ParseFilter(action, entity, from, to, page, limit string) Filter {
	f := Filter{Action: action, Entity: entity}

	if t, err := time.Parse("2006-01-02", from); err == nil {
		f.From = &t
	}
	if t, err := time.Parse("2006-01-02", to); err == nil {
		f.To = &t
	}

	f.Page, _ = strconv.Atoi(page)
	f.Limit, _ = strconv.Atoi(limit)
	return f.Normalized()
}

// Normalized aplica page >= 1 e limit entre 1 e 200 (padrão 50).
func (f Filter) Normalized() Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Page > maxPage {
		f.Page = maxPage
	}
	if f.Limit <= 0 || f.Limit > maxLimit {
		f.Limit = defaultLimit
	}
	return f
}

func (f Filter) Offset() int {
	n := f.Normalized()
	return (n.Page - 1) * n.Limit
}

// Match aplica o filtro em memória.
func (f Filter) Match(row models.AuditLog) bool {
	if f.Action != "" && row.Action != f.Action {
		return false
	}
	if f.Entity != "" && row.Entity != f.Entity {
		return false
	}
	if f.From != nil && row.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && !row.CreatedAt.Before(f.until()) {
		return false
	}
	return true
}

// until é o limite exclusivo do filtro To.
func (f Filter) until() time.Time {
	return f.To.AddDate(0, 0, 1)
}
