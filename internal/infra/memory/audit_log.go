package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/petshop-scheduler/internal/audit"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

// AuditLog substitui a tabela audit_logs no modo memória.
type AuditLog struct {
	mu   sync.RWMutex
	seq  uint
	rows []models.AuditLog
}

func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

func (a *AuditLog) Log(ctx context.Context, ev audit.Event) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	row := audit.NewRow(ev)
	a.seq++
	row.ID = a.seq
	row.CreatedAt = time.Now()
	a.rows = append(a.rows, row)
	return nil
}

func (a *AuditLog) List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	f = f.Normalized()

	matched := make([]models.AuditLog, 0)
	for _, row := range a.rows {
		if f.Match(row) {
			matched = append(matched, row)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	offset := f.Offset()
	if offset < 0 || offset >= len(matched) {
		return []models.AuditLog{}, total, nil
	}

	end := offset + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

var (
	_ audit.Sink   = (*AuditLog)(nil)
	_ audit.Lister = (*AuditLog)(nil)
)
