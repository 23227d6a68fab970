package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

type linkKey struct {
	appointmentID uint
	serviceID     uint
}

// Store guarda todas as tabelas em memória (modo dev e testes). Os
// repositórios compartilham o mesmo Store, como compartilhariam o *gorm.DB.
type Store struct {
	mu sync.RWMutex

	// uma sequência por tabela, como no postgres
	seq map[string]uint

	clients      map[uint]models.Client
	pets         map[uint]models.Pet
	services     map[uint]models.Service
	appointments map[uint]models.Appointment
	links        map[linkKey]time.Time
}

func NewStore() *Store {
	return &Store{
		seq:          make(map[string]uint),
		clients:      make(map[uint]models.Client),
		pets:         make(map[uint]models.Pet),
		services:     make(map[uint]models.Service),
		appointments: make(map[uint]models.Appointment),
		links:        make(map[linkKey]time.Time),
	}
}

func (s *Store) nextID(table string) uint {
	s.seq[table]++
	return s.seq[table]
}

func sortedKeys[T any](m map[uint]T) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// servicesOf devolve os serviços vinculados na ordem de inserção.
// Chamar com o lock adquirido.
func (s *Store) servicesOf(appointmentID uint) []models.Service {
	type linked struct {
		svc models.Service
		at  time.Time
	}

	var found []linked
	for k, at := range s.links {
		if k.appointmentID != appointmentID {
			continue
		}
		if svc, ok := s.services[k.serviceID]; ok {
			found = append(found, linked{svc: svc, at: at})
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].at.Equal(found[j].at) {
			return found[i].svc.ID < found[j].svc.ID
		}
		return found[i].at.Before(found[j].at)
	})

	out := make([]models.Service, 0, len(found))
	for _, f := range found {
		out = append(out, f.svc)
	}
	return out
}

func (s *Store) petPtr(id uint, withClient bool) *models.Pet {
	p, ok := s.pets[id]
	if !ok {
		return nil
	}
	if withClient {
		if c, ok := s.clients[p.ClientID]; ok {
			p.Client = &c
		}
	}
	return &p
}

func sortByDate(aps []models.Appointment, desc bool) {
	sort.SliceStable(aps, func(i, j int) bool {
		if desc {
			return aps[i].Date.After(aps[j].Date)
		}
		return aps[i].Date.Before(aps[j].Date)
	})
}
