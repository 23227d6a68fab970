package timezone

import (
	"sync"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

var (
	mu      sync.RWMutex
	current = DefaultTimezone
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// SetDefault define o fuso do estabelecimento (APP_TIMEZONE). Valores
// inválidos são ignorados.
func SetDefault(tz string) {
	if !IsValid(tz) {
		return
	}
	mu.Lock()
	current = tz
	mu.Unlock()
}

func Current() string {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

func Local() *time.Location {
	return Location(Current())
}

// DayWindow devolve [00:00 do dia de t, 00:00 do dia seguinte) em loc.
func DayWindow(t time.Time, loc *time.Location) (time.Time, time.Time) {
	lt := t.In(loc)
	start := time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
