// Package cache guarda o último resultado calculado de cada bloco do dashboard.
// Cada slot é um ponteiro atômico: leitores nunca bloqueiam e escritores substituem o slot inteiro.
package cache

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

type Slot string

const (
	SalesData     Slot = "sales_data"
	TeamData      Slot = "team_data"
	ClientData    Slot = "client_data"
	BarChartData  Slot = "bar_chart_data"
	LineChartData Slot = "line_chart_data"
	GeoChartData  Slot = "geo_chart_data"
	CardsData     Slot = "cards_data"
)

// Slots lista todos os slots na ordem em que são gravados por um ciclo de atualização.
// O gráfico de pizza não tem slot: ele depende do ano corrente no momento da leitura.
var Slots = []Slot{
	SalesData,
	ClientData,
	BarChartData,
	LineChartData,
	GeoChartData,
	CardsData,
	TeamData,
}

var (
	ErrSlotCold     = errors.New("cache slot not yet populated")
	ErrUnknownSlot  = errors.New("unknown cache slot")
	ErrTypeMismatch = errors.New("cache slot holds a different type")
)

type Entry struct {
	Value       any
	RefreshedAt time.Time
}

type Cache struct {
	// o mapa é montado em New e nunca mais alterado, só os ponteiros mudam
	slots map[Slot]*atomic.Pointer[Entry]
	now   func() time.Time
}

type Option func(*Cache)

// WithClock troca o relógio usado para carimbar as entradas
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

func New(opts ...Option) *Cache {
	c := &Cache{
		slots: make(map[Slot]*atomic.Pointer[Entry], len(Slots)),
		now:   time.Now,
	}

	for _, slot := range Slots {
		c.slots[slot] = &atomic.Pointer[Entry]{}
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Cache) Read(slot Slot) (Entry, error) {
	p, ok := c.slots[slot]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownSlot, slot)
	}

	entry := p.Load()
	if entry == nil {
		return Entry{}, fmt.Errorf("%w: %s", ErrSlotCold, slot)
	}

	return *entry, nil
}

func (c *Cache) Set(slot Slot, value any) error {
	p, ok := c.slots[slot]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSlot, slot)
	}

	p.Store(&Entry{Value: value, RefreshedAt: c.now()})
	return nil
}

// Warm indica se todos os slots já receberam ao menos um valor
func (c *Cache) Warm() bool {
	for _, p := range c.slots {
		if p.Load() == nil {
			return false
		}
	}
	return true
}

// RefreshedAt devolve o horário da última escrita de cada slot populado
func (c *Cache) RefreshedAt() map[Slot]time.Time {
	out := make(map[Slot]time.Time, len(c.slots))
	for slot, p := range c.slots {
		if entry := p.Load(); entry != nil {
			out[slot] = entry.RefreshedAt
		}
	}
	return out
}

// Get lê um slot já convertido para o tipo esperado
func Get[T any](c *Cache, slot Slot) (T, time.Time, error) {
	var zero T

	entry, err := c.Read(slot)
	if err != nil {
		return zero, time.Time{}, err
	}

	value, ok := entry.Value.(T)
	if !ok {
		return zero, time.Time{}, fmt.Errorf("%w: %s (%T)", ErrTypeMismatch, slot, entry.Value)
	}

	return value, entry.RefreshedAt, nil
}
