// Package system reports process health.
package system

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/rd1855/portfolio_backend/internal/ledger"
)

const StatusOperational = "operational"

// Health is the body of GET /api/health.
type Health struct {
	Status    string       `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
	Uptime    float64      `json:"uptime"` // seconds
	Memory    Memory       `json:"memory"`
	Database  ledger.Stats `json:"database"`
}

// Memory is a subset of runtime.MemStats, in bytes.
type Memory struct {
	Sys        uint64 `json:"sys"`
	HeapAlloc  uint64 `json:"heapAlloc"`
	HeapSys    uint64 `json:"heapSys"`
	HeapInuse  uint64 `json:"heapInuse"`
	StackInuse uint64 `json:"stackInuse"`
	NumGC      uint32 `json:"numGC"`
	Goroutines int    `json:"goroutines"`
}

type Service interface {
	Health(ctx context.Context) (*Health, error)
	// Ready reports whether the ledger answers.
	Ready(ctx context.Context) bool
}

type systemService struct {
	ledger    ledger.Ledger
	startedAt time.Time
	now       func() time.Time
}

func New(l ledger.Ledger, startedAt time.Time) Service {
	return &systemService{ledger: l, startedAt: startedAt, now: time.Now}
}

func (s *systemService) Health(ctx context.Context) (*Health, error) {
	stats, err := s.ledger.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: ledger stats: %w", ErrInternal, err)
	}

	now := s.now()
	return &Health{
		Status:    StatusOperational,
		Timestamp: now.UTC(),
		Uptime:    now.Sub(s.startedAt).Seconds(),
		Memory:    readMemory(),
		Database:  *stats,
	}, nil
}

func (s *systemService) Ready(ctx context.Context) bool {
	_, err := s.ledger.Stats(ctx)
	return err == nil
}

func readMemory() Memory {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Memory{
		Sys:        m.Sys,
		HeapAlloc:  m.HeapAlloc,
		HeapSys:    m.HeapSys,
		HeapInuse:  m.HeapInuse,
		StackInuse: m.StackInuse,
		NumGC:      m.NumGC,
		Goroutines: runtime.NumGoroutine(),
	}
}
