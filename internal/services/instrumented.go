package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mrlokans/pokedex/internal/entities"
)

// StorageRecorder receives one observation per storage call.
type StorageRecorder interface {
	RecordStorageOperation(operation, backend string, err error, duration time.Duration)
}

// InstrumentedService decorates a PokemonService with metrics and failure
// logging. Results pass through untouched.
type InstrumentedService struct {
	next     PokemonService
	backend  string
	recorder StorageRecorder
	log      logrus.FieldLogger
}

var _ PokemonService = (*InstrumentedService)(nil)

func NewInstrumentedService(next PokemonService, backend string, recorder StorageRecorder, log logrus.FieldLogger) *InstrumentedService {
	return &InstrumentedService{next: next, backend: backend, recorder: recorder, log: log}
}

// Unwrap returns the decorated service.
func (s *InstrumentedService) Unwrap() PokemonService {
	return s.next
}

func (s *InstrumentedService) observe(operation string, start time.Time, err error) {
	// ErrNotFound is an expected outcome, not a storage failure.
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	if s.recorder != nil {
		s.recorder.RecordStorageOperation(operation, s.backend, err, time.Since(start))
	}
	if err != nil && s.log != nil {
		s.log.WithFields(logrus.Fields{
			"operation": operation,
			"backend":   s.backend,
		}).WithError(err).Error("Storage operation failed")
	}
}

func (s *InstrumentedService) GetAll(ctx context.Context) ([]entities.Pokemon, error) {
	start := time.Now()
	out, err := s.next.GetAll(ctx)
	s.observe("get_all", start, err)
	return out, err
}

func (s *InstrumentedService) GetByID(ctx context.Context, id int) (*entities.Pokemon, error) {
	start := time.Now()
	out, err := s.next.GetByID(ctx, id)
	s.observe("get_by_id", start, err)
	return out, err
}

func (s *InstrumentedService) Add(ctx context.Context, pokemon entities.Pokemon) error {
	start := time.Now()
	err := s.next.Add(ctx, pokemon)
	s.observe("add", start, err)
	return err
}

func (s *InstrumentedService) Update(ctx context.Context, pokemon entities.Pokemon) error {
	start := time.Now()
	err := s.next.Update(ctx, pokemon)
	s.observe("update", start, err)
	return err
}

func (s *InstrumentedService) Delete(ctx context.Context, id int) error {
	start := time.Now()
	err := s.next.Delete(ctx, id)
	s.observe("delete", start, err)
	return err
}
