package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/allotjaments/viatgers-api/internal/domain"
	"github.com/allotjaments/viatgers-api/internal/repository"
)

type ReservaRepository interface {
	Create(ctx context.Context, reserva domain.Reserva) (domain.Reserva, error)
	FindByID(ctx context.Context, id uint) (domain.Reserva, error)
	Update(ctx context.Context, reserva domain.Reserva) (domain.Reserva, error)
}

type ReservaService struct {
	repo ReservaRepository
}

func NewReservaService(repo ReservaRepository) *ReservaService {
	return &ReservaService{
		repo: repo,
	}
}

func (s *ReservaService) Create(ctx context.Context, reserva domain.Reserva) (domain.Reserva, error) {
	created, err := s.repo.Create(ctx, reserva)
	if err != nil {
		return domain.Reserva{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ReservaService) GetReserva(ctx context.Context, id uint) (domain.Reserva, error) {
	reserva, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReservaNotFound) {
			return domain.Reserva{}, ErrReservaNotFound
		}

		return domain.Reserva{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return reserva, nil
}

func (s *ReservaService) Update(ctx context.Context, reserva domain.Reserva) (domain.Reserva, error) {
	updated, err := s.repo.Update(ctx, reserva)
	if err != nil {
		if errors.Is(err, repository.ErrReservaNotFound) {
			return domain.Reserva{}, ErrReservaNotFound
		}

		return domain.Reserva{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}
