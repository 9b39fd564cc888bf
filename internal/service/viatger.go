package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/allotjaments/viatgers-api/internal/domain"
	"github.com/allotjaments/viatgers-api/internal/repository"
)

var ErrViatgerNotFound = repository.ErrViatgerNotFound

type ViatgerRepository interface {
	Create(ctx context.Context, viatger domain.Viatger) (domain.Viatger, error)
	FindByID(ctx context.Context, id uint) (domain.Viatger, error)
	List(ctx context.Context, filtre domain.FiltreViatgers) ([]domain.Viatger, error)
	Update(ctx context.Context, viatger domain.Viatger) (domain.Viatger, error)
	Delete(ctx context.Context, id uint) error
	Estadistiques(ctx context.Context, reservaID uint) (domain.EstadistiquesViatgers, error)
}

type ViatgerReservaRepository interface {
	UpdateNombreHostes(ctx context.Context, id uint, nombreHostes int) error
}

type ViatgerService struct {
	repo        ViatgerRepository
	reservaRepo ViatgerReservaRepository
}

func NewViatgerService(repo ViatgerRepository, reservaRepo ViatgerReservaRepository) *ViatgerService {
	return &ViatgerService{
		repo:        repo,
		reservaRepo: reservaRepo,
	}
}

func (s *ViatgerService) List(ctx context.Context, filtre domain.FiltreViatgers) ([]domain.Viatger, error) {
	viatgers, err := s.repo.List(ctx, filtre)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return viatgers, nil
}

func (s *ViatgerService) GetViatger(ctx context.Context, id uint) (domain.Viatger, error) {
	viatger, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Viatger{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return viatger, nil
}

func (s *ViatgerService) Create(ctx context.Context, viatger domain.Viatger) (domain.Viatger, error) {
	if viatger.Estat == "" {
		if viatger.DadesCompletes() {
			viatger.Estat = domain.EstatOmplert
		} else {
			viatger.Estat = domain.EstatPendent
		}
	}

	created, err := s.repo.Create(ctx, viatger)
	if err != nil {
		return domain.Viatger{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Update saves the traveller and, when the declared traveller count changed,
// syncs the reservation's guest count as a second phase. A cascade failure is
// reported in the result but never rolls back the traveller save.
func (s *ViatgerService) Update(ctx context.Context, id uint, viatger domain.Viatger) (domain.ActualitzacioViatger, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrViatgerNotFound) {
			return domain.ActualitzacioViatger{}, ErrViatgerNotFound
		}

		return domain.ActualitzacioViatger{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	viatger.ID = id
	viatger.ReservaID = existing.ReservaID
	if viatger.Estat == "" {
		viatger.Estat = existing.Estat
	}

	updated, err := s.repo.Update(ctx, viatger)
	if err != nil {
		return domain.ActualitzacioViatger{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	result := domain.ActualitzacioViatger{
		Viatger: updated,
		Cascada: domain.CascadaOmessa,
	}

	if viatger.NumeroViatgers > 0 && viatger.NumeroViatgers != existing.NumeroViatgers {
		if err := s.reservaRepo.UpdateNombreHostes(ctx, existing.ReservaID, viatger.NumeroViatgers); err != nil {
			zap.L().Warn("guest-count sync failed after traveller update",
				zap.Uint("viatger_id", id),
				zap.Uint("reserva_id", existing.ReservaID),
				zap.Error(err),
			)
			result.Cascada = domain.CascadaError
			result.CascadaError = err.Error()
		} else {
			result.Cascada = domain.CascadaOK
		}
	}

	return result, nil
}

func (s *ViatgerService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrViatgerNotFound) {
			return ErrViatgerNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *ViatgerService) Estadistiques(ctx context.Context, reservaID uint) (domain.EstadistiquesViatgers, error) {
	stats, err := s.repo.Estadistiques(ctx, reservaID)
	if err != nil {
		return domain.EstadistiquesViatgers{}, fmt.Errorf("s.repo.Estadistiques -> %w", err)
	}

	return stats, nil
}
