package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/allotjaments/viatgers-api/internal/domain"
	"github.com/allotjaments/viatgers-api/internal/repository"
)

var (
	ErrFormulariJaGenerat = repository.ErrFormulariJaGenerat
	ErrFormulariNotFound  = repository.ErrFormulariNotFound
	ErrReservaNotFound    = repository.ErrReservaNotFound
	ErrPlacaJaOmplerta    = repository.ErrPlacaJaOmplerta

	ErrTotsElsViatgersRegistrats = errors.New("tots els viatgers ja estan registrats")
)

type FormulariRepository interface {
	CreateWithPlaceholders(ctx context.Context, formulari domain.FormulariReserva, places int) (domain.FormulariReserva, []domain.Viatger, error)
	FindByToken(ctx context.Context, token string) (domain.FormulariReserva, error)
	FindByReservaID(ctx context.Context, reservaID uint) (domain.FormulariReserva, error)
	DeleteByReservaID(ctx context.Context, reservaID uint) error
}

type FormulariViatgerRepository interface {
	FindByReservaID(ctx context.Context, reservaID uint) ([]domain.Viatger, error)
	FirstPendentByReservaID(ctx context.Context, reservaID uint) (domain.Viatger, error)
	FillSlot(ctx context.Context, id, reservaID uint, viatger domain.Viatger) (domain.Viatger, error)
	CountPendentsByReservaID(ctx context.Context, reservaID uint) (int, error)
}

type FormulariReservaRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Reserva, error)
}

// FormulariService owns the registration-link lifecycle and the public form
// engine behind it.
type FormulariService struct {
	repo          FormulariRepository
	viatgerRepo   FormulariViatgerRepository
	reservaRepo   FormulariReservaRepository
	publicBaseURL string
}

func NewFormulariService(repo FormulariRepository, viatgerRepo FormulariViatgerRepository, reservaRepo FormulariReservaRepository, publicBaseURL string) *FormulariService {
	return &FormulariService{
		repo:          repo,
		viatgerRepo:   viatgerRepo,
		reservaRepo:   reservaRepo,
		publicBaseURL: publicBaseURL,
	}
}

// GenerateForReserva mints the registration link for a reservation and
// creates one pendent placeholder slot per guest.
func (s *FormulariService) GenerateForReserva(ctx context.Context, reservaID uint) (domain.EnllacFormulari, error) {
	reserva, err := s.reservaRepo.FindByID(ctx, reservaID)
	if err != nil {
		if errors.Is(err, repository.ErrReservaNotFound) {
			return domain.EnllacFormulari{}, ErrReservaNotFound
		}

		return domain.EnllacFormulari{}, fmt.Errorf("s.reservaRepo.FindByID -> %w", err)
	}

	formulari := domain.FormulariReserva{
		ReservaID: reservaID,
		Token:     uuid.NewString(),
	}

	created, viatgers, err := s.repo.CreateWithPlaceholders(ctx, formulari, reserva.NombreHostes)
	if err != nil {
		if errors.Is(err, repository.ErrFormulariJaGenerat) {
			return domain.EnllacFormulari{}, ErrFormulariJaGenerat
		}

		return domain.EnllacFormulari{}, fmt.Errorf("s.repo.CreateWithPlaceholders -> %w", err)
	}

	return domain.EnllacFormulari{
		Formulari: created,
		Viatgers:  viatgers,
		Enllac:    created.PublicURL(s.publicBaseURL),
	}, nil
}

func (s *FormulariService) GetByReserva(ctx context.Context, reservaID uint) (domain.EnllacFormulari, error) {
	formulari, err := s.repo.FindByReservaID(ctx, reservaID)
	if err != nil {
		if errors.Is(err, repository.ErrFormulariNotFound) {
			return domain.EnllacFormulari{}, ErrFormulariNotFound
		}

		return domain.EnllacFormulari{}, fmt.Errorf("s.repo.FindByReservaID -> %w", err)
	}

	viatgers, err := s.viatgerRepo.FindByReservaID(ctx, reservaID)
	if err != nil {
		return domain.EnllacFormulari{}, fmt.Errorf("s.viatgerRepo.FindByReservaID -> %w", err)
	}

	return domain.EnllacFormulari{
		Formulari: formulari,
		Viatgers:  viatgers,
		Enllac:    formulari.PublicURL(s.publicBaseURL),
	}, nil
}

// DeleteForReserva removes the link and all its travellers.
func (s *FormulariService) DeleteForReserva(ctx context.Context, reservaID uint) error {
	if err := s.repo.DeleteByReservaID(ctx, reservaID); err != nil {
		if errors.Is(err, repository.ErrFormulariNotFound) {
			return ErrFormulariNotFound
		}

		return fmt.Errorf("s.repo.DeleteByReservaID -> %w", err)
	}

	return nil
}

// FitxaPublica resolves the public form view for a token. Repeated calls
// before any submission return the same pending count.
func (s *FormulariService) FitxaPublica(ctx context.Context, token string) (domain.FitxaFormulari, error) {
	formulari, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrFormulariNotFound) {
			return domain.FitxaFormulari{}, ErrFormulariNotFound
		}

		return domain.FitxaFormulari{}, fmt.Errorf("s.repo.FindByToken -> %w", err)
	}

	reserva, err := s.reservaRepo.FindByID(ctx, formulari.ReservaID)
	if err != nil {
		return domain.FitxaFormulari{}, fmt.Errorf("s.reservaRepo.FindByID -> %w", err)
	}

	viatgers, err := s.viatgerRepo.FindByReservaID(ctx, formulari.ReservaID)
	if err != nil {
		return domain.FitxaFormulari{}, fmt.Errorf("s.viatgerRepo.FindByReservaID -> %w", err)
	}

	pendents := 0
	for _, v := range viatgers {
		if v.Estat == domain.EstatPendent {
			pendents++
		}
	}

	return domain.FitxaFormulari{
		Formulari: formulari,
		Reserva:   reserva,
		Viatgers:  viatgers,
		Pendents:  pendents,
	}, nil
}

// RegistraViatger stores one public submission. When viatgerID is zero the
// server picks the first pendent slot itself; either way the slot is claimed
// atomically, so a stale client targeting an already-filled slot gets
// ErrPlacaJaOmplerta instead of overwriting another traveller's data.
func (s *FormulariService) RegistraViatger(ctx context.Context, token string, viatgerID uint, dades domain.Viatger) (domain.Viatger, int, error) {
	formulari, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrFormulariNotFound) {
			return domain.Viatger{}, 0, ErrFormulariNotFound
		}

		return domain.Viatger{}, 0, fmt.Errorf("s.repo.FindByToken -> %w", err)
	}

	if viatgerID == 0 {
		pendent, err := s.viatgerRepo.FirstPendentByReservaID(ctx, formulari.ReservaID)
		if err != nil {
			if errors.Is(err, repository.ErrViatgerNotFound) {
				return domain.Viatger{}, 0, ErrTotsElsViatgersRegistrats
			}

			return domain.Viatger{}, 0, fmt.Errorf("s.viatgerRepo.FirstPendentByReservaID -> %w", err)
		}
		viatgerID = pendent.ID
	}

	filled, err := s.viatgerRepo.FillSlot(ctx, viatgerID, formulari.ReservaID, dades)
	if err != nil {
		if errors.Is(err, repository.ErrPlacaJaOmplerta) {
			return domain.Viatger{}, 0, ErrPlacaJaOmplerta
		}

		return domain.Viatger{}, 0, fmt.Errorf("s.viatgerRepo.FillSlot -> %w", err)
	}

	pendents, err := s.viatgerRepo.CountPendentsByReservaID(ctx, formulari.ReservaID)
	if err != nil {
		return domain.Viatger{}, 0, fmt.Errorf("s.viatgerRepo.CountPendentsByReservaID -> %w", err)
	}

	return filled, pendents, nil
}
