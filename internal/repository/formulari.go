package repository

import (
	"context"
	"fmt"

	"github.com/allotjaments/viatgers-api/internal/domain"
	"github.com/allotjaments/viatgers-api/internal/repository/dao"
)

var (
	ErrFormulariJaGenerat = dao.ErrFormulariJaGenerat
	ErrFormulariNotFound  = dao.ErrFormulariNotFound
)

type FormulariDAO interface {
	InsertWithViatgers(ctx context.Context, formulari dao.FormulariReserva, places int) (dao.FormulariReserva, []dao.Viatger, error)
	FindByToken(ctx context.Context, token string) (dao.FormulariReserva, error)
	FindByReservaID(ctx context.Context, reservaID uint) (dao.FormulariReserva, error)
	DeleteByReservaID(ctx context.Context, reservaID uint) error
}

type FormulariRepository struct {
	dao FormulariDAO
}

func NewFormulariRepository(dao FormulariDAO) *FormulariRepository {
	return &FormulariRepository{
		dao: dao,
	}
}

func (r *FormulariRepository) CreateWithPlaceholders(ctx context.Context, formulari domain.FormulariReserva, places int) (domain.FormulariReserva, []domain.Viatger, error) {
	created, viatgers, err := r.dao.InsertWithViatgers(ctx, dao.FormulariReserva{
		ReservaID: formulari.ReservaID,
		Token:     formulari.Token,
	}, places)
	if err != nil {
		return domain.FormulariReserva{}, nil, fmt.Errorf("r.dao.InsertWithViatgers -> %w", err)
	}

	return r.daoToDomain(created), daoListToDomain(viatgers), nil
}

func (r *FormulariRepository) FindByToken(ctx context.Context, token string) (domain.FormulariReserva, error) {
	found, err := r.dao.FindByToken(ctx, token)
	if err != nil {
		return domain.FormulariReserva{}, fmt.Errorf("r.dao.FindByToken -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *FormulariRepository) FindByReservaID(ctx context.Context, reservaID uint) (domain.FormulariReserva, error) {
	found, err := r.dao.FindByReservaID(ctx, reservaID)
	if err != nil {
		return domain.FormulariReserva{}, fmt.Errorf("r.dao.FindByReservaID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *FormulariRepository) DeleteByReservaID(ctx context.Context, reservaID uint) error {
	if err := r.dao.DeleteByReservaID(ctx, reservaID); err != nil {
		return fmt.Errorf("r.dao.DeleteByReservaID -> %w", err)
	}

	return nil
}

func (r *FormulariRepository) daoToDomain(f dao.FormulariReserva) domain.FormulariReserva {
	return domain.FormulariReserva{
		ID:        f.ID,
		ReservaID: f.ReservaID,
		Token:     f.Token,
		CreatedAt: f.CreatedAt,
	}
}
