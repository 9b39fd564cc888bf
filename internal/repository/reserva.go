package repository

import (
	"context"
	"fmt"

	"github.com/allotjaments/viatgers-api/internal/domain"
	"github.com/allotjaments/viatgers-api/internal/repository/dao"
)

var ErrReservaNotFound = dao.ErrReservaNotFound

type ReservaDAO interface {
	Insert(ctx context.Context, reserva dao.Reserva) (dao.Reserva, error)
	FindByID(ctx context.Context, id uint) (dao.Reserva, error)
	Update(ctx context.Context, reserva dao.Reserva) (dao.Reserva, error)
	UpdateNombreHostes(ctx context.Context, id uint, nombreHostes int) error
}

type ReservaRepository struct {
	dao ReservaDAO
}

func NewReservaRepository(dao ReservaDAO) *ReservaRepository {
	return &ReservaRepository{
		dao: dao,
	}
}

func (r *ReservaRepository) Create(ctx context.Context, reserva domain.Reserva) (domain.Reserva, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(reserva))
	if err != nil {
		return domain.Reserva{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ReservaRepository) FindByID(ctx context.Context, id uint) (domain.Reserva, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Reserva{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ReservaRepository) Update(ctx context.Context, reserva domain.Reserva) (domain.Reserva, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(reserva))
	if err != nil {
		return domain.Reserva{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ReservaRepository) UpdateNombreHostes(ctx context.Context, id uint, nombreHostes int) error {
	if err := r.dao.UpdateNombreHostes(ctx, id, nombreHostes); err != nil {
		return fmt.Errorf("r.dao.UpdateNombreHostes -> %w", err)
	}

	return nil
}

func (r *ReservaRepository) daoToDomain(reserva dao.Reserva) domain.Reserva {
	return domain.Reserva{
		ID:           reserva.ID,
		Client:       reserva.Client,
		Allotjament:  reserva.Allotjament,
		DataEntrada:  reserva.DataEntrada,
		DataSortida:  reserva.DataSortida,
		NombreHostes: reserva.NombreHostes,
		CreatedAt:    reserva.CreatedAt,
		UpdatedAt:    reserva.UpdatedAt,
	}
}

func (r *ReservaRepository) domainToDAO(reserva domain.Reserva) dao.Reserva {
	return dao.Reserva{
		ID:           reserva.ID,
		Client:       reserva.Client,
		Allotjament:  reserva.Allotjament,
		DataEntrada:  reserva.DataEntrada,
		DataSortida:  reserva.DataSortida,
		NombreHostes: reserva.NombreHostes,
	}
}
