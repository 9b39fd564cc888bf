package repository

import (
	"context"
	"fmt"

	"github.com/allotjaments/viatgers-api/internal/domain"
	"github.com/allotjaments/viatgers-api/internal/repository/dao"
)

var (
	ErrViatgerNotFound = dao.ErrViatgerNotFound
	ErrPlacaJaOmplerta = dao.ErrPlacaJaOmplerta
)

type ViatgerDAO interface {
	Insert(ctx context.Context, viatger dao.Viatger) (dao.Viatger, error)
	FindByID(ctx context.Context, id uint) (dao.Viatger, error)
	FindByReservaID(ctx context.Context, reservaID uint) ([]dao.Viatger, error)
	List(ctx context.Context, cerca, estat string, reservaID uint) ([]dao.Viatger, error)
	Update(ctx context.Context, viatger dao.Viatger) (dao.Viatger, error)
	Delete(ctx context.Context, id uint) error
	FirstPendentByReservaID(ctx context.Context, reservaID uint) (dao.Viatger, error)
	FillSlot(ctx context.Context, id, reservaID uint, viatger dao.Viatger) (dao.Viatger, error)
	MarkEnviats(ctx context.Context, ids []uint) error
	CountPendentsByReservaID(ctx context.Context, reservaID uint) (int64, error)
	Stats(ctx context.Context, reservaID uint) (total, pendents, omplerts, enviats, complets int64, err error)
}

type ViatgerRepository struct {
	dao ViatgerDAO
}

func NewViatgerRepository(dao ViatgerDAO) *ViatgerRepository {
	return &ViatgerRepository{
		dao: dao,
	}
}

func (r *ViatgerRepository) Create(ctx context.Context, viatger domain.Viatger) (domain.Viatger, error) {
	created, err := r.dao.Insert(ctx, domainToDAO(viatger))
	if err != nil {
		return domain.Viatger{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return daoToDomain(created), nil
}

func (r *ViatgerRepository) FindByID(ctx context.Context, id uint) (domain.Viatger, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Viatger{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return daoToDomain(found), nil
}

func (r *ViatgerRepository) FindByReservaID(ctx context.Context, reservaID uint) ([]domain.Viatger, error) {
	found, err := r.dao.FindByReservaID(ctx, reservaID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByReservaID -> %w", err)
	}

	return daoListToDomain(found), nil
}

func (r *ViatgerRepository) List(ctx context.Context, filtre domain.FiltreViatgers) ([]domain.Viatger, error) {
	found, err := r.dao.List(ctx, filtre.Cerca, string(filtre.Estat), filtre.ReservaID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	return daoListToDomain(found), nil
}

func (r *ViatgerRepository) Update(ctx context.Context, viatger domain.Viatger) (domain.Viatger, error) {
	updated, err := r.dao.Update(ctx, domainToDAO(viatger))
	if err != nil {
		return domain.Viatger{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return daoToDomain(updated), nil
}

func (r *ViatgerRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ViatgerRepository) FirstPendentByReservaID(ctx context.Context, reservaID uint) (domain.Viatger, error) {
	found, err := r.dao.FirstPendentByReservaID(ctx, reservaID)
	if err != nil {
		return domain.Viatger{}, fmt.Errorf("r.dao.FirstPendentByReservaID -> %w", err)
	}

	return daoToDomain(found), nil
}

func (r *ViatgerRepository) FillSlot(ctx context.Context, id, reservaID uint, viatger domain.Viatger) (domain.Viatger, error) {
	filled, err := r.dao.FillSlot(ctx, id, reservaID, domainToDAO(viatger))
	if err != nil {
		return domain.Viatger{}, fmt.Errorf("r.dao.FillSlot -> %w", err)
	}

	return daoToDomain(filled), nil
}

func (r *ViatgerRepository) MarkEnviats(ctx context.Context, ids []uint) error {
	if err := r.dao.MarkEnviats(ctx, ids); err != nil {
		return fmt.Errorf("r.dao.MarkEnviats -> %w", err)
	}

	return nil
}

func (r *ViatgerRepository) CountPendentsByReservaID(ctx context.Context, reservaID uint) (int, error) {
	count, err := r.dao.CountPendentsByReservaID(ctx, reservaID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountPendentsByReservaID -> %w", err)
	}

	return int(count), nil
}

func (r *ViatgerRepository) Estadistiques(ctx context.Context, reservaID uint) (domain.EstadistiquesViatgers, error) {
	total, pendents, omplerts, enviats, complets, err := r.dao.Stats(ctx, reservaID)
	if err != nil {
		return domain.EstadistiquesViatgers{}, fmt.Errorf("r.dao.Stats -> %w", err)
	}

	return domain.EstadistiquesViatgers{
		Total:    total,
		Pendents: pendents,
		Omplerts: omplerts,
		Enviats:  enviats,
		Complets: complets,
	}, nil
}

func daoToDomain(v dao.Viatger) domain.Viatger {
	return domain.Viatger{
		ID:        v.ID,
		ReservaID: v.ReservaID,
		Estat:     domain.EstatFormulari(v.Estat),

		Nom:           v.Nom,
		Cognoms:       v.Cognoms,
		DNIPassaport:  v.DNIPassaport,
		TipusDocument: v.TipusDocument,
		DataNaixement: v.DataNaixement,
		Nacionalitat:  v.Nacionalitat,
		Sexe:          v.Sexe,
		Telefon:       v.Telefon,
		Email:         v.Email,

		AdresaResidencia:     v.AdresaResidencia,
		CiutatResidencia:     v.CiutatResidencia,
		ProvinciaResidencia:  v.ProvinciaResidencia,
		CodiPostalResidencia: v.CodiPostalResidencia,
		PaisResidencia:       v.PaisResidencia,

		DadesMossos: domain.DadesMossos{
			SegonCognom:       v.SegonCognom,
			CaducitatDocument: v.CaducitatDocument,
			NumeroSuport:      v.NumeroSuport,
			CodiParentiu:      v.CodiParentiu,
			NumeroContracte:   v.NumeroContracte,
			DataContracte:     v.DataContracte,
			HoraEntrada:       v.HoraEntrada,
			HoraSortida:       v.HoraSortida,
			NumeroViatgers:    v.NumeroViatgers,
			NumeroHabitacions: v.NumeroHabitacions,
			FormaPagament:     v.FormaPagament,
			Internet:          v.Internet,
			AdresaPostal:      v.AdresaPostal,
			MunicipiPostal:    v.MunicipiPostal,
			CodiPostal:        v.CodiPostal,
			PaisPostal:        v.PaisPostal,
		},

		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func domainToDAO(v domain.Viatger) dao.Viatger {
	return dao.Viatger{
		ID:        v.ID,
		ReservaID: v.ReservaID,
		Estat:     string(v.Estat),

		Nom:           v.Nom,
		Cognoms:       v.Cognoms,
		DNIPassaport:  v.DNIPassaport,
		TipusDocument: v.TipusDocument,
		DataNaixement: v.DataNaixement,
		Nacionalitat:  v.Nacionalitat,
		Sexe:          v.Sexe,
		Telefon:       v.Telefon,
		Email:         v.Email,

		AdresaResidencia:     v.AdresaResidencia,
		CiutatResidencia:     v.CiutatResidencia,
		ProvinciaResidencia:  v.ProvinciaResidencia,
		CodiPostalResidencia: v.CodiPostalResidencia,
		PaisResidencia:       v.PaisResidencia,

		DadesMossos: dao.DadesMossos{
			SegonCognom:       v.SegonCognom,
			CaducitatDocument: v.CaducitatDocument,
			NumeroSuport:      v.NumeroSuport,
			CodiParentiu:      v.CodiParentiu,
			NumeroContracte:   v.NumeroContracte,
			DataContracte:     v.DataContracte,
			HoraEntrada:       v.HoraEntrada,
			HoraSortida:       v.HoraSortida,
			NumeroViatgers:    v.NumeroViatgers,
			NumeroHabitacions: v.NumeroHabitacions,
			FormaPagament:     v.FormaPagament,
			Internet:          v.Internet,
			AdresaPostal:      v.AdresaPostal,
			MunicipiPostal:    v.MunicipiPostal,
			CodiPostal:        v.CodiPostal,
			PaisPostal:        v.PaisPostal,
		},
	}
}

func daoListToDomain(viatgers []dao.Viatger) []domain.Viatger {
	result := make([]domain.Viatger, 0, len(viatgers))
	for _, v := range viatgers {
		result = append(result, daoToDomain(v))
	}

	return result
}
