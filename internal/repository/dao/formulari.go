package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrFormulariJaGenerat = errors.New("la reserva ja té un formulari generat")
	ErrFormulariNotFound  = errors.New("formulari not found")
)

type FormulariReserva struct {
	ID uint `gorm:"primaryKey"`

	ReservaID uint   `gorm:"uniqueIndex;not null"`
	Token     string `gorm:"uniqueIndex;not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type FormulariDAO struct {
	db *gorm.DB
}

func NewFormulariDAO(db *gorm.DB) *FormulariDAO {
	return &FormulariDAO{
		db: db,
	}
}

// InsertWithViatgers creates the registration link and its placeholder slots
// in a single transaction, so a reservation can never end up with a link but
// no slots or vice versa.
func (d *FormulariDAO) InsertWithViatgers(ctx context.Context, formulari FormulariReserva, places int) (FormulariReserva, []Viatger, error) {
	var viatgers []Viatger

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing FormulariReserva
		result := tx.Where("reserva_id = ?", formulari.ReservaID).First(&existing)
		if result.Error == nil {
			return ErrFormulariJaGenerat
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		if result := tx.Create(&formulari); result.Error != nil {
			return result.Error
		}

		for i := 0; i < places; i++ {
			viatger := Viatger{
				ReservaID: formulari.ReservaID,
				Estat:     "pendent",
			}
			if result := tx.Create(&viatger); result.Error != nil {
				return result.Error
			}
			viatgers = append(viatgers, viatger)
		}

		return nil
	})
	if err != nil {
		// Backstop for two staff members generating at the same instant: the
		// unique index on reserva_id wins where the existence check cannot.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return FormulariReserva{}, nil, ErrFormulariJaGenerat
		}

		return FormulariReserva{}, nil, err
	}

	return formulari, viatgers, nil
}

func (d *FormulariDAO) FindByToken(ctx context.Context, token string) (FormulariReserva, error) {
	var formulari FormulariReserva

	result := d.db.WithContext(ctx).Where("token = ?", token).First(&formulari)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return FormulariReserva{}, ErrFormulariNotFound
		}

		return FormulariReserva{}, result.Error
	}

	return formulari, nil
}

func (d *FormulariDAO) FindByReservaID(ctx context.Context, reservaID uint) (FormulariReserva, error) {
	var formulari FormulariReserva

	result := d.db.WithContext(ctx).Where("reserva_id = ?", reservaID).First(&formulari)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return FormulariReserva{}, ErrFormulariNotFound
		}

		return FormulariReserva{}, result.Error
	}

	return formulari, nil
}

// DeleteByReservaID removes the link and cascade-deletes every traveller of
// the reservation. The cascade is owned by the server; clients only confirm
// intent.
func (d *FormulariDAO) DeleteByReservaID(ctx context.Context, reservaID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("reserva_id = ?", reservaID).Delete(&FormulariReserva{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrFormulariNotFound
		}

		if result := tx.Where("reserva_id = ?", reservaID).Delete(&Viatger{}); result.Error != nil {
			return result.Error
		}

		return nil
	})
}
