package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrReservaNotFound = errors.New("reserva not found")

type Reserva struct {
	ID uint `gorm:"primaryKey"`

	Client       string    `gorm:"not null"`
	Allotjament  string    `gorm:"not null"`
	DataEntrada  time.Time `gorm:"not null"`
	DataSortida  time.Time `gorm:"not null"`
	NombreHostes int       `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ReservaDAO struct {
	db *gorm.DB
}

func NewReservaDAO(db *gorm.DB) *ReservaDAO {
	return &ReservaDAO{
		db: db,
	}
}

func (d *ReservaDAO) Insert(ctx context.Context, reserva Reserva) (Reserva, error) {
	result := d.db.WithContext(ctx).Create(&reserva)
	if result.Error != nil {
		return Reserva{}, result.Error
	}

	return reserva, nil
}

func (d *ReservaDAO) FindByID(ctx context.Context, id uint) (Reserva, error) {
	var reserva Reserva

	result := d.db.WithContext(ctx).First(&reserva, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Reserva{}, ErrReservaNotFound
		}

		return Reserva{}, result.Error
	}

	return reserva, nil
}

func (d *ReservaDAO) Update(ctx context.Context, reserva Reserva) (Reserva, error) {
	result := d.db.WithContext(ctx).
		Model(&Reserva{}).
		Where("id = ?", reserva.ID).
		Select("client", "allotjament", "data_entrada", "data_sortida", "nombre_hostes").
		Updates(reserva)
	if result.Error != nil {
		return Reserva{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Reserva{}, ErrReservaNotFound
	}

	return d.FindByID(ctx, reserva.ID)
}

func (d *ReservaDAO) UpdateNombreHostes(ctx context.Context, id uint, nombreHostes int) error {
	result := d.db.WithContext(ctx).
		Model(&Reserva{}).
		Where("id = ?", id).
		Update("nombre_hostes", nombreHostes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReservaNotFound
	}

	return nil
}
