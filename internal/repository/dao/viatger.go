package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrViatgerNotFound = errors.New("viatger not found")
	// ErrPlacaJaOmplerta means the targeted slot was claimed by a concurrent
	// submission between the caller's read and its write.
	ErrPlacaJaOmplerta = errors.New("la plaça de viatger ja està omplerta")
)

// completsCond mirrors domain.Viatger.DadesCompletes at the SQL level.
const completsCond = "nom <> '' AND cognoms <> '' AND dni_passaport <> '' AND " +
	"data_naixement <> '' AND nacionalitat <> '' AND sexe <> ''"

type DadesMossos struct {
	SegonCognom       string
	CaducitatDocument string
	NumeroSuport      string
	CodiParentiu      string
	NumeroContracte   string
	DataContracte     string
	HoraEntrada       string
	HoraSortida       string
	NumeroViatgers    int
	NumeroHabitacions int
	FormaPagament     string
	Internet          bool
	AdresaPostal      string
	MunicipiPostal    string
	CodiPostal        string
	PaisPostal        string
}

type Viatger struct {
	ID        uint   `gorm:"primaryKey"`
	ReservaID uint   `gorm:"index;not null"`
	Estat     string `gorm:"not null;default:pendent"`

	Nom           string
	Cognoms       string
	DNIPassaport  string `gorm:"column:dni_passaport"`
	TipusDocument string
	DataNaixement string
	Nacionalitat  string
	Sexe          string
	Telefon       string
	Email         string

	AdresaResidencia     string
	CiutatResidencia     string
	ProvinciaResidencia  string
	CodiPostalResidencia string
	PaisResidencia       string

	DadesMossos `gorm:"embedded"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ViatgerDAO struct {
	db *gorm.DB
}

func NewViatgerDAO(db *gorm.DB) *ViatgerDAO {
	return &ViatgerDAO{
		db: db,
	}
}

func (d *ViatgerDAO) Insert(ctx context.Context, viatger Viatger) (Viatger, error) {
	result := d.db.WithContext(ctx).Create(&viatger)
	if result.Error != nil {
		return Viatger{}, result.Error
	}

	return viatger, nil
}

func (d *ViatgerDAO) FindByID(ctx context.Context, id uint) (Viatger, error) {
	var viatger Viatger

	result := d.db.WithContext(ctx).First(&viatger, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Viatger{}, ErrViatgerNotFound
		}

		return Viatger{}, result.Error
	}

	return viatger, nil
}

func (d *ViatgerDAO) FindByReservaID(ctx context.Context, reservaID uint) ([]Viatger, error) {
	var viatgers []Viatger

	result := d.db.WithContext(ctx).
		Where("reserva_id = ?", reservaID).
		Order("id").
		Find(&viatgers)
	if result.Error != nil {
		return nil, result.Error
	}

	return viatgers, nil
}

func (d *ViatgerDAO) List(ctx context.Context, cerca, estat string, reservaID uint) ([]Viatger, error) {
	query := d.db.WithContext(ctx).Model(&Viatger{})

	if cerca != "" {
		pattern := "%" + strings.ToLower(cerca) + "%"
		query = query.Where(
			"LOWER(nom) LIKE ? OR LOWER(cognoms) LIKE ? OR LOWER(dni_passaport) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if estat != "" {
		query = query.Where("estat = ?", estat)
	}
	if reservaID != 0 {
		query = query.Where("reserva_id = ?", reservaID)
	}

	var viatgers []Viatger
	if result := query.Order("id").Find(&viatgers); result.Error != nil {
		return nil, result.Error
	}

	return viatgers, nil
}

// Update replaces every editable column of the traveller, zero values
// included, so that clearing a field from the admin modal sticks.
func (d *ViatgerDAO) Update(ctx context.Context, viatger Viatger) (Viatger, error) {
	result := d.db.WithContext(ctx).
		Model(&Viatger{}).
		Where("id = ?", viatger.ID).
		Select("*").
		Omit("id", "reserva_id", "created_at").
		Updates(viatger)
	if result.Error != nil {
		return Viatger{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Viatger{}, ErrViatgerNotFound
	}

	return d.FindByID(ctx, viatger.ID)
}

func (d *ViatgerDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Viatger{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrViatgerNotFound
	}

	return nil
}

func (d *ViatgerDAO) FirstPendentByReservaID(ctx context.Context, reservaID uint) (Viatger, error) {
	var viatger Viatger

	result := d.db.WithContext(ctx).
		Where("reserva_id = ? AND estat = ?", reservaID, "pendent").
		Order("id").
		First(&viatger)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Viatger{}, ErrViatgerNotFound
		}

		return Viatger{}, result.Error
	}

	return viatger, nil
}

// FillSlot atomically claims a pendent slot and stores the submitted data.
// The estat guard in the WHERE clause is what rejects a submission racing
// against another traveller for the same slot.
func (d *ViatgerDAO) FillSlot(ctx context.Context, id, reservaID uint, viatger Viatger) (Viatger, error) {
	viatger.Estat = "omplert"

	result := d.db.WithContext(ctx).
		Model(&Viatger{}).
		Where("id = ? AND reserva_id = ? AND estat = ?", id, reservaID, "pendent").
		Select("*").
		Omit("id", "reserva_id", "created_at").
		Updates(viatger)
	if result.Error != nil {
		return Viatger{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Viatger{}, ErrPlacaJaOmplerta
	}

	return d.FindByID(ctx, id)
}

func (d *ViatgerDAO) MarkEnviats(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	result := d.db.WithContext(ctx).
		Model(&Viatger{}).
		Where("id IN ?", ids).
		Update("estat", "enviat")

	return result.Error
}

func (d *ViatgerDAO) CountPendentsByReservaID(ctx context.Context, reservaID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Viatger{}).
		Where("reserva_id = ? AND estat = ?", reservaID, "pendent").
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *ViatgerDAO) Stats(ctx context.Context, reservaID uint) (total, pendents, omplerts, enviats, complets int64, err error) {
	scoped := func() *gorm.DB {
		query := d.db.WithContext(ctx).Model(&Viatger{})
		if reservaID != 0 {
			query = query.Where("reserva_id = ?", reservaID)
		}
		return query
	}

	if err = scoped().Count(&total).Error; err != nil {
		return
	}
	if err = scoped().Where("estat = ?", "pendent").Count(&pendents).Error; err != nil {
		return
	}
	if err = scoped().Where("estat = ?", "omplert").Count(&omplerts).Error; err != nil {
		return
	}
	if err = scoped().Where("estat = ?", "enviat").Count(&enviats).Error; err != nil {
		return
	}
	err = scoped().Where(completsCond).Count(&complets).Error

	return
}
