package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/allotjaments/viatgers-api/internal/config"
	"github.com/allotjaments/viatgers-api/internal/domain"
	"github.com/allotjaments/viatgers-api/internal/mossos"
	"github.com/allotjaments/viatgers-api/internal/repository"
)

var (
	// ErrCapViatgerComplet is the recognized "no travellers with sufficient
	// data" condition. Handlers attach the computed breakdown to it.
	ErrCapViatgerComplet = errors.New("cap viatger amb dades suficients per generar el fitxer")

	ErrNomFitxerInvalid = errors.New("nom de fitxer invàlid")
	ErrFitxerNotFound   = errors.New("fitxer no trobat")
)

type MossosViatgerRepository interface {
	FindByReservaID(ctx context.Context, reservaID uint) ([]domain.Viatger, error)
	MarkEnviats(ctx context.Context, ids []uint) error
	Estadistiques(ctx context.Context, reservaID uint) (domain.EstadistiquesViatgers, error)
}

type MossosReservaRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Reserva, error)
}

// MossosService generates the compliance registry file for a reservation and
// serves it back by name.
type MossosService struct {
	viatgerRepo MossosViatgerRepository
	reservaRepo MossosReservaRepository
	conf        *config.MossosConfig
	now         func() time.Time
}

func NewMossosService(viatgerRepo MossosViatgerRepository, reservaRepo MossosReservaRepository, conf *config.MossosConfig) *MossosService {
	return &MossosService{
		viatgerRepo: viatgerRepo,
		reservaRepo: reservaRepo,
		conf:        conf,
		now:         time.Now,
	}
}

// GenerateTXT writes the registry file for every traveller of the reservation
// that carries the full regulatory field set, and flips those travellers to
// enviat. The returned statistics describe the reservation either way, so a
// rejection can explain itself.
func (s *MossosService) GenerateTXT(ctx context.Context, reservaID uint) (string, domain.EstadistiquesViatgers, error) {
	reserva, err := s.reservaRepo.FindByID(ctx, reservaID)
	if err != nil {
		if errors.Is(err, repository.ErrReservaNotFound) {
			return "", domain.EstadistiquesViatgers{}, ErrReservaNotFound
		}

		return "", domain.EstadistiquesViatgers{}, fmt.Errorf("s.reservaRepo.FindByID -> %w", err)
	}

	stats, err := s.viatgerRepo.Estadistiques(ctx, reservaID)
	if err != nil {
		return "", domain.EstadistiquesViatgers{}, fmt.Errorf("s.viatgerRepo.Estadistiques -> %w", err)
	}

	viatgers, err := s.viatgerRepo.FindByReservaID(ctx, reservaID)
	if err != nil {
		return "", stats, fmt.Errorf("s.viatgerRepo.FindByReservaID -> %w", err)
	}

	var complets []domain.Viatger
	for _, v := range viatgers {
		if v.DadesCompletes() {
			complets = append(complets, v)
		}
	}

	if len(complets) == 0 {
		return "", stats, ErrCapViatgerComplet
	}

	ara := s.now()
	contingut := mossos.Encode(mossos.Establiment{
		Codi:     s.conf.CodiEstabliment,
		Nom:      s.conf.NomEstabliment,
		Municipi: s.conf.Municipi,
	}, reserva, complets, ara)

	fileName := mossos.FileName(s.conf.CodiEstabliment, ara)

	if err := os.MkdirAll(s.conf.ExportDir, 0o755); err != nil {
		return "", stats, fmt.Errorf("os.MkdirAll -> %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.conf.ExportDir, fileName), contingut, 0o644); err != nil {
		return "", stats, fmt.Errorf("os.WriteFile -> %w", err)
	}

	ids := make([]uint, 0, len(complets))
	for _, v := range complets {
		ids = append(ids, v.ID)
	}
	if err := s.viatgerRepo.MarkEnviats(ctx, ids); err != nil {
		return "", stats, fmt.Errorf("s.viatgerRepo.MarkEnviats -> %w", err)
	}

	return fileName, stats, nil
}

// ExportPath resolves a previously generated artifact, refusing anything that
// could escape the export directory.
func (s *MossosService) ExportPath(fileName string) (string, error) {
	if fileName == "" || fileName != filepath.Base(fileName) || !strings.HasSuffix(fileName, ".txt") {
		return "", ErrNomFitxerInvalid
	}

	path := filepath.Join(s.conf.ExportDir, fileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", ErrFitxerNotFound
		}

		return "", fmt.Errorf("os.Stat -> %w", err)
	}

	return path, nil
}
