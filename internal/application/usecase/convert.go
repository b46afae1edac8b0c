package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/registros-api/internal/application/dto"
	"github.com/jhoicas/registros-api/internal/domain"
	"github.com/jhoicas/registros-api/internal/domain/collection"
)

// parseDate interpreta una fecha de negocio en formato dto.DateLayout.
// Un valor mal formado envuelve domain.ErrValidation.
func parseDate(field, value string) (time.Time, error) {
	d, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s debe tener formato %s: %w", field, dto.DateLayout, domain.ErrValidation)
	}
	return d, nil
}

func formatDate(d time.Time) string {
	return d.Format(dto.DateLayout)
}

func formatDatePtr(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := d.Format(dto.DateLayout)
	return &s
}

func toGroupCounts(groups []collection.GroupCount) []dto.GroupCountDTO {
	out := make([]dto.GroupCountDTO, len(groups))
	for i, g := range groups {
		out[i] = dto.GroupCountDTO{Key: g.Key, Count: g.Count}
	}
	return out
}

func toGroupTotals(groups []collection.GroupSum) []dto.GroupTotalDTO {
	out := make([]dto.GroupTotalDTO, len(groups))
	for i, g := range groups {
		out[i] = dto.GroupTotalDTO{Key: g.Key, Total: g.Total}
	}
	return out
}
