package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

func TestTotalsOf_NoServices(t *testing.T) {
	got := TotalsOf(dto.Appointment{ID: "a"}, nil)

	assert.Equal(t, 0.0, got.TotalPrice)
	assert.Equal(t, 0, got.TotalDuration)
	assert.Empty(t, got.ServiceNames)
}

func TestTotalsOf_SumsAttachedServices(t *testing.T) {
	ap := dto.Appointment{
		ID: "a",
		Services: []dto.Service{
			svc("1", "Corte Feminino", 80, 60),
			svc("2", "Corte Masculino", 45, 30),
		},
	}

	got := TotalsOf(ap, nil)

	assert.Equal(t, 125.0, got.TotalPrice)
	assert.Equal(t, 90, got.TotalDuration)
	assert.Equal(t, []string{"Corte Feminino", "Corte Masculino"}, got.ServiceNames)
}

func TestTotalsOf_UsesLivePrices(t *testing.T) {
	ap := dto.Appointment{
		ID:       "a",
		Services: []dto.Service{svc("1", "Corte", 80, 60)},
	}
	catalog := NewCatalog([]dto.Service{svc("1", "Corte", 95, 60)})

	assert.Equal(t, 95.0, TotalsOf(ap, catalog).TotalPrice)
}

func TestSelectionTotals(t *testing.T) {
	catalog := NewCatalog([]dto.Service{
		svc("1", "Corte", 80, 60),
		svc("4", "Manicure", 35, 45),
	})

	got := SelectionTotals([]string{"4", "missing", "1"}, catalog)

	assert.Equal(t, 115.0, got.TotalPrice)
	assert.Equal(t, 105, got.TotalDuration)
	assert.Equal(t, []string{"Manicure", "Corte"}, got.ServiceNames)
}
