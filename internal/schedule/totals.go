package schedule

import "github.com/BruksfildServices01/salon-scheduler/internal/dto"

// Catalog indexa os serviços atuais por ID.
type Catalog map[string]dto.Service

func NewCatalog(services []dto.Service) Catalog {
	c := make(Catalog, len(services))
	for _, s := range services {
		c[s.ID] = s
	}
	return c
}

type Totals struct {
	TotalPrice    float64
	TotalDuration int
	ServiceNames  []string
}

// TotalsOf soma preço e duração dos serviços do agendamento.
//
// O preço vem do catálogo atual quando o serviço está nele, então
// agendamentos antigos acompanham reajustes. Sem catálogo, vale o
// registro anexado ao agendamento.
func TotalsOf(ap dto.Appointment, catalog Catalog) Totals {
	t := Totals{ServiceNames: make([]string, 0, len(ap.Services))}
	for _, attached := range ap.Services {
		s := attached
		if live, ok := catalog[attached.ID]; ok {
			s = live
		}
		t.TotalPrice += float64(s.Price)
		t.TotalDuration += int(s.DurationMin)
		t.ServiceNames = append(t.ServiceNames, s.Name)
	}
	return t
}

// SelectionTotals calcula os totais do formulário para os IDs marcados.
// IDs fora do catálogo são ignorados.
func SelectionTotals(ids []string, catalog Catalog) Totals {
	t := Totals{ServiceNames: make([]string, 0, len(ids))}
	for _, id := range ids {
		s, ok := catalog[id]
		if !ok {
			continue
		}
		t.TotalPrice += float64(s.Price)
		t.TotalDuration += int(s.DurationMin)
		t.ServiceNames = append(t.ServiceNames, s.Name)
	}
	return t
}
