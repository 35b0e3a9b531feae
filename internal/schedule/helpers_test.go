package schedule

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

var brt = time.FixedZone("BRT", -3*60*60)

func at(t *testing.T, s string) dto.Instant {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return dto.Instant{Time: ts}
}

func svc(id, name string, price float64, minutes int) dto.Service {
	return dto.Service{ID: id, Name: name, Price: dto.Amount(price), DurationMin: dto.Minutes(minutes)}
}

func ids(list []dto.Appointment) []string {
	out := make([]string, 0, len(list))
	for _, ap := range list {
		out = append(out, ap.ID)
	}
	return out
}
