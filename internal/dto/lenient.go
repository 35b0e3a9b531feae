package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Amount aceita número ou string numérica (decimais do banco chegam como
// string em alguns drivers). Valor inválido vira zero.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	*a = Amount(parseNumber(b))
	return nil
}

// Minutes segue a mesma regra de Amount, truncando para inteiro.
type Minutes int

func (m *Minutes) UnmarshalJSON(b []byte) error {
	*m = Minutes(int(parseNumber(b)))
	return nil
}

func parseNumber(b []byte) float64 {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return 0
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// Instant é um horário absoluto. Ausente ou ilegível decodifica como zero
// em vez de derrubar a lista inteira.
type Instant struct {
	time.Time
}

func (i Instant) MarshalJSON() ([]byte, error) {
	if i.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(i.Time.Format(time.RFC3339))
}

func (i *Instant) UnmarshalJSON(b []byte) error {
	i.Time = time.Time{}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	i.Time = t
	return nil
}
