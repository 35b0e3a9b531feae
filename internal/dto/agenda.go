package dto

type StatusCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
}

type AgendaEntry struct {
	Appointment

	TotalPrice    float64  `json:"total_price"`
	TotalDuration int      `json:"total_duration"`
	ServiceNames  []string `json:"service_names"`
	WhatsAppLink  string   `json:"whatsapp_link,omitempty"`
}

// Agenda é a visão de um dia: contagens e receita valem para o dia todo,
// Entries respeita o filtro de status.
type Agenda struct {
	Date             string        `json:"date"`
	Filter           string        `json:"filter"`
	Counts           StatusCounts  `json:"counts"`
	ConfirmedRevenue float64       `json:"confirmed_revenue"`
	Entries          []AgendaEntry `json:"entries"`
}

type MonthDay struct {
	Date   string       `json:"date"`
	Counts StatusCounts `json:"counts"`
}

type Month struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	Days  []MonthDay `json:"days"`
}
