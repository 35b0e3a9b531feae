package dto

import "github.com/BruksfildServices01/salon-scheduler/internal/models"

type Client struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       Amount  `json:"price"`
	DurationMin Minutes `json:"duration_min"`
	Description string  `json:"description,omitempty"`
}

func FromClient(c models.Client) Client {
	return Client{
		ID:    c.ID,
		Name:  c.Name,
		Phone: c.Phone,
		Email: c.Email,
	}
}

func FromService(s models.Service) Service {
	return Service{
		ID:          s.ID,
		Name:        s.Name,
		Price:       Amount(s.Price),
		DurationMin: Minutes(s.DurationMin),
		Description: s.Description,
	}
}

func FromClients(in []models.Client) []Client {
	out := make([]Client, 0, len(in))
	for _, c := range in {
		out = append(out, FromClient(c))
	}
	return out
}

func FromServices(in []models.Service) []Service {
	out := make([]Service, 0, len(in))
	for _, s := range in {
		out = append(out, FromService(s))
	}
	return out
}
