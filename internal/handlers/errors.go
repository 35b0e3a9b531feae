package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

var businessMessages = map[string]string{
	"missing_client_name":   "Nome do cliente obrigatório.",
	"missing_services":      "Selecione pelo menos um serviço.",
	"missing_date":          "Data obrigatória.",
	"missing_time":          "Horário obrigatório.",
	"invalid_date_or_time":  "Data ou hora inválida.",
	"invalid_date":          "Data inválida.",
	"invalid_filter":        "Filtro de status inválido.",
	"invalid_year":          "Ano inválido.",
	"invalid_month":         "Mês inválido.",
	"invalid_status":        "Status inválido.",
	"invalid_state":         "Agendamento não pode mudar para esse status.",
	"missing_name":          "Nome obrigatório.",
	"invalid_price":         "Preço inválido.",
	"invalid_duration":      "Duração inválida.",
	"client_not_found":      "Cliente não encontrado.",
	"service_not_found":     "Serviço não encontrado.",
	"appointment_not_found": "Agendamento não encontrado.",
	"service_in_use":        "Serviço usado em agendamentos.",
}

// writeError traduz erros de negócio para o status HTTP certo. Qualquer
// outro erro vira 500 com fallbackCode.
func writeError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	code, ok := httperr.Code(err)
	if !ok {
		log.Error().
			Err(err).
			Str("path", c.FullPath()).
			Str("error_code", fallbackCode).
			Msg("request failed")
		httperr.Internal(c, fallbackCode, fallbackMsg)
		return
	}

	msg, found := businessMessages[code]
	if !found {
		msg = "Requisição inválida."
	}

	switch {
	case strings.HasSuffix(code, "_not_found"):
		httperr.NotFound(c, code, msg)
	case code == "invalid_state" || code == "service_in_use":
		httperr.Conflict(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}

// writeBindError responde 400 para corpo ou query malformados.
func writeBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := verrs[0]
		log.Debug().
			Str("field", field.Field()).
			Str("rule", field.Tag()).
			Msg("request validation failed")
	}
	httperr.Write(c, http.StatusBadRequest, "invalid_request", "Dados inválidos.")
}
