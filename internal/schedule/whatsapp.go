package schedule

import (
	"fmt"
	"net/url"
	"strings"
)

// WhatsAppLink gera o link de confirmação. Telefones com até 11 dígitos
// recebem o DDI 55. Sem telefone, devolve "".
func WhatsAppLink(phone, name, hm string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return ""
	}
	if len(digits) <= 11 {
		digits = "55" + digits
	}

	msg := fmt.Sprintf("Olá %s, tudo bem? Passando para confirmar seu agendamento hoje às %s.", name, hm)
	return "https://wa.me/" + digits + "?" + url.Values{"text": {msg}}.Encode()
}
