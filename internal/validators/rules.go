package validators

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

var once sync.Once

// Register adiciona as regras "ymd" e "hhmm" ao validador do gin.
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("ymd", layoutRule(timezone.DateLayout))
		_ = v.RegisterValidation("hhmm", layoutRule(timezone.TimeLayout))
	})
}

func layoutRule(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true // "required" cuida do vazio
		}
		_, err := time.Parse(layout, s)
		return err == nil
	}
}
