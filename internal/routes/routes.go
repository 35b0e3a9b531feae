package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/salon-scheduler/internal/usecase/catalog"
)

// Deps são as dependências montadas no main (ou nos testes).
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Location *time.Location
	Cache    cache.Catalog
	Audit    *audit.Dispatcher
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics(d.Metrics))
	r.Use(middleware.CORSMiddleware(d.Config.AllowedOrigins...))
	r.Use(middleware.RateLimit(d.Config.RateLimitRPS, d.Config.RateLimitBurst))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	clientRepo := infraRepo.NewClientGormRepository(d.DB)
	serviceRepo := infraRepo.NewServiceGormRepository(d.DB)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	servicesUC := ucCatalog.NewServices(serviceRepo, d.Cache, d.Audit, d.Metrics)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(appointmentRepo, d.Audit, d.Location),
		ucAppointment.NewUpdateAppointment(appointmentRepo, d.Audit, d.Location),
		ucAppointment.NewConfirmAppointment(appointmentRepo, d.Audit, d.Metrics, d.Location),
		ucAppointment.NewCancelAppointment(appointmentRepo, d.Audit, d.Metrics, d.Location),
		ucAppointment.NewListAppointments(appointmentRepo, d.Location),
		ucAppointment.NewGetAgenda(appointmentRepo, d.Location),
		ucAppointment.NewListAppointmentsByMonth(appointmentRepo, d.Location),
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(clientRepo, d.Audit)
	serviceHandler := handlers.NewServiceHandler(servicesUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, d.Location)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.PUT("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)

		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)
		api.PUT("/services/:id", serviceHandler.Update)
		api.DELETE("/services/:id", serviceHandler.Delete)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/month", appointmentHandler.ListByMonth)
		api.POST("/appointments", appointmentHandler.Create)
		api.PUT("/appointments/:id", appointmentHandler.Update)
		api.PUT("/appointments/:id/confirm", appointmentHandler.Confirm)
		api.PUT("/appointments/:id/cancel", appointmentHandler.Cancel)

		api.GET("/agenda", appointmentHandler.Agenda)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
