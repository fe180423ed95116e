package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/escritorio-juridico/internal/audit"
	"github.com/BruksfildServices01/escritorio-juridico/internal/form"
	"github.com/BruksfildServices01/escritorio-juridico/internal/handlers"
	"github.com/BruksfildServices01/escritorio-juridico/internal/middleware"
)

// Deps is everything the HTTP surface needs, built once at start-up.
type Deps struct {
	Services   form.Services
	AuditLog   audit.Reader
	CORSOrigin string
	Logger     *slog.Logger
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(deps.CORSOrigin))

	// ======================================================
	// HANDLERS
	// ======================================================
	officeHandler := handlers.NewOfficeHandler(deps.Services, deps.Logger)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// CLIENTES
		// ------------------------------
		api.POST("/clients", officeHandler.CreateClient)
		api.GET("/clients/:cpf", officeHandler.GetClient)
		api.GET("/clients/:cpf/payments", officeHandler.ListPayments)

		// ------------------------------
		// PROCESSOS
		// ------------------------------
		api.POST("/cases", officeHandler.CreateCase)
		api.GET("/cases/:number", officeHandler.GetCase)
		api.GET("/cases/:number/hearings", officeHandler.ListHearings)

		// ------------------------------
		// PAGAMENTOS / AUDIÊNCIAS
		// ------------------------------
		api.POST("/payments", officeHandler.RegisterPayment)
		api.POST("/hearings", officeHandler.ScheduleHearing)

		if deps.AuditLog != nil {
			auditLogsHandler := handlers.NewAuditLogsHandler(deps.AuditLog)
			api.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
