package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/escritorio-juridico/internal/dto"
	"github.com/BruksfildServices01/escritorio-juridico/internal/form"
	"github.com/BruksfildServices01/escritorio-juridico/internal/httperr"
	"github.com/BruksfildServices01/escritorio-juridico/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

// OfficeHandler exposes the form flows over HTTP. Every request runs one
// flow with a single submission attempt.
type OfficeHandler struct {
	svc    form.Services
	logger *slog.Logger
}

func NewOfficeHandler(svc form.Services, logger *slog.Logger) *OfficeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &OfficeHandler{svc: svc, logger: logger}
}

type flow func(*form.Controller, context.Context) error

// ======================================================
// CREATE
// ======================================================

func (h *OfficeHandler) CreateClient(c *gin.Context) {
	h.submit(c, (*form.Controller).AddClient)
}

func (h *OfficeHandler) CreateCase(c *gin.Context) {
	h.submit(c, (*form.Controller).AddCase)
}

func (h *OfficeHandler) RegisterPayment(c *gin.Context) {
	h.submit(c, (*form.Controller).AddPayment)
}

func (h *OfficeHandler) ScheduleHearing(c *gin.Context) {
	h.submit(c, (*form.Controller).AddHearing)
}

func (h *OfficeHandler) submit(c *gin.Context, run flow) {
	raw, err := decodeFields(c.Request.Body)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	h.run(c, &requestPrompter{fields: raw}, run, http.StatusCreated)
}

// ======================================================
// FIND
// ======================================================

func (h *OfficeHandler) GetClient(c *gin.Context) {
	h.run(c, &requestPrompter{key: c.Param("cpf")}, (*form.Controller).FindClient, http.StatusOK)
}

func (h *OfficeHandler) GetCase(c *gin.Context) {
	h.run(c, &requestPrompter{key: c.Param("number")}, (*form.Controller).FindCase, http.StatusOK)
}

func (h *OfficeHandler) ListPayments(c *gin.Context) {
	h.run(c, &requestPrompter{key: c.Param("cpf")}, (*form.Controller).FindPayments, http.StatusOK)
}

func (h *OfficeHandler) ListHearings(c *gin.Context) {
	h.run(c, &requestPrompter{key: c.Param("number")}, (*form.Controller).FindHearings, http.StatusOK)
}

// ======================================================
// HELPERS
// ======================================================

func (h *OfficeHandler) run(
	c *gin.Context,
	prompter *requestPrompter,
	run flow,
	okStatus int,
) {

	notifier := &responseNotifier{}
	ctrl := form.NewController(h.svc, prompter, notifier, form.WithMaxAttempts(1))

	err := run(ctrl, c.Request.Context())

	status := okStatus
	if err != nil {
		status = httperr.StatusFor(err)
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
	}

	body := dto.Notification{
		Severity:  notifier.severity.String(),
		Title:     notifier.title,
		Message:   notifier.message,
		Data:      notifier.result,
		ErrorCode: httperr.CodeOf(err),
	}
	if !notifier.notified && err != nil {
		body.Severity = form.Warning.String()
		body.Message = err.Error()
	}

	httpresp.Notify(c, status, body)
}
