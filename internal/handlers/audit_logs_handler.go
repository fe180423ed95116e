package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/escritorio-juridico/internal/audit"
	"github.com/BruksfildServices01/escritorio-juridico/internal/httperr"
	"github.com/BruksfildServices01/escritorio-juridico/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

// maxAuditPage keeps (page-1)*limit far from int overflow.
const maxAuditPage = 1_000_000

type AuditLogsHandler struct {
	reader audit.Reader
}

func NewAuditLogsHandler(reader audit.Reader) *AuditLogsHandler {
	return &AuditLogsHandler{reader: reader}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	if page > maxAuditPage {
		page = maxAuditPage
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	events, total, err := h.reader.List(c.Request.Context(), audit.Query{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.List(c, events, total, page, limit)
}
