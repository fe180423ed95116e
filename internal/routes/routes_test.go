package routes

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/escritorio-juridico/internal/audit"
	"github.com/BruksfildServices01/escritorio-juridico/internal/form"
	"github.com/BruksfildServices01/escritorio-juridico/internal/infra/repository"
	usecase "github.com/BruksfildServices01/escritorio-juridico/internal/usecase/office"
)

type body struct {
	Severity  string          `json:"severity"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
}

func newServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewOfficeMemoryRepository(time.UTC)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sink := audit.NewMemorySink()
	rec := audit.NewRecorder(sink, logger)

	r := gin.New()
	RegisterRoutes(r, Deps{
		Services: form.Services{
			CreateClient:    usecase.NewCreateClient(repo, rec, logger),
			CreateCase:      usecase.NewCreateCase(repo, rec, logger),
			RegisterPayment: usecase.NewRegisterPayment(repo, rec, logger),
			ScheduleHearing: usecase.NewScheduleHearing(repo, rec, logger),
			Lookup:          usecase.NewLookup(repo, logger),
		},
		AuditLog: sink,
		Logger:   logger,
	})
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, payload string) (int, body) {
	t.Helper()

	var reader io.Reader
	if payload != "" {
		reader = strings.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var b body
	_ = json.Unmarshal(w.Body.Bytes(), &b)
	return w.Code, b
}

const anaJSON = `{"name":"Ana","cpf":"111","age":30,"phone":"9999","address":"Rua A","email":"ana@x.com"}`

func TestHealth(t *testing.T) {
	code, _ := do(t, newServer(t), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, code)
}

func TestClientLifecycle(t *testing.T) {
	r := newServer(t)

	code, b := do(t, r, http.MethodPost, "/api/clients", anaJSON)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "info", b.Severity)
	assert.Equal(t, "Cliente 'Ana' adicionado!", b.Message)
	assert.JSONEq(t, anaJSON, string(b.Data))

	code, b = do(t, r, http.MethodPost, "/api/clients", anaJSON)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "duplicate_key", b.ErrorCode)

	code, b = do(t, r, http.MethodGet, "/api/clients/111", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Cliente Encontrado", b.Title)

	code, b = do(t, r, http.MethodGet, "/api/clients/000", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "not_found", b.ErrorCode)
}

func TestCreateClient_Validation(t *testing.T) {
	code, b := do(t, newServer(t), http.MethodPost, "/api/clients",
		`{"name":"Ana","cpf":"111","age":"abc","phone":"1","address":"x","email":"a@a"}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "validation_error", b.ErrorCode)
	assert.Equal(t, "warning", b.Severity)
	assert.Equal(t, "O campo 'Idade' deve ser um número inteiro.", b.Message)
}

func TestCreateClient_BadJSON(t *testing.T) {
	code, _ := do(t, newServer(t), http.MethodPost, "/api/clients", `[1,2]`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, newServer(t), http.MethodPost, "/api/clients", `{"age":true}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCaseWithUnknownClient(t *testing.T) {
	r := newServer(t)

	code, b := do(t, r, http.MethodPost, "/api/cases", `{"case_number":"P1","description":"d","client_cpf":"999"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "reference_not_found", b.ErrorCode)

	code, _ = do(t, r, http.MethodGet, "/api/cases/P1", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestHearingScenario(t *testing.T) {
	r := newServer(t)

	code, _ := do(t, r, http.MethodPost, "/api/clients", anaJSON)
	require.Equal(t, http.StatusCreated, code)
	code, _ = do(t, r, http.MethodPost, "/api/cases", `{"case_number":"P1","description":"Divórcio","client_cpf":"111"}`)
	require.Equal(t, http.StatusCreated, code)

	code, b := do(t, r, http.MethodPost, "/api/hearings",
		`{"case_number":"P1","client_cpf":"222","date_time":"25/12/2025 14:30","location":"Room1","hearing_type":"Civil"}`)
	require.Equal(t, http.StatusCreated, code)
	assert.JSONEq(t,
		`{"case_number":"P1","client_cpf":"111","date_time":"25/12/2025 14:30","location":"Room1","hearing_type":"Civil"}`,
		string(b.Data))

	code, b = do(t, r, http.MethodGet, "/api/cases/P1/hearings", "")
	require.Equal(t, http.StatusOK, code)

	var hearings []map[string]string
	require.NoError(t, json.Unmarshal(b.Data, &hearings))
	require.Len(t, hearings, 1)
	assert.Equal(t, "111", hearings[0]["client_cpf"])

	code, _ = do(t, r, http.MethodGet, "/api/audit-logs?action=hearing_scheduled", "")
	assert.Equal(t, http.StatusOK, code)
}

func TestPayments(t *testing.T) {
	r := newServer(t)

	code, _ := do(t, r, http.MethodPost, "/api/payments", `{"client_cpf":"111","amount":10,"description":"x"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	_, _ = do(t, r, http.MethodPost, "/api/clients", anaJSON)

	code, b := do(t, r, http.MethodGet, "/api/clients/111/payments", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(b.Data))

	code, _ = do(t, r, http.MethodPost, "/api/payments", `{"client_cpf":"111","amount":150.50,"description":"entrada"}`)
	assert.Equal(t, http.StatusCreated, code)

	code, b = do(t, r, http.MethodGet, "/api/clients/111/payments", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[{"client_cpf":"111","amount":150.5,"description":"entrada"}]`, string(b.Data))
}
