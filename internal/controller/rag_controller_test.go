package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ekaya/pdfasistan/internal/dto"
	"github.com/ekaya/pdfasistan/internal/pkg/serverutils"
	"github.com/ekaya/pdfasistan/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubService lets each test script the service layer directly.
type stubService struct {
	status    *dto.StatusResponse
	statusErr error
	index     *dto.IndexResponse
	indexErr  error
	ask       *dto.AskResponse
	askErr    error
	questions []string
}

func (s *stubService) Status(ctx context.Context) (*dto.StatusResponse, error) {
	return s.status, s.statusErr
}

func (s *stubService) Index(ctx context.Context) (*dto.IndexResponse, error) {
	return s.index, s.indexErr
}

func (s *stubService) Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error) {
	return s.ask, s.askErr
}

func (s *stubService) Questions() []string {
	return s.questions
}

func newTestApp(svc service.IRagService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewRagController(svc).RegisterRoutes(api)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	return resp, payload
}

func TestAskBeforeIndexReturnsGuidance(t *testing.T) {
	app := newTestApp(&stubService{askErr: service.ErrNotIndexed})

	resp, payload := doJSON(t, app, "POST", "/api/rag/v1/ask", `{"question":"Yöntem nedir?"}`)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, false, payload["success"])
	assert.Contains(t, payload["message"], "indeksleyin")
}

func TestAskReturnsAnswer(t *testing.T) {
	app := newTestApp(&stubService{ask: &dto.AskResponse{Answer: "• Cevap", Model: "gpt-5-mini"}})

	resp, payload := doJSON(t, app, "POST", "/api/rag/v1/ask", `{"question":"Katkı nedir?"}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, payload["success"])
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, "• Cevap", data["answer"])
}

func TestAskEmptyQuestionRejected(t *testing.T) {
	app := newTestApp(&stubService{ask: &dto.AskResponse{Answer: "should not be reached"}})

	resp, payload := doJSON(t, app, "POST", "/api/rag/v1/ask", `{"question":""}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, payload["success"])
}

func TestIndexNoDocuments(t *testing.T) {
	app := newTestApp(&stubService{indexErr: service.ErrNoDocuments})

	resp, payload := doJSON(t, app, "POST", "/api/rag/v1/index", "")

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, payload["message"], "PDF bulunamadı")
}

func TestIndexBackendFailure(t *testing.T) {
	app := newTestApp(&stubService{indexErr: errors.New("service unavailable")})

	resp, payload := doJSON(t, app, "POST", "/api/rag/v1/index", "")

	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, payload["message"], "İndeks hatası")
}

func TestStatus(t *testing.T) {
	app := newTestApp(&stubService{status: &dto.StatusResponse{
		Indexed:       true,
		UpToDate:      true,
		VectorStoreID: "vs_1",
		Documents:     []dto.DocumentInfo{{Name: "a.pdf", Size: 12}},
		IndexedFiles:  []string{"a.pdf"},
	}})

	resp, payload := doJSON(t, app, "GET", "/api/rag/v1/status", "")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, true, data["indexed"])
	assert.Equal(t, "vs_1", data["vector_store_id"])
}

func TestQuestions(t *testing.T) {
	app := newTestApp(&stubService{questions: []string{"Soru 1", "Soru 2"}})

	resp, payload := doJSON(t, app, "GET", "/api/rag/v1/questions", "")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := payload["data"].(map[string]interface{})
	assert.Len(t, data["questions"], 2)
}
