package server

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ekaya/pdfasistan/internal/config"
	"github.com/ekaya/pdfasistan/internal/controller"
	"github.com/ekaya/pdfasistan/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopService struct{}

func (noopService) Status(ctx context.Context) (*dto.StatusResponse, error) {
	return &dto.StatusResponse{}, nil
}
func (noopService) Index(ctx context.Context) (*dto.IndexResponse, error) {
	return &dto.IndexResponse{}, nil
}
func (noopService) Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error) {
	return &dto.AskResponse{}, nil
}
func (noopService) Questions() []string { return nil }

func newTestServer() *Server {
	cfg := &config.Config{App: config.AppConfig{Port: "0", CorsAllowedOrigins: "*"}}
	return New(cfg, controller.NewRagController(noopService{}))
}

func TestServesEmbeddedUI(t *testing.T) {
	srv := newTestServer()

	resp, err := srv.GetApp().Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "PDF Asistan"))
}

func TestRequestIDHeaderSet(t *testing.T) {
	srv := newTestServer()

	resp, err := srv.GetApp().Test(httptest.NewRequest("GET", "/api/rag/v1/status", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}
