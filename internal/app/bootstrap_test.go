package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"placement-match/internal/config"
	"placement-match/internal/delivery/http/handler"
	"placement-match/internal/delivery/http/middleware"
	"placement-match/internal/delivery/http/routes"
	"placement-match/internal/domain/matching"
	"placement-match/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr(" 8080 ")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(":9000")
	require.NoError(t, err)
	assert.Equal(t, ":9000", addr)

	_, err = ListenAddr("  ")
	assert.Error(t, err)
}

func TestNewContainer_RequiresDatabase(t *testing.T) {
	_, err := NewContainer(context.Background(), config.Config{}, nil)
	assert.ErrorIs(t, err, errDatabaseNotConfigured)
}

type emptyCandidates struct{}

func (emptyCandidates) FindByID(context.Context, uuid.UUID) (matching.Candidate, error) {
	return matching.Candidate{}, nil
}
func (emptyCandidates) List(context.Context) ([]matching.Candidate, error) { return nil, nil }

func TestNew_WiresRoutesAndMiddleware(t *testing.T) {
	uc := usecase.NewMatchingUsecase(emptyCandidates{}, nil, nil, nil, nil)
	app := New(config.Config{App: config.AppConfig{AppName: "placement-match"}}, nil, routes.Handlers{
		Health:    handler.NewHealthHandler(nil),
		Candidate: handler.NewCandidateHandler(uc),
	})

	resp, err := app.Fiber.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))

	resp, err = app.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/v1/candidates/"+uuid.NewString()+"/summary", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Fiber.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var env struct {
		Status int `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, http.StatusNotFound, env.Status)
}
