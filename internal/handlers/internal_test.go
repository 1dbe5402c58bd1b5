package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/scan-track/fridge-service/pkg/logger"
)

type mockReminderRunner struct {
	mock.Mock
}

func (m *mockReminderRunner) RunOnce(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func reminderTestRouter(runner ReminderRunner) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewReminderHandler(runner, logger.NewLogger("error"))

	router := gin.New()
	router.POST("/api/reminders/run", handler.Run)
	return router
}

func TestReminderRun(t *testing.T) {
	runner := new(mockReminderRunner)
	runner.On("RunOnce", mock.Anything).Return(3, nil)

	router := reminderTestRouter(runner)

	req := httptest.NewRequest(http.MethodPost, "/api/reminders/run", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true, "reminders_sent": 3}`, w.Body.String())
}

func TestReminderRun_SweepFails(t *testing.T) {
	runner := new(mockReminderRunner)
	runner.On("RunOnce", mock.Anything).Return(0, errors.New("connection refused"))

	router := reminderTestRouter(runner)

	req := httptest.NewRequest(http.MethodPost, "/api/reminders/run", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
