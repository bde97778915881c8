package export

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/review-platform/internal/models"
)

// MockService реализует интерфейс export.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Export(ctx context.Context, userID *int64) ([]*models.Review, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).([]*models.Review)
	return res, args.Error(1)
}

func sampleReviews() []*models.Review {
	createdAt := time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC)
	return []*models.Review{
		{ID: 1, ProductID: 2, UserID: 7, Rating: 5, Title: "Great", Content: "Works fine", CreatedAt: createdAt},
		{ID: 2, ProductID: 3, UserID: 8, Rating: 2, Title: "Meh", Content: "Broke in a week", CreatedAt: createdAt},
	}
}

func TestExportHandler_JSON(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	mockService := new(MockService)
	mockService.On("Export", mock.Anything, (*int64)(nil)).Return(sampleReviews(), nil)

	handler := New(logger, mockService)

	req := httptest.NewRequest(http.MethodGet, "/export/reviews", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rating":5`)
	mockService.AssertExpectations(t)
}

func TestExportHandler_CSV(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	mockService := new(MockService)
	mockService.On("Export", mock.Anything, (*int64)(nil)).Return(sampleReviews(), nil)

	handler := New(logger, mockService)

	req := httptest.NewRequest(http.MethodGet, "/export/reviews?format=csv", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))

	body := strings.ReplaceAll(w.Body.String(), "\r\n", "\n")
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,product_id,user_id,rating,title,content,created_at", lines[0])
	assert.Equal(t, "1,2,7,5,Great,Works fine,2026-08-01 12:30:00", lines[1])
}

func TestExportHandler_FilterByUser(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	mockService := new(MockService)
	mockService.On("Export", mock.Anything, mock.MatchedBy(func(userID *int64) bool {
		return userID != nil && *userID == 7
	})).Return(sampleReviews()[:1], nil)

	handler := New(logger, mockService)

	req := httptest.NewRequest(http.MethodGet, "/export/reviews?user_id=7", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestExportHandler_BadParams(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name         string
		url          string
		expectedBody string
	}{
		{"нечисловой user_id", "/export/reviews?user_id=abc", "invalid user_id"},
		{"неизвестный формат", "/export/reviews?format=xml", "unsupported format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := New(logger, new(MockService))

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestExportHandler_EmptyResult(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	mockService := new(MockService)
	mockService.On("Export", mock.Anything, (*int64)(nil)).Return(nil, nil)

	handler := New(logger, mockService)

	req := httptest.NewRequest(http.MethodGet, "/export/reviews", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}
