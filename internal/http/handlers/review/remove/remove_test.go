package remove

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/review-platform/internal/errs"
	"github.com/magabrotheeeer/review-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/review-platform/internal/models"
)

// MockService реализует интерфейс remove.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Remove(ctx context.Context, reviewID int64, requester *models.User) error {
	args := m.Called(ctx, reviewID, requester)
	return args.Error(0)
}

func TestRemoveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	requester := &models.User{ID: 7, Username: "johndoe", Role: "user"}

	tests := []struct {
		name           string
		idParam        string
		identity       *models.User
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешное удаление",
			idParam:  "5",
			identity: requester,
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, int64(5), requester).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "review deleted successfully",
		},
		{
			name:           "некорректный id",
			idParam:        "abc",
			identity:       requester,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid id",
		},
		{
			name:           "без личности в контексте",
			idParam:        "5",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "unauthorized",
		},
		{
			name:     "отзыв не найден",
			idParam:  "99",
			identity: requester,
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, int64(99), requester).Return(errs.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "review not found",
		},
		{
			name:     "нет прав на удаление",
			idParam:  "5",
			identity: requester,
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, int64(5), requester).Return(errs.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   "not allowed to delete this review",
		},
		{
			name:     "ошибка сервиса",
			idParam:  "5",
			identity: requester,
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, int64(5), requester).Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "failed to delete review",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodDelete, "/reviews/"+tt.idParam, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.idParam)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.identity != nil {
				ctx = context.WithValue(ctx, middlewarectx.UserID, tt.identity.ID)
				ctx = context.WithValue(ctx, middlewarectx.User, tt.identity.Username)
				ctx = context.WithValue(ctx, middlewarectx.Role, tt.identity.Role)
			}
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
