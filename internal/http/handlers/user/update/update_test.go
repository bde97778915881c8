package update

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/review-platform/internal/errs"
	"github.com/magabrotheeeer/review-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/review-platform/internal/models"
)

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, targetID int64, requester *models.User, upd models.UserUpdate) error {
	args := m.Called(ctx, targetID, requester, upd)
	return args.Error(0)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	requester := &models.User{ID: 7, Username: "johndoe", Role: "user"}

	tests := []struct {
		name           string
		idParam        string
		body           string
		identity       *models.User
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешное обновление",
			idParam:  "7",
			body:     `{"email":"new@example.com"}`,
			identity: requester,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, int64(7), requester, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "user updated successfully",
		},
		{
			name:           "некорректный id",
			idParam:        "abc",
			body:           `{"email":"new@example.com"}`,
			identity:       requester,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid id",
		},
		{
			name:           "некорректная почта",
			idParam:        "7",
			body:           `{"email":"not-an-email"}`,
			identity:       requester,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "field Email must be a valid email",
		},
		{
			name:           "недопустимая роль",
			idParam:        "7",
			body:           `{"role":"superadmin"}`,
			identity:       requester,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "field Role has an unsupported value",
		},
		{
			name:           "без личности в контексте",
			idParam:        "7",
			body:           `{"email":"new@example.com"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "unauthorized",
		},
		{
			name:     "нет прав на изменение",
			idParam:  "8",
			body:     `{"email":"new@example.com"}`,
			identity: requester,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, int64(8), requester, mock.Anything).
					Return(errs.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   "not allowed to update this profile",
		},
		{
			name:     "пользователь не найден",
			idParam:  "99",
			body:     `{"email":"new@example.com"}`,
			identity: &models.User{ID: 1, Username: "admin", Role: "admin"},
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, int64(99), mock.Anything, mock.Anything).
					Return(errs.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "user not found",
		},
		{
			name:     "почта уже занята",
			idParam:  "7",
			body:     `{"email":"taken@example.com"}`,
			identity: requester,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, int64(7), requester, mock.Anything).
					Return(errs.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   "email already in use",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPut, "/users/"+tt.idParam, strings.NewReader(tt.body))
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
