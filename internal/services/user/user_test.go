package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/review-platform/internal/errs"
	"github.com/magabrotheeeer/review-platform/internal/lib/password"
	"github.com/magabrotheeeer/review-platform/internal/models"
)

// MockRepository реализует интерфейс Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetUser(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]*models.User)
	return res, args.Error(1)
}

func (m *MockRepository) UpdateUser(ctx context.Context, id int64, upd models.UserUpdate, passwordHash *string) error {
	args := m.Called(ctx, id, upd, passwordHash)
	return args.Error(0)
}

func strptr(s string) *string { return &s }

func TestUpdate(t *testing.T) {
	tests := []struct {
		name      string
		targetID  int64
		requester *models.User
		upd       models.UserUpdate
		wantCall  bool
		wantErr   error
	}{
		{
			name:      "пользователь меняет свой email",
			targetID:  7,
			requester: &models.User{ID: 7, Role: models.RoleUser},
			upd:       models.UserUpdate{Email: strptr("new@example.com")},
			wantCall:  true,
		},
		{
			name:      "пользователь не может менять чужой профиль",
			targetID:  8,
			requester: &models.User{ID: 7, Role: models.RoleUser},
			upd:       models.UserUpdate{Email: strptr("new@example.com")},
			wantErr:   errs.ErrForbidden,
		},
		{
			name:      "эскалация роли через свой профиль запрещена",
			targetID:  7,
			requester: &models.User{ID: 7, Role: models.RoleUser},
			upd:       models.UserUpdate{Role: strptr(models.RoleAdmin)},
			wantErr:   errs.ErrForbidden,
		},
		{
			name:      "администратор меняет роль другого пользователя",
			targetID:  7,
			requester: &models.User{ID: 1, Role: models.RoleAdmin},
			upd:       models.UserUpdate{Role: strptr(models.RoleAdmin)},
			wantCall:  true,
		},
		{
			name:     "без личности запрос отклоняется",
			targetID: 7,
			upd:      models.UserUpdate{Email: strptr("new@example.com")},
			wantErr:  errs.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			if tt.wantCall {
				repo.On("UpdateUser", mock.Anything, tt.targetID, tt.upd, mock.Anything).
					Return(nil).Once()
			}

			service := New(repo)
			err := service.Update(context.Background(), tt.targetID, tt.requester, tt.upd)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "UpdateUser")
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUpdate_HashesPassword(t *testing.T) {
	repo := new(MockRepository)
	upd := models.UserUpdate{Password: strptr("newpassword")}

	repo.On("UpdateUser", mock.Anything, int64(7), upd, mock.MatchedBy(func(hash *string) bool {
		// В хранилище уходит хэш, а не исходный пароль
		return hash != nil && *hash != "newpassword" &&
			password.CompareHash(*hash, "newpassword") == nil
	})).Return(nil).Once()

	service := New(repo)
	err := service.Update(context.Background(), 7, &models.User{ID: 7, Role: models.RoleUser}, upd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("UpdateUser", mock.Anything, int64(99), mock.Anything, mock.Anything).
		Return(errs.ErrNotFound).Once()

	service := New(repo)
	err := service.Update(context.Background(), 99, &models.User{ID: 1, Role: models.RoleAdmin},
		models.UserUpdate{Email: strptr("new@example.com")})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestReadAndListAll(t *testing.T) {
	repo := new(MockRepository)
	stored := &models.User{ID: 7, Username: "johndoe"}

	repo.On("GetUser", mock.Anything, int64(7)).Return(stored, nil).Once()
	repo.On("ListUsers", mock.Anything).Return([]*models.User{stored}, nil).Once()

	service := New(repo)

	got, err := service.Read(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	users, err := service.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
