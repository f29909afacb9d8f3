package service_test

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/adenisov/bookstore-service/internal/errs"
	"github.com/adenisov/bookstore-service/internal/model"
	repo_mocks "github.com/adenisov/bookstore-service/internal/repository/mocks"
	"github.com/adenisov/bookstore-service/internal/service"
	"github.com/adenisov/bookstore-service/pkg/auth"
)

func TestService_Register(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)

	var storedHash string
	repo.EXPECT().
		CreateUserWithProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user model.User) (model.User, error) {
			require.Equal(t, model.RoleCustomer, user.Role)
			require.True(t, user.IsActive)
			require.NotEqual(t, "secret123", user.PasswordHash)
			storedHash = user.PasswordHash
			user.ID = 1
			user.UserUid = "user-uid"
			return user, nil
		})

	svc := service.NewService(repo, nil, zap.NewNop())
	user, err := svc.Register(context.Background(), model.UserCreateRequest{
		Email:     "reader@example.com",
		Password:  "secret123",
		FirstName: "In",
		LastName:  "Cognito",
	})
	require.NoError(t, err)
	require.Equal(t, "user-uid", user.UserUid)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("secret123")))
}

func TestService_Login(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := model.User{
		ID:           1,
		UserUid:      "user-uid",
		Email:        "reader@example.com",
		PasswordHash: string(hash),
		Role:         model.RoleCustomer,
		IsActive:     true,
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		repo.EXPECT().GetUserByEmail(gomock.Any(), "reader@example.com").Return(stored, nil)
		repo.EXPECT().UpdateLastLogin(gomock.Any(), 1).Return(nil)

		svc := service.NewService(repo, nil, zap.NewNop())
		resp, err := svc.Login(context.Background(), model.AuthRequest{
			Email:    "reader@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		require.Equal(t, "user-uid", resp.User.UserUid)

		claims := new(auth.Claims)
		token, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
			return auth.JWTKey, nil
		})
		require.NoError(t, err)
		require.True(t, token.Valid)
		require.Equal(t, "user-uid", claims.Profile.UserUid)
		require.Equal(t, "customer", claims.Profile.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		repo.EXPECT().GetUserByEmail(gomock.Any(), "reader@example.com").Return(stored, nil)

		svc := service.NewService(repo, nil, zap.NewNop())
		_, err := svc.Login(context.Background(), model.AuthRequest{
			Email:    "reader@example.com",
			Password: "wrong",
		})
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		repo.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").Return(model.User{}, errs.ErrNotFound)

		svc := service.NewService(repo, nil, zap.NewNop())
		_, err := svc.Login(context.Background(), model.AuthRequest{
			Email:    "ghost@example.com",
			Password: "secret123",
		})
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestService_GetProfile(t *testing.T) {
	t.Parallel()

	customerID := 42
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().GetUser(gomock.Any(), "user-uid").Return(model.User{
		ID:         1,
		UserUid:    "user-uid",
		Role:       model.RoleCustomer,
		CustomerID: &customerID,
	}, nil)
	repo.EXPECT().GetCustomerByID(gomock.Any(), customerID).Return(model.Customer{
		ID:          customerID,
		CustomerUid: "customer-uid",
	}, nil)

	svc := service.NewService(repo, nil, zap.NewNop())
	profile, err := svc.GetProfile(context.Background(), "user-uid")
	require.NoError(t, err)
	require.Equal(t, model.ProfileCustomer, profile.Kind)
	require.NotNil(t, profile.Customer)
	require.Equal(t, "customer-uid", profile.Customer.CustomerUid)
	require.Nil(t, profile.Employee)
}
