package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/adenisov/bookstore-service/internal/errs"
	"github.com/adenisov/bookstore-service/internal/model"
	"github.com/adenisov/bookstore-service/pkg/auth"
)

const tokenTTL = 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid email or password")

func (s *Service) Register(ctx context.Context, req model.UserCreateRequest) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, errors.Wrap(err, "hash password")
	}
	role := req.Role
	if role == "" {
		role = model.RoleCustomer
	}
	user := model.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	created, err := s.repo.CreateUserWithProfile(ctx, user)
	if err != nil {
		return model.User{}, err
	}
	s.log.Info("user registered",
		zap.String("userUid", created.UserUid),
		zap.String("role", string(created.Role)))
	return created, nil
}

func (s *Service) Login(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}
	if !user.IsActive {
		return model.AuthResponse{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if err := s.repo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.log.Warn("update last login", zap.Error(err))
	}
	return model.AuthResponse{Token: token, User: user}, nil
}

func (s *Service) issueToken(user model.User) (string, error) {
	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserUid,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	claims.Profile.UserUid = user.UserUid
	claims.Profile.Email = user.Email
	claims.Profile.Role = string(user.Role)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(auth.JWTKey)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

func (s *Service) GetUser(ctx context.Context, userUid string) (model.User, error) {
	return s.repo.GetUser(ctx, userUid)
}

// GetProfile resolves the user's linked record by role: customers carry
// a customer profile, employees and admins an employee one.
func (s *Service) GetProfile(ctx context.Context, userUid string) (model.Profile, error) {
	user, err := s.repo.GetUser(ctx, userUid)
	if err != nil {
		return model.Profile{}, err
	}
	switch user.Role {
	case model.RoleCustomer:
		if user.CustomerID == nil {
			return model.Profile{}, errors.Wrap(errs.ErrNotFound, "customer profile")
		}
		customer, err := s.repo.GetCustomerByID(ctx, *user.CustomerID)
		if err != nil {
			return model.Profile{}, err
		}
		return model.Profile{Kind: model.ProfileCustomer, Customer: &customer}, nil
	case model.RoleEmployee, model.RoleAdmin:
		if user.EmployeeID == nil {
			return model.Profile{}, errors.Wrap(errs.ErrNotFound, "employee profile")
		}
		employee, err := s.repo.GetEmployeeByID(ctx, *user.EmployeeID)
		if err != nil {
			return model.Profile{}, err
		}
		return model.Profile{Kind: model.ProfileEmployee, Employee: &employee}, nil
	default:
		return model.Profile{}, errors.Wrapf(errs.ErrNotFound, "no profile for role %q", user.Role)
	}
}

// DeleteUserAndProfile removes the user and its linked profile in one
// transaction.
func (s *Service) DeleteUserAndProfile(ctx context.Context, userUid string) error {
	if err := s.repo.DeleteUserAndProfile(ctx, userUid); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.String("userUid", userUid))
	return nil
}
