package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kashvi-creations/storefront-api/internal/domain/entity"
	repo "github.com/kashvi-creations/storefront-api/internal/domain/repository"
	"github.com/kashvi-creations/storefront-api/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrWeakPassword       = errors.New("password is too weak")
)

// UserService covers registration and the session issuer.
type UserService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	UserName string
	Email    string
	Password string
	Phone    string
}

// Register creates a new account with the default role. The email must
// be unused and the password must pass the entropy policy.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if existing, _ := s.Repo.GetByEmail(in.Email); existing != nil {
		return nil, ErrEmailTaken
	}
	if !helpers.PasswordStrongEnough(in.Password) {
		return nil, ErrWeakPassword
	}
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		UserName: in.UserName,
		Email:    in.Email,
		Password: hash,
		Phone:    in.Phone,
		Role:     entity.RoleUser,
	}
	if err := s.Repo.Create(u); err != nil {
		// The unique index catches the register/register race.
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", in.Email).Warn("user insert failed")
		}
		return nil, ErrEmailTaken
	}
	return u, nil
}

// Login validates credentials and issues a session token encoding the
// user id and role, valid for the configured window.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil || u == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(u.ID, u.Role)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate session token failed")
		}
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

// GetUser loads a user by id for check-auth responses.
func (s *UserService) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
