package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kashvi-creations/storefront-api/internal/domain/entity"
	"github.com/kashvi-creations/storefront-api/pkg/helpers"
)

func newUserFixture() (*UserService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewUserService(repo, jwt, nil), repo
}

func TestRegister(t *testing.T) {
	in := RegisterInput{
		UserName: "asha",
		Email:    "asha@example.com",
		Password: "Saree-Lover#88",
		Phone:    "9876543210",
	}

	t.Run("creates user with default role", func(t *testing.T) {
		svc, _ := newUserFixture()
		u, err := svc.Register(context.Background(), in)
		if err != nil {
			t.Fatalf("register: %v", err)
		}
		if u.ID == "" {
			t.Error("user has no id")
		}
		if u.Role != entity.RoleUser {
			t.Errorf("role = %q, want %q", u.Role, entity.RoleUser)
		}
		if u.Password == in.Password {
			t.Error("password stored in plain text")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, _ := newUserFixture()
		if _, err := svc.Register(context.Background(), in); err != nil {
			t.Fatalf("first register: %v", err)
		}
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrEmailTaken) {
			t.Errorf("second register = %v, want ErrEmailTaken", err)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		svc, _ := newUserFixture()
		weak := in
		weak.Password = "password"
		if _, err := svc.Register(context.Background(), weak); !errors.Is(err, ErrWeakPassword) {
			t.Errorf("register = %v, want ErrWeakPassword", err)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	in := RegisterInput{UserName: "asha", Email: "asha@example.com", Password: "Saree-Lover#88"}

	t.Run("issues a parseable session token", func(t *testing.T) {
		svc, _ := newUserFixture()
		reg, err := svc.Register(ctx, in)
		if err != nil {
			t.Fatalf("register: %v", err)
		}

		u, token, exp, err := svc.Login(ctx, in.Email, in.Password)
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if u.ID != reg.ID {
			t.Errorf("login returned user %s, registered %s", u.ID, reg.ID)
		}
		if !exp.After(time.Now()) {
			t.Errorf("expiry %v is in the past", exp)
		}
		claims, err := svc.JWT.Parse(token)
		if err != nil {
			t.Fatalf("parse token: %v", err)
		}
		if claims.UserID != reg.ID || claims.Role != entity.RoleUser {
			t.Errorf("claims = %+v", claims)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _ := newUserFixture()
		if _, err := svc.Register(ctx, in); err != nil {
			t.Fatalf("register: %v", err)
		}
		if _, _, _, err := svc.Login(ctx, in.Email, "not-the-password"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("login = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, _ := newUserFixture()
		if _, _, _, err := svc.Login(ctx, "nobody@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("login = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestGetUser(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{UserName: "asha", Email: "asha@example.com", Password: "Saree-Lover#88"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	got, err := svc.GetUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Email != u.Email {
		t.Errorf("email = %q, want %q", got.Email, u.Email)
	}
	if _, err := svc.GetUser(ctx, fakeID(999)); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("get unknown = %v, want ErrUserNotFound", err)
	}
}
