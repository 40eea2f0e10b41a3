package service

import (
	"context"
	"net/url"

	"algoarena/internal/common"
	"algoarena/internal/common/security"
	"algoarena/internal/domain/model"
)

// The single credential pair the demo accepts.
const (
	demoEmail    = "1234"
	demoPassword = "1234"
)

type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) DecodeForm(values url.Values) {
	r.Email = values.Get("email")
	r.Password = values.Get("password")
}

type AuthResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    *model.User `json:"user"`
}

// Login checks the demo credential pair with exact string equality. There is
// no account store, no hashing and no lockout behind it.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Email != demoEmail || req.Password != demoPassword {
		return nil, common.Errorf("invalid credentials: %w", common.ErrUnauthorized)
	}

	user := demoUser()
	token, err := security.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, common.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{Success: true, Token: token, User: user}, nil
}

// UserFromClaims rebuilds the demo profile for an authenticated request.
// The token is the only session state, so everything beyond the identity
// claims is the same fabricated data login returns.
func (s *AuthService) UserFromClaims(userID, username, role string) *model.User {
	user := demoUser()
	user.ID = userID
	user.Username = username
	user.Role = role
	return user
}

func demoUser() *model.User {
	return &model.User{
		ID:          "demo-user-id",
		Username:    "demo_user",
		Email:       "demo@example.com",
		Name:        "Demo User",
		Role:        model.RoleUser,
		TotalPoints: 1250,
		Rank:        42,
		Level:       5,
	}
}
