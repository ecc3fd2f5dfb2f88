package domain

import "context"

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	Authenticate(ctx context.Context, username, password string) (*User, error)
	IssueToken(ctx context.Context, user *User) (*TokenResponse, error)
	CurrentUser(ctx context.Context, rawToken string) (*User, error)
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type RegisterResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

const TokenTypeBearer = "bearer"

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse is the profile returned to the token holder. FullName and
// Disabled are not stored and are always null.
type UserResponse struct {
	Username string  `json:"username"`
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Disabled *bool   `json:"disabled"`
}

func (u User) Response() UserResponse {
	email := u.Email
	return UserResponse{
		Username: u.Username,
		Email:    &email,
	}
}
