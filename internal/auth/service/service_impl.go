package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/go-playground/validator/v10"
	"github.com/smallbiznis/rentcatalog/internal/auth/domain"
	"github.com/smallbiznis/rentcatalog/internal/auth/password"
	"github.com/smallbiznis/rentcatalog/internal/auth/token"
	"github.com/smallbiznis/rentcatalog/internal/clock"
	"github.com/smallbiznis/rentcatalog/internal/config"
	"github.com/smallbiznis/rentcatalog/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// emailValidator applies the same address rule as the request binding.
var emailValidator = validator.New()

type Params struct {
	fx.In

	Log     *zap.Logger
	Config  config.Config
	Repo    domain.Repository
	Clock   clock.Clock
	GenID   *snowflake.Node
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	log     *zap.Logger
	repo    domain.Repository
	clock   clock.Clock
	genID   *snowflake.Node
	signer  *token.Signer
	ttl     time.Duration
	metrics *metrics.Metrics
}

func New(p Params) (domain.Service, error) {
	signer, err := token.NewSigner(p.Config.Auth.SecretKey, p.Config.Auth.Algorithm)
	if err != nil {
		return nil, err
	}
	return &Service{
		log:     p.Log.Named("auth.service"),
		repo:    p.Repo,
		clock:   p.Clock,
		genID:   p.GenID,
		signer:  signer,
		ttl:     time.Duration(p.Config.Auth.AccessTokenExpireMinutes) * time.Minute,
		metrics: p.Metrics,
	}, nil
}

// Register stores the username exactly as given; lookups use the same form.
func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegisterResponse, error) {
	username := req.Username
	if strings.TrimSpace(username) == "" {
		return nil, domain.ErrInvalidUsername
	}
	if req.Password == "" || len(req.Password) > password.MaxLength {
		return nil, domain.ErrInvalidPassword
	}
	email := strings.TrimSpace(req.Email)
	if err := emailValidator.Var(email, "required,email"); err != nil {
		return nil, domain.ErrInvalidEmail
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		s.metrics.RecordRegistration(ctx, "duplicate")
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:       username,
		Email:          email,
		HashedPassword: hashed,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			s.metrics.RecordRegistration(ctx, "duplicate")
		}
		return nil, err
	}

	s.metrics.RecordRegistration(ctx, "created")
	s.log.Info("user registered", zap.Int64("user_id", user.ID))
	return &domain.RegisterResponse{Username: user.Username, Email: user.Email}, nil
}

// Authenticate checks the credentials. Unknown users and wrong passwords both
// yield ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, pw string) (*domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.metrics.RecordLoginFailure(ctx, "unknown_user")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !password.Verify(pw, user.HashedPassword) {
		s.metrics.RecordLoginFailure(ctx, "bad_password")
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) IssueToken(ctx context.Context, user *domain.User) (*domain.TokenResponse, error) {
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	raw, _, err := s.signer.Issue(user.Username, s.genID.Generate().String(), s.clock.Now(), s.ttl)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordTokenIssued(ctx)
	return &domain.TokenResponse{AccessToken: raw, TokenType: domain.TokenTypeBearer}, nil
}

// CurrentUser resolves a bearer token to its user. Any decode, signature or
// expiry failure and any unknown subject yields ErrInvalidToken.
func (s *Service) CurrentUser(ctx context.Context, rawToken string) (*domain.User, error) {
	subject, err := s.signer.Parse(strings.TrimSpace(rawToken), s.clock.Now())
	if err != nil {
		s.log.Debug("token rejected", zap.Error(err))
		return nil, domain.ErrInvalidToken
	}

	user, err := s.repo.FindByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}
