package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentcatalog/internal/auth/domain"
	"github.com/smallbiznis/rentcatalog/internal/auth/password"
	"github.com/smallbiznis/rentcatalog/internal/clock"
	"github.com/smallbiznis/rentcatalog/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memRepo struct {
	mu     sync.Mutex
	users  map[string]domain.User
	nextID int64
}

func newMemRepo() *memRepo {
	return &memRepo{users: map[string]domain.User{}}
}

func (m *memRepo) Create(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.Username]; ok {
		return domain.ErrUserExists
	}
	m.nextID++
	user.ID = m.nextID
	m.users[user.Username] = *user
	return nil
}

func (m *memRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

type fixture struct {
	svc   domain.Service
	repo  *memRepo
	clock *clock.FakeClock
}

func newFixture(t *testing.T, expireMinutes int) fixture {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	repo := newMemRepo()
	fake := clock.NewFakeClock(time.Date(2025, 4, 21, 12, 0, 0, 0, time.UTC))
	svc, err := New(Params{
		Log: zap.NewNop(),
		Config: config.Config{Auth: config.AuthConfig{
			SecretKey:                "test-secret",
			Algorithm:                "HS256",
			AccessTokenExpireMinutes: expireMinutes,
		}},
		Repo:  repo,
		Clock: fake,
		GenID: node,
	})
	require.NoError(t, err)
	return fixture{svc: svc, repo: repo, clock: fake}
}

func register(t *testing.T, svc domain.Service, username, pw string) {
	t.Helper()
	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: username,
		Password: pw,
		Email:    username + "@example.com",
	})
	require.NoError(t, err)
}

func TestRegisterLoginCurrentUser(t *testing.T) {
	f := newFixture(t, 30)
	ctx := context.Background()

	resp, err := f.svc.Register(ctx, domain.RegisterRequest{
		Username: "alice",
		Password: "wonderland",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, &domain.RegisterResponse{Username: "alice", Email: "alice@example.com"}, resp)

	stored, err := f.repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "wonderland", stored.HashedPassword)

	user, err := f.svc.Authenticate(ctx, "alice", "wonderland")
	require.NoError(t, err)

	tok, err := f.svc.IssueToken(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "bearer", tok.TokenType)
	assert.NotEmpty(t, tok.AccessToken)

	me, err := f.svc.CurrentUser(ctx, tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", me.Username)
}

func TestUsernameStoredVerbatim(t *testing.T) {
	f := newFixture(t, 30)
	ctx := context.Background()

	resp, err := f.svc.Register(ctx, domain.RegisterRequest{
		Username: " alice ",
		Password: "wonderland",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, " alice ", resp.Username)

	user, err := f.svc.Authenticate(ctx, " alice ", "wonderland")
	require.NoError(t, err)
	tok, err := f.svc.IssueToken(ctx, user)
	require.NoError(t, err)

	me, err := f.svc.CurrentUser(ctx, tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, " alice ", me.Username)

	_, err = f.svc.Authenticate(ctx, "alice", "wonderland")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticateFailures(t *testing.T) {
	f := newFixture(t, 30)
	register(t, f.svc, "bob", "builder")

	_, err := f.svc.Authenticate(context.Background(), "bob", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.svc.Authenticate(context.Background(), "nobody", "builder")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.svc.Authenticate(context.Background(), "BOB", "builder")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t, 30)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, domain.RegisterRequest{Username: " ", Password: "x", Email: "a@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidUsername)

	_, err = f.svc.Register(ctx, domain.RegisterRequest{Username: "a", Password: "", Email: "a@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)

	overlong := strings.Repeat("p", password.MaxLength+8)
	_, err = f.svc.Register(ctx, domain.RegisterRequest{Username: "a", Password: overlong, Email: "a@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)

	for _, email := range []string{"", "not-an-email", "Alice <alice@example.com>"} {
		_, err = f.svc.Register(ctx, domain.RegisterRequest{Username: "a", Password: "x", Email: email})
		assert.ErrorIs(t, err, domain.ErrInvalidEmail, email)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	f := newFixture(t, 30)
	register(t, f.svc, "carol", "first")

	_, err := f.svc.Register(context.Background(), domain.RegisterRequest{
		Username: "carol",
		Password: "second",
		Email:    "other@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrUserExists)

	user, err := f.svc.Authenticate(context.Background(), "carol", "first")
	require.NoError(t, err)
	assert.Equal(t, "carol@example.com", user.Email)
}

func TestTokenExpiry(t *testing.T) {
	f := newFixture(t, 30)
	ctx := context.Background()
	register(t, f.svc, "dave", "pw")

	user, err := f.svc.Authenticate(ctx, "dave", "pw")
	require.NoError(t, err)
	tok, err := f.svc.IssueToken(ctx, user)
	require.NoError(t, err)

	f.clock.Advance(29 * time.Minute)
	_, err = f.svc.CurrentUser(ctx, tok.AccessToken)
	require.NoError(t, err)

	f.clock.Advance(2 * time.Minute)
	_, err = f.svc.CurrentUser(ctx, tok.AccessToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestNonPositiveLifetimeUsesFifteenMinutes(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	register(t, f.svc, "erin", "pw")

	user, err := f.svc.Authenticate(ctx, "erin", "pw")
	require.NoError(t, err)
	tok, err := f.svc.IssueToken(ctx, user)
	require.NoError(t, err)

	f.clock.Advance(14 * time.Minute)
	_, err = f.svc.CurrentUser(ctx, tok.AccessToken)
	require.NoError(t, err)

	f.clock.Advance(2 * time.Minute)
	_, err = f.svc.CurrentUser(ctx, tok.AccessToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestCurrentUserRejectsBadTokens(t *testing.T) {
	f := newFixture(t, 30)
	ctx := context.Background()

	_, err := f.svc.CurrentUser(ctx, "garbage")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	// Valid signature but the subject was never registered.
	tok, err := f.svc.IssueToken(ctx, &domain.User{Username: "ghost"})
	require.NoError(t, err)
	_, err = f.svc.CurrentUser(ctx, tok.AccessToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestNewRejectsNonHMACAlgorithm(t *testing.T) {
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	_, err = New(Params{
		Log:    zap.NewNop(),
		Config: config.Config{Auth: config.AuthConfig{SecretKey: "s", Algorithm: "RS256"}},
		Repo:   newMemRepo(),
		Clock:  clock.New(),
		GenID:  node,
	})
	assert.Error(t, err)
}
