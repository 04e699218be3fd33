package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RealtySiteAPI/models"
	"RealtySiteAPI/store"
)

func newTestService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(mem, logger), mem
}

func registerInput() RegisterInput {
	return RegisterInput{
		FullName:         "Ada Lovelace",
		Email:            "a@x.com",
		Password:         "secret123",
		RegistrationType: models.RegistrationEmail,
	}
}

func TestRegisterReturnsProjectionWithoutHash(t *testing.T) {
	svc, mem := newTestService(t)

	user, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Ada Lovelace", user.FullName)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, models.AccountActive, user.Status)

	docs := mem.Documents(store.TypeUserRegistration)
	require.Len(t, docs, 1)
	assert.NotEmpty(t, docs[0].String("passwordHash"))
	assert.NotEqual(t, "secret123", docs[0].String("passwordHash"))
	assert.NotEmpty(t, docs[0].String("registeredAt"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerInput())
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	in := registerInput()
	in.Email = "  A@X.COM "
	_, err = svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegisterStoreFailure(t *testing.T) {
	svc, mem := newTestService(t)
	mem.FetchErr = errors.New("connection refused")

	_, err := svc.Register(context.Background(), registerInput())
	assert.ErrorIs(t, err, ErrOperationFailed)
}

func TestLoginSuccess(t *testing.T) {
	svc, mem := newTestService(t)
	registered, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "A@x.com", "secret123", "203.0.113.9")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "a@x.com", user.Email)

	account, err := mem.FetchByID(context.Background(), store.TypeUserRegistration, user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, account.String("lastLogin"))

	attempts := mem.Documents(store.TypeLoginAttempt)
	require.Len(t, attempts, 1)
	assert.Equal(t, "a@x.com", attempts[0].String("email"))
	assert.True(t, attempts[0].Bool("success"))
	assert.Equal(t, "203.0.113.9", attempts[0].String("ipAddress"))
}

func TestLoginWrongPasswordStillRecordsAttempt(t *testing.T) {
	svc, mem := newTestService(t)
	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "a@x.com", "wrong-password", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	attempts := mem.Documents(store.TypeLoginAttempt)
	require.Len(t, attempts, 1)
	assert.False(t, attempts[0].Bool("success"))
}

func TestLoginUnknownEmailIndistinguishableFromWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, unknownErr := svc.Login(context.Background(), "nobody@x.com", "whatever", "")
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
}

func TestLoginSuspendedAccountWithCorrectPassword(t *testing.T) {
	svc, mem := newTestService(t)
	user, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	err = mem.Patch(user.ID).Set(store.Fields{"status": models.AccountSuspended}).Commit(context.Background())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "a@x.com", "secret123", "")
	assert.ErrorIs(t, err, ErrAccountNotActive)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginAuditFailureDoesNotChangeOutcome(t *testing.T) {
	svc, mem := newTestService(t)
	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	// Only the audit path calls Create during login.
	mem.CreateErr = errors.New("write refused")

	user, err := svc.Login(context.Background(), "a@x.com", "secret123", "")
	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestLoginStoreUnreachable(t *testing.T) {
	svc, mem := newTestService(t)
	mem.FetchErr = errors.New("connection refused")

	_, err := svc.Login(context.Background(), "a@x.com", "secret123", "")
	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIgnoresOAuthOnlyAccounts(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.OAuthLogin(context.Background(), OAuthInput{
		FullName: "Grace Hopper",
		Email:    "g@x.com",
		Provider: models.RegistrationGoogle,
		OAuthID:  "google-123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "g@x.com", "anything", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestOAuthLoginCreatesAccountOnFirstContact(t *testing.T) {
	svc, mem := newTestService(t)

	user, err := svc.OAuthLogin(context.Background(), OAuthInput{
		FullName: "Grace Hopper",
		Email:    "G@x.com",
		Provider: models.RegistrationGitHub,
		OAuthID:  "gh-42",
	})
	require.NoError(t, err)
	assert.Equal(t, "g@x.com", user.Email)
	assert.Equal(t, models.AccountActive, user.Status)

	docs := mem.Documents(store.TypeUserRegistration)
	require.Len(t, docs, 1)
	assert.Equal(t, models.RegistrationGitHub, docs[0].String("registrationType"))
	assert.Equal(t, "gh-42", docs[0].String("oauthId"))
	assert.Empty(t, docs[0].String("passwordHash"))
	assert.Equal(t, docs[0].String("registeredAt"), docs[0].String("lastLogin"))
}

func TestOAuthLoginReusesExistingAccountByEmail(t *testing.T) {
	svc, mem := newTestService(t)
	registered, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	user, err := svc.OAuthLogin(context.Background(), OAuthInput{
		FullName: "Someone Else",
		Email:    "a@x.com",
		Provider: models.RegistrationGoogle,
		OAuthID:  "google-999",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	// The existing account is reused as-is, no second document appears.
	docs := mem.Documents(store.TypeUserRegistration)
	assert.Len(t, docs, 1)

	account, err := mem.FetchByID(context.Background(), store.TypeUserRegistration, registered.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, account.String("lastLogin"))
}
