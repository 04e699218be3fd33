// Package auth implements the account flows: email/password
// registration and login, OAuth login, and the best-effort login-attempt
// audit trail. All durable state lives in the injected content store;
// the package itself keeps none.
package auth

import (
	"context"
	"log/slog"
	"time"

	"RealtySiteAPI/models"
	"RealtySiteAPI/store"
	"RealtySiteAPI/utils"
)

type Service struct {
	store  store.ContentStore
	logger *slog.Logger
	now    func() time.Time
}

func NewService(contentStore store.ContentStore, logger *slog.Logger) *Service {
	return &Service{
		store:  contentStore,
		logger: logger,
		now:    time.Now,
	}
}

type RegisterInput struct {
	FullName         string
	Email            string
	Password         string
	RegistrationType string
	OAuthID          string
}

type OAuthInput struct {
	FullName string
	Email    string
	Provider string
	OAuthID  string
}

// Register creates an account. The email is normalized and checked for
// an existing account first; for email registrations the password is
// bcrypt-hashed, other registration types store an empty hash. Returns
// the public projection, never the hash.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.SessionUser, error) {
	email := utils.NormalizeEmail(in.Email)

	existing, err := s.store.Fetch(ctx, store.TypeUserRegistration, store.Fields{"email": email})
	if err != nil {
		return nil, operationFailed(err)
	}
	if len(existing) > 0 {
		return nil, ErrDuplicateEmail
	}

	passwordHash := ""
	if in.RegistrationType == models.RegistrationEmail && in.Password != "" {
		passwordHash, err = utils.HashPassword(in.Password)
		if err != nil {
			return nil, operationFailed(err)
		}
	}

	doc, err := s.store.Create(ctx, store.TypeUserRegistration, store.Fields{
		"fullName":         in.FullName,
		"email":            email,
		"passwordHash":     passwordHash,
		"registrationType": in.RegistrationType,
		"oauthId":          in.OAuthID,
		"status":           models.AccountActive,
		"registeredAt":     s.timestamp(),
	})
	if err != nil {
		return nil, operationFailed(err)
	}

	return &models.SessionUser{
		ID:       doc.ID,
		FullName: in.FullName,
		Email:    email,
		Status:   models.AccountActive,
	}, nil
}

// Login verifies an email/password pair against the stored account.
// An unknown email and a wrong password both come back as
// ErrInvalidCredentials; an inactive or suspended account with correct
// lookup comes back as ErrAccountNotActive. Every attempt, successful
// or not, is recorded as a loginAttempt document.
func (s *Service) Login(ctx context.Context, email, password, clientIP string) (*models.SessionUser, error) {
	normalized := utils.NormalizeEmail(email)
	success := false
	defer func() {
		s.recordAttempt(ctx, normalized, success, clientIP)
	}()

	docs, err := s.store.Fetch(ctx, store.TypeUserRegistration, store.Fields{
		"email":            normalized,
		"registrationType": models.RegistrationEmail,
	})
	if err != nil {
		return nil, operationFailed(err)
	}
	if len(docs) == 0 {
		return nil, ErrInvalidCredentials
	}
	account := docs[0]

	if account.String("status") != models.AccountActive {
		return nil, ErrAccountNotActive
	}

	if err := utils.CheckPassword(account.String("passwordHash"), password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.store.Patch(account.ID).Set(store.Fields{"lastLogin": s.timestamp()}).Commit(ctx); err != nil {
		return nil, operationFailed(err)
	}

	success = true
	return projection(account), nil
}

// OAuthLogin signs in a provider-verified user, creating the account on
// first contact. An existing account is matched by email alone; the
// stored oauthId is not compared against the caller's, so a provider
// mismatch is accepted. Tightening that check would lock out users who
// registered by email and later arrive through a provider.
func (s *Service) OAuthLogin(ctx context.Context, in OAuthInput) (*models.SessionUser, error) {
	email := utils.NormalizeEmail(in.Email)

	docs, err := s.store.Fetch(ctx, store.TypeUserRegistration, store.Fields{"email": email})
	if err != nil {
		return nil, operationFailed(err)
	}

	if len(docs) > 0 {
		account := docs[0]
		if err := s.store.Patch(account.ID).Set(store.Fields{"lastLogin": s.timestamp()}).Commit(ctx); err != nil {
			return nil, operationFailed(err)
		}
		return projection(account), nil
	}

	now := s.timestamp()
	doc, err := s.store.Create(ctx, store.TypeUserRegistration, store.Fields{
		"fullName":         in.FullName,
		"email":            email,
		"passwordHash":     "",
		"registrationType": in.Provider,
		"oauthId":          in.OAuthID,
		"status":           models.AccountActive,
		"registeredAt":     now,
		"lastLogin":        now,
	})
	if err != nil {
		return nil, operationFailed(err)
	}

	return &models.SessionUser{
		ID:       doc.ID,
		FullName: in.FullName,
		Email:    email,
		Status:   models.AccountActive,
	}, nil
}

// recordAttempt writes the login audit document. Best effort: a failed
// write is logged and never changes the login outcome.
func (s *Service) recordAttempt(ctx context.Context, email string, success bool, clientIP string) {
	_, err := s.store.Create(ctx, store.TypeLoginAttempt, store.Fields{
		"email":       email,
		"success":     success,
		"ipAddress":   clientIP,
		"attemptedAt": s.timestamp(),
	})
	if err != nil {
		s.logger.Warn("login attempt audit write failed",
			"email", email,
			"success", success,
			"error", err,
		)
	}
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func projection(doc store.Document) *models.SessionUser {
	return &models.SessionUser{
		ID:       doc.ID,
		FullName: doc.String("fullName"),
		Email:    doc.String("email"),
		Status:   doc.String("status"),
	}
}
