// Package auth implements the administrator credential store: first-run
// setup, login verification, and profile maintenance for the singleton
// admin record.
package auth

import (
	"context"
	"errors"
	"fmt"

	"receiptbook/internal/models"
	"receiptbook/internal/storage"
)

var (
	ErrEmptyUsername      = errors.New("username must not be empty")
	ErrEmptyPassword      = errors.New("password must not be empty")
	ErrInvalidPIN         = errors.New("pin must be exactly 4 digits")
	ErrNotSetup           = errors.New("no admin profile exists")
	ErrAuthMethodMismatch = errors.New("operation does not match the configured auth method")
)

// Default profile values seeded at setup; the admin edits them later
// from profile settings.
const (
	defaultAdminName      = "Admin"
	defaultSocietyName    = "Demo Apartment Division"
	defaultSocietyAddress = "Demo Address"
	defaultSocietyRegNo   = "REG.NO Demo"
)

// AdminStorage defines the persistence operations the credential store
// needs. This keeps it independent of the storage implementation.
type AdminStorage interface {
	GetAdmin(ctx context.Context) (*models.Admin, error)
	PutAdmin(ctx context.Context, admin *models.Admin) error
}

// CredentialStore answers "is setup done" and "does this secret match"
// over the singleton admin profile.
type CredentialStore struct {
	storage AdminStorage
}

// NewCredentialStore creates a credential store over the given storage.
func NewCredentialStore(storage AdminStorage) *CredentialStore {
	return &CredentialStore{storage: storage}
}

// Status reports whether setup has run and, if so, which auth method is
// configured. Username is populated only for password mode.
func (c *CredentialStore) Status(ctx context.Context) (models.AuthStatus, error) {
	admin, err := c.storage.GetAdmin(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return models.AuthStatus{IsSetup: false}, nil
	}
	if err != nil {
		return models.AuthStatus{}, fmt.Errorf("load admin profile: %w", err)
	}
	return models.AuthStatus{
		IsSetup:    true,
		AuthMethod: admin.AuthMethod,
		Username:   admin.Username,
	}, nil
}

// SetupPassword creates the admin profile in password mode, seeding the
// default society metadata. Any existing profile is overwritten
// unconditionally; guarding against re-setup is the caller's job.
func (c *CredentialStore) SetupPassword(ctx context.Context, username, password string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if password == "" {
		return ErrEmptyPassword
	}
	admin := newDefaultAdmin()
	admin.AuthMethod = models.AuthPassword
	admin.Username = username
	admin.SecretHash = Digest(password)
	if err := c.storage.PutAdmin(ctx, admin); err != nil {
		return fmt.Errorf("create admin profile: %w", err)
	}
	return nil
}

// SetupPIN creates the admin profile in PIN mode. The PIN must be
// exactly 4 digits; no username is stored.
func (c *CredentialStore) SetupPIN(ctx context.Context, pin string) error {
	if err := validatePIN(pin); err != nil {
		return err
	}
	admin := newDefaultAdmin()
	admin.AuthMethod = models.AuthPIN
	admin.SecretHash = Digest(pin)
	if err := c.storage.PutAdmin(ctx, admin); err != nil {
		return fmt.Errorf("create admin profile: %w", err)
	}
	return nil
}

// VerifyPassword reports whether the username/password pair matches the
// stored credentials. A missing profile, a PIN-mode profile, or a
// username mismatch all verify false without error; only storage
// failures are errors.
func (c *CredentialStore) VerifyPassword(ctx context.Context, username, password string) (bool, error) {
	admin, err := c.storage.GetAdmin(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load admin profile: %w", err)
	}
	if admin.AuthMethod != models.AuthPassword || admin.Username != username {
		return false, nil
	}
	return Digest(password) == admin.SecretHash, nil
}

// VerifyPin reports whether the PIN matches the stored credentials.
// A profile configured for password auth verifies false: cross-mode
// verification is rejected, not left to hash coincidence.
func (c *CredentialStore) VerifyPin(ctx context.Context, pin string) (bool, error) {
	admin, err := c.storage.GetAdmin(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load admin profile: %w", err)
	}
	if admin.AuthMethod != models.AuthPIN {
		return false, nil
	}
	return Digest(pin) == admin.SecretHash, nil
}

// Admin returns the full profile, or ErrNotSetup when setup has not run.
func (c *CredentialStore) Admin(ctx context.Context) (*models.Admin, error) {
	admin, err := c.storage.GetAdmin(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotSetup
	}
	if err != nil {
		return nil, fmt.Errorf("load admin profile: %w", err)
	}
	return admin, nil
}

// UpdateAdmin merges the patch into the existing profile. It never
// touches the auth method or the secret hash. A no-op when no profile
// exists, matching the original behavior of silent profile edits before
// setup.
func (c *CredentialStore) UpdateAdmin(ctx context.Context, update models.ProfileUpdate) error {
	admin, err := c.storage.GetAdmin(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load admin profile: %w", err)
	}
	merged := update.Apply(*admin)
	if err := c.storage.PutAdmin(ctx, &merged); err != nil {
		return fmt.Errorf("update admin profile: %w", err)
	}
	return nil
}

// UpdatePassword replaces the secret digest on a password-mode profile.
// Calling it on a PIN-mode profile returns ErrAuthMethodMismatch rather
// than silently replacing the other mode's secret.
func (c *CredentialStore) UpdatePassword(ctx context.Context, newPassword string) error {
	if newPassword == "" {
		return ErrEmptyPassword
	}
	return c.replaceSecret(ctx, models.AuthPassword, Digest(newPassword))
}

// UpdatePin replaces the secret digest on a PIN-mode profile, with the
// same mode guard as UpdatePassword.
func (c *CredentialStore) UpdatePin(ctx context.Context, newPIN string) error {
	if err := validatePIN(newPIN); err != nil {
		return err
	}
	return c.replaceSecret(ctx, models.AuthPIN, Digest(newPIN))
}

func (c *CredentialStore) replaceSecret(ctx context.Context, method models.AuthMethod, hash string) error {
	admin, err := c.storage.GetAdmin(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotSetup
	}
	if err != nil {
		return fmt.Errorf("load admin profile: %w", err)
	}
	if admin.AuthMethod != method {
		return ErrAuthMethodMismatch
	}
	admin.SecretHash = hash
	if err := c.storage.PutAdmin(ctx, admin); err != nil {
		return fmt.Errorf("update admin profile: %w", err)
	}
	return nil
}

func newDefaultAdmin() *models.Admin {
	return &models.Admin{
		ID:             models.AdminID,
		Name:           defaultAdminName,
		SocietyName:    defaultSocietyName,
		SocietyAddress: defaultSocietyAddress,
		SocietyRegNo:   defaultSocietyRegNo,
	}
}

func validatePIN(pin string) error {
	if len(pin) != 4 {
		return ErrInvalidPIN
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return ErrInvalidPIN
		}
	}
	return nil
}
