package auth

import (
	"context"
	"errors"
	"testing"

	"receiptbook/internal/models"
	"receiptbook/internal/storage"
)

// memStorage is an in-memory AdminStorage for exercising the credential
// store without a database.
type memStorage struct {
	admin *models.Admin
}

func (m *memStorage) GetAdmin(_ context.Context) (*models.Admin, error) {
	if m.admin == nil {
		return nil, storage.ErrNotFound
	}
	cp := *m.admin
	return &cp, nil
}

func (m *memStorage) PutAdmin(_ context.Context, admin *models.Admin) error {
	cp := *admin
	m.admin = &cp
	return nil
}

func TestStatusBeforeAndAfterSetup(t *testing.T) {
	ctx := context.Background()
	creds := NewCredentialStore(&memStorage{})

	status, err := creds.Status(ctx)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if status.IsSetup {
		t.Error("IsSetup = true before setup")
	}

	if err := creds.SetupPassword(ctx, "U", "secret"); err != nil {
		t.Fatalf("SetupPassword failed: %v", err)
	}

	status, err = creds.Status(ctx)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if !status.IsSetup || status.AuthMethod != models.AuthPassword || status.Username != "U" {
		t.Errorf("unexpected status: %+v", status)
	}
}

func TestSetupSeedsDefaults(t *testing.T) {
	ctx := context.Background()
	mem := &memStorage{}
	creds := NewCredentialStore(mem)

	if err := creds.SetupPIN(ctx, "1234"); err != nil {
		t.Fatalf("SetupPIN failed: %v", err)
	}

	admin := mem.admin
	if admin.Name != "Admin" {
		t.Errorf("Name = %q, want Admin", admin.Name)
	}
	if admin.SocietyName != "Demo Apartment Division" ||
		admin.SocietyAddress != "Demo Address" ||
		admin.SocietyRegNo != "REG.NO Demo" {
		t.Errorf("society placeholders not seeded: %+v", *admin)
	}
	if admin.Username != "" {
		t.Errorf("PIN setup must not store a username, got %q", admin.Username)
	}
	if admin.SecretHash == "1234" || admin.SecretHash == "" {
		t.Error("secret stored without digesting")
	}
}

func TestVerifyPassword(t *testing.T) {
	ctx := context.Background()
	creds := NewCredentialStore(&memStorage{})

	if ok, err := creds.VerifyPassword(ctx, "U", "secret"); err != nil || ok {
		t.Errorf("VerifyPassword before setup = (%v, %v), want (false, nil)", ok, err)
	}

	if err := creds.SetupPassword(ctx, "U", "secret"); err != nil {
		t.Fatalf("SetupPassword failed: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"correct pair", "U", "secret", true},
		{"wrong password", "U", "Secret", false},
		{"wrong username", "V", "secret", false},
		{"both wrong", "V", "x", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := creds.VerifyPassword(ctx, tt.username, tt.password)
			if err != nil {
				t.Fatalf("VerifyPassword failed: %v", err)
			}
			if ok != tt.want {
				t.Errorf("VerifyPassword(%q, %q) = %v, want %v", tt.username, tt.password, ok, tt.want)
			}
		})
	}
}

func TestVerifyPin(t *testing.T) {
	ctx := context.Background()
	creds := NewCredentialStore(&memStorage{})

	if err := creds.SetupPIN(ctx, "1234"); err != nil {
		t.Fatalf("SetupPIN failed: %v", err)
	}

	if ok, _ := creds.VerifyPin(ctx, "1234"); !ok {
		t.Error("VerifyPin with correct PIN = false")
	}
	if ok, _ := creds.VerifyPin(ctx, "0000"); ok {
		t.Error("VerifyPin with wrong PIN = true")
	}
}

func TestVerifyPinRejectsPasswordModeProfile(t *testing.T) {
	ctx := context.Background()
	creds := NewCredentialStore(&memStorage{})

	if err := creds.SetupPassword(ctx, "U", "1234"); err != nil {
		t.Fatalf("SetupPassword failed: %v", err)
	}

	// The digests match, but cross-mode verification must still fail.
	if ok, _ := creds.VerifyPin(ctx, "1234"); ok {
		t.Error("VerifyPin succeeded against a password-mode profile")
	}
}

func TestSetupValidation(t *testing.T) {
	ctx := context.Background()
	creds := NewCredentialStore(&memStorage{})

	if err := creds.SetupPassword(ctx, "", "secret"); !errors.Is(err, ErrEmptyUsername) {
		t.Errorf("SetupPassword with empty username = %v, want ErrEmptyUsername", err)
	}
	if err := creds.SetupPassword(ctx, "U", ""); !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("SetupPassword with empty password = %v, want ErrEmptyPassword", err)
	}

	for _, pin := range []string{"", "123", "12345", "12a4", "١٢٣٤"} {
		if err := creds.SetupPIN(ctx, pin); !errors.Is(err, ErrInvalidPIN) {
			t.Errorf("SetupPIN(%q) = %v, want ErrInvalidPIN", pin, err)
		}
	}
}

func TestUpdateAdminMergesWithoutTouchingCredentials(t *testing.T) {
	ctx := context.Background()
	mem := &memStorage{}
	creds := NewCredentialStore(mem)

	// No-op before setup.
	name := "R. Mehta"
	if err := creds.UpdateAdmin(ctx, models.ProfileUpdate{Name: &name}); err != nil {
		t.Fatalf("UpdateAdmin before setup = %v, want nil", err)
	}
	if mem.admin != nil {
		t.Fatal("UpdateAdmin before setup created a profile")
	}

	if err := creds.SetupPassword(ctx, "U", "secret"); err != nil {
		t.Fatalf("SetupPassword failed: %v", err)
	}
	hashBefore := mem.admin.SecretHash

	society := "Green View CHS"
	if err := creds.UpdateAdmin(ctx, models.ProfileUpdate{Name: &name, SocietyName: &society}); err != nil {
		t.Fatalf("UpdateAdmin failed: %v", err)
	}

	admin, err := creds.Admin(ctx)
	if err != nil {
		t.Fatalf("Admin failed: %v", err)
	}
	if admin.Name != name || admin.SocietyName != society {
		t.Errorf("patch not applied: %+v", *admin)
	}
	if admin.SocietyAddress != "Demo Address" {
		t.Errorf("unpatched field changed: %q", admin.SocietyAddress)
	}
	if admin.SecretHash != hashBefore || admin.AuthMethod != models.AuthPassword || admin.Username != "U" {
		t.Error("UpdateAdmin touched credentials")
	}
}

func TestUpdateSecretGuardsMode(t *testing.T) {
	ctx := context.Background()
	creds := NewCredentialStore(&memStorage{})

	if err := creds.UpdatePassword(ctx, "next"); !errors.Is(err, ErrNotSetup) {
		t.Errorf("UpdatePassword before setup = %v, want ErrNotSetup", err)
	}

	if err := creds.SetupPassword(ctx, "U", "secret"); err != nil {
		t.Fatalf("SetupPassword failed: %v", err)
	}

	if err := creds.UpdatePin(ctx, "1234"); !errors.Is(err, ErrAuthMethodMismatch) {
		t.Errorf("UpdatePin on password profile = %v, want ErrAuthMethodMismatch", err)
	}

	if err := creds.UpdatePassword(ctx, "next"); err != nil {
		t.Fatalf("UpdatePassword failed: %v", err)
	}
	if ok, _ := creds.VerifyPassword(ctx, "U", "next"); !ok {
		t.Error("new password does not verify")
	}
	if ok, _ := creds.VerifyPassword(ctx, "U", "secret"); ok {
		t.Error("old password still verifies")
	}
}

func TestDigest(t *testing.T) {
	// Fixed vector so the stored format never drifts: hex SHA-256.
	const want = "2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b"
	if got := Digest("secret"); got != want {
		t.Errorf("Digest(\"secret\") = %q, want %q", got, want)
	}
	if Digest("a") == Digest("b") {
		t.Error("distinct secrets digest equal")
	}
}
