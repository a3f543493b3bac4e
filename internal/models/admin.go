package models

// AuthMethod selects how the administrator proves their identity.
// The two modes are mutually exclusive: a profile is created with one
// of them and never switches.
type AuthMethod string

const (
	AuthPassword AuthMethod = "password"
	AuthPIN      AuthMethod = "pin"
)

// AdminID is the fixed key of the singleton administrator profile.
// There is never more than one admin, so the record lives under a
// constant identity rather than a generated one.
const AdminID int64 = 1

// Admin is the administrator profile plus the society letterhead
// metadata embedded in exported documents.
type Admin struct {
	// ID is always AdminID; kept as a field so the storage layer can
	// treat admins like any other keyed row.
	ID int64

	// Username is set only when AuthMethod is AuthPassword.
	Username string

	// SecretHash is the hex-encoded SHA-256 digest of the password or
	// PIN, depending on AuthMethod. The plaintext is never stored.
	SecretHash string

	AuthMethod AuthMethod

	// Name is the display name printed as the issuer on documents.
	Name string

	// BlockNumber identifies the admin's own block/unit in the society.
	BlockNumber string

	// Signature is a base64 data URL of a raster signature image.
	// Empty when no signature has been uploaded.
	Signature string

	SocietyName    string
	SocietyAddress string
	SocietyRegNo   string
}

// AuthStatus is the answer to "is the app set up, and how do I log in".
// Username is populated only for password mode.
type AuthStatus struct {
	IsSetup    bool
	AuthMethod AuthMethod
	Username   string
}

// ProfileUpdate is a field-optional patch applied to the admin profile.
// Nil fields are left untouched. Credentials and the auth method are
// deliberately absent; those change only through the dedicated
// credential operations.
type ProfileUpdate struct {
	Name           *string
	BlockNumber    *string
	Signature      *string
	SocietyName    *string
	SocietyAddress *string
	SocietyRegNo   *string
}

// Apply merges the patch into a copy of the given profile.
func (u ProfileUpdate) Apply(a Admin) Admin {
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.BlockNumber != nil {
		a.BlockNumber = *u.BlockNumber
	}
	if u.Signature != nil {
		a.Signature = *u.Signature
	}
	if u.SocietyName != nil {
		a.SocietyName = *u.SocietyName
	}
	if u.SocietyAddress != nil {
		a.SocietyAddress = *u.SocietyAddress
	}
	if u.SocietyRegNo != nil {
		a.SocietyRegNo = *u.SocietyRegNo
	}
	return a
}
