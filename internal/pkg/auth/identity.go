package auth

import (
	"github.com/campushare/backend/internal/app/models"
)

// SubjectKind distinguishes a real account from the reserved admin subject.
// The admin identity exists only in process configuration; validation must
// branch on this tag, never on a registration-number comparison.
type SubjectKind string

const (
	SubjectAccount SubjectKind = "ACCOUNT"
	SubjectAdmin   SubjectKind = "ADMIN"
)

// Identity is the authenticated subject plus its role, produced by
// credential verification and carried by a token.
type Identity struct {
	Kind      SubjectKind
	UserID    int64 // zero for the admin sentinel
	Name      string
	RegNo     string
	Role      models.RoleType
	Blocked   bool
	CanUpload bool
}

// IsAdminSentinel reports whether this identity is the configuration-backed
// admin subject.
func (i Identity) IsAdminSentinel() bool {
	return i.Kind == SubjectAdmin
}

// AccountIdentity builds an Identity from a stored user record.
func AccountIdentity(user *models.User) Identity {
	return Identity{
		Kind:      SubjectAccount,
		UserID:    user.ID,
		Name:      user.Name,
		RegNo:     user.RegNo,
		Role:      user.Role,
		Blocked:   user.Blocked,
		CanUpload: user.CanUpload,
	}
}

// AdminIdentity builds the synthetic admin Identity. No account row backs
// this subject; regNo comes from configuration.
func AdminIdentity(regNo string) Identity {
	return Identity{
		Kind:  SubjectAdmin,
		Name:  "Admin",
		RegNo: regNo,
		Role:  models.RoleAdmin,
	}
}
