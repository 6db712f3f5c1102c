package domain

import "time"

const (
	RoleAdmin      = "ADM"
	RoleFiscal     = "FISCAL"
	RoleAccounting = "CONTABIL"
	RoleHR         = "RH"
)

// Roles lists the installation roles in display order.
var Roles = []string{RoleAdmin, RoleFiscal, RoleAccounting, RoleHR}

// IsValidRole reports whether role is one of Roles.
func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Capability is one of the four independently grantable actions.
type Capability string

const (
	CapView   Capability = "view"
	CapCreate Capability = "create"
	CapEdit   Capability = "edit"
	CapDelete Capability = "delete"
)

// Permissions is stored per user. It is not derived from the role.
type Permissions struct {
	CanView   bool `json:"can_view" bson:"can_view"`
	CanCreate bool `json:"can_create" bson:"can_create"`
	CanEdit   bool `json:"can_edit" bson:"can_edit"`
	CanDelete bool `json:"can_delete" bson:"can_delete"`
}

// Allows reports whether the flag for c is set.
func (p Permissions) Allows(c Capability) bool {
	switch c {
	case CapView:
		return p.CanView
	case CapCreate:
		return p.CanCreate
	case CapEdit:
		return p.CanEdit
	case CapDelete:
		return p.CanDelete
	}
	return false
}

// DefaultPermissions returns the flags a new user of the given role starts with
// when the creator does not choose them explicitly.
func DefaultPermissions(role string) Permissions {
	if role == RoleAdmin {
		return Permissions{CanView: true, CanCreate: true, CanEdit: true, CanDelete: true}
	}
	return Permissions{CanView: true}
}

// User models an operator account. The credential lives in the credential
// store under the same ID and is never part of this struct.
type User struct {
	ID          string      `json:"id" bson:"_id"`
	Name        string      `json:"nome" bson:"nome"`
	Username    string      `json:"username" bson:"username"`
	Email       string      `json:"email" bson:"email"`
	Role        string      `json:"tipo" bson:"tipo"`
	Permissions Permissions `json:"permissoes" bson:"permissoes"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updated_at"`
}

// Identity is the credential-store record behind a User.
type Identity struct {
	ID    string
	Email string
}

// NewCredential carries a replacement password. A nil *NewCredential on an
// update means the stored credential is left unchanged.
type NewCredential struct {
	Password string
}

// Session is the context of the caller, established at login and read-only
// afterwards.
type Session struct {
	TokenID     string      `json:"-"`
	UserID      string      `json:"id"`
	Name        string      `json:"nome"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	Role        string      `json:"tipo"`
	Permissions Permissions `json:"permissoes"`
	ExpiresAt   time.Time   `json:"expires_at"`
}

// NewSession builds the session context for u.
func NewSession(u *User, tokenID string, expiresAt time.Time) *Session {
	return &Session{
		TokenID:     tokenID,
		UserID:      u.ID,
		Name:        u.Name,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		Permissions: u.Permissions,
		ExpiresAt:   expiresAt,
	}
}

// IsAdmin reports whether the session belongs to an administrator.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// Can is the single authorization policy: administrators may do everything,
// everyone else only what their flags grant.
func Can(s *Session, c Capability) bool {
	if s == nil {
		return false
	}
	return s.IsAdmin() || s.Permissions.Allows(c)
}
