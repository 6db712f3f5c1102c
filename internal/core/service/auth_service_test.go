package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/internal/core/ports"
)

type authFixture struct {
	users    *stubUserRepo
	creds    *stubCredentialStore
	sessions *stubSessionStore
	svc      *AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		users:    newStubUserRepo(),
		creds:    newStubCredentialStore(),
		sessions: newStubSessionStore(),
	}
	f.svc = NewAuthService(f.users, f.creds, f.sessions, "secret", time.Hour, zerolog.Nop())
	return f
}

func (f *authFixture) addUser(t *testing.T, username, email, password, role string) *domain.User {
	t.Helper()
	ident, err := f.creds.CreateIdentity(context.Background(), email, password)
	if err != nil {
		t.Fatalf("create identity: %v", err)
	}
	u := &domain.User{
		ID:          ident.ID,
		Name:        username,
		Username:    username,
		Email:       email,
		Role:        role,
		Permissions: domain.DefaultPermissions(role),
	}
	if err := f.users.Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthFixture(t)
	u := f.addUser(t, "ana", "ana@x.com", "pw", domain.RoleFiscal)

	res, err := f.svc.Login(context.Background(), "ana", "pw")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.Token == "" {
		t.Fatal("expected a token")
	}
	if res.Session.UserID != u.ID || res.Session.Role != domain.RoleFiscal {
		t.Fatalf("unexpected session: %+v", res.Session)
	}
	if _, ok := f.sessions.byToken[res.Session.TokenID]; !ok {
		t.Fatal("session must be persisted under its token id")
	}
	if f.sessions.ttl != time.Hour {
		t.Fatalf("session ttl = %v, want 1h", f.sessions.ttl)
	}

	claims := jwt.RegisteredClaims{}
	if _, err := jwt.ParseWithClaims(res.Token, &claims, func(*jwt.Token) (any, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if claims.Subject != u.ID || claims.ID != res.Session.TokenID {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	f := newAuthFixture(t)
	f.addUser(t, "ana", "ana@x.com", "pw", domain.RoleFiscal)

	orphan := &domain.User{ID: "no-identity", Username: "ghost", Email: "g@x.com", Role: domain.RoleHR}
	if err := f.users.Create(context.Background(), orphan); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cases := map[string][2]string{
		"unknown user":   {"nouser", "x"},
		"wrong password": {"ana", "nope"},
		"no identity":    {"ghost", "pw"},
		"empty password": {"ana", ""},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := f.svc.Login(context.Background(), c[0], c[1])
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
			if res != nil {
				t.Fatal("no session may be established")
			}
		})
	}
	if len(f.sessions.byToken) != 0 {
		t.Fatalf("expected no stored sessions, got %d", len(f.sessions.byToken))
	}
}

func TestAuthService_AuthenticateAndLogout(t *testing.T) {
	f := newAuthFixture(t)
	f.addUser(t, "ana", "ana@x.com", "pw", domain.RoleAdmin)
	ctx := context.Background()

	res, err := f.svc.Login(ctx, "ana", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	sess, err := f.svc.Authenticate(ctx, res.Token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if !sess.IsAdmin() || sess.TokenID != res.Session.TokenID {
		t.Fatalf("unexpected session: %+v", sess)
	}

	if err := f.svc.Logout(ctx, sess); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := f.svc.Authenticate(ctx, res.Token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated after logout, got %v", err)
	}
}

func TestAuthService_Authenticate_RejectsBadTokens(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u",
		ID:        "t",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	wrongKey, _ := forged.SignedString([]byte("other"))

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u",
		ID:        "t",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	expiredToken, _ := expired.SignedString([]byte("secret"))

	for name, tok := range map[string]string{"garbage": "abc", "wrong key": wrongKey, "expired": expiredToken} {
		if _, err := f.svc.Authenticate(ctx, tok); !errors.Is(err, domain.ErrUnauthenticated) {
			t.Errorf("%s: expected ErrUnauthenticated, got %v", name, err)
		}
	}
}

func TestAuthService_EnsureBootstrapAdmin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	if err := f.svc.EnsureBootstrapAdmin(ctx, "admin123"); err != nil {
		t.Fatalf("EnsureBootstrapAdmin: %v", err)
	}
	admin, err := f.users.FindByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("admin not created: %v", err)
	}
	if admin.Role != domain.RoleAdmin || !admin.Permissions.CanDelete {
		t.Fatalf("unexpected admin: %+v", admin)
	}
	if _, err := f.svc.Login(ctx, "admin", "admin123"); err != nil {
		t.Fatalf("bootstrap admin cannot log in: %v", err)
	}

	if err := f.svc.EnsureBootstrapAdmin(ctx, "other"); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if len(f.users.byID) != 1 {
		t.Fatalf("expected a single admin, got %d users", len(f.users.byID))
	}
}

func TestAuthService_Authenticate_DeletedUserIsRejected(t *testing.T) {
	f := newAuthFixture(t)
	u := f.addUser(t, "op", "op@x.com", "pw", domain.RoleFiscal)
	ctx := context.Background()

	res, err := f.svc.Login(ctx, "op", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	users := NewUserService(f.users, f.creds, &stubJanitor{}, zerolog.Nop())
	if err := users.Delete(ctx, adminSession(), u.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := f.svc.Authenticate(ctx, res.Token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for a deleted user, got %v", err)
	}
	if _, ok := f.sessions.byToken[res.Session.TokenID]; ok {
		t.Fatal("session of a deleted user must be dropped")
	}
}

func TestAuthService_Authenticate_ReflectsCurrentPermissions(t *testing.T) {
	f := newAuthFixture(t)
	u := f.addUser(t, "op", "op@x.com", "pw", domain.RoleAdmin)
	ctx := context.Background()

	res, err := f.svc.Login(ctx, "op", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	role := domain.RoleFiscal
	perms := domain.Permissions{CanView: true}
	users := NewUserService(f.users, f.creds, &stubJanitor{}, zerolog.Nop())
	if _, err := users.Update(ctx, adminSession(), u.ID, ports.UserPatch{Role: &role, Permissions: &perms}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	sess, err := f.svc.Authenticate(ctx, res.Token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if sess.IsAdmin() || domain.Can(sess, domain.CapDelete) {
		t.Fatalf("demoted user must lose admin and delete, got %+v", sess)
	}
	if !domain.Can(sess, domain.CapView) || sess.TokenID != res.Session.TokenID {
		t.Fatalf("unexpected session after demotion: %+v", sess)
	}
	if !sess.ExpiresAt.Equal(res.Session.ExpiresAt) {
		t.Fatalf("expiry must be kept, got %v want %v", sess.ExpiresAt, res.Session.ExpiresAt)
	}
}
