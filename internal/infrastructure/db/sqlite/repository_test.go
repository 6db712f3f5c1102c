package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/internal/core/ports"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "gestor_test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return db
}

func newTestClient(id, name, cnpj string) *domain.Client {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Client{
		ID:           id,
		ClientFields: domain.ClientFields{LegalName: name, TaxID: cnpj, Modality: domain.ModalityPaid, PowerOfAttorney: true},
		CreatedBy:    "u1",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestClientRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(openTestDB(t))

	require.NoError(t, repo.Create(ctx, newTestClient("c1", "beta", "")))
	require.NoError(t, repo.Create(ctx, newTestClient("c2", "Alpha", "")))
	require.NoError(t, repo.Create(ctx, newTestClient("c3", "Gama", "11.111.111/0001-11")))

	got, err := repo.FindByID(ctx, "c3")
	require.NoError(t, err)
	assert.Equal(t, "Gama", got.LegalName)
	assert.True(t, got.PowerOfAttorney)
	assert.Nil(t, got.EndDate)

	end := "2024-01-01"
	got.EndDate = &end
	require.NoError(t, repo.Update(ctx, got))

	active, err := repo.List(ctx, ports.ClientFilter{Status: domain.StatusActive})
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Alpha", active[0].LegalName)
	assert.Equal(t, "beta", active[1].LegalName)

	inactive, err := repo.List(ctx, ports.ClientFilter{Status: domain.StatusExClient})
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	require.NotNil(t, inactive[0].EndDate)
	assert.Equal(t, end, *inactive[0].EndDate)

	got.EndDate = nil
	require.NoError(t, repo.Update(ctx, got))
	reloaded, err := repo.FindByID(ctx, "c3")
	require.NoError(t, err)
	assert.Nil(t, reloaded.EndDate)

	require.NoError(t, repo.Delete(ctx, "c3"))
	_, err = repo.FindByID(ctx, "c3")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "c3"), domain.ErrClientNotFound)
	assert.ErrorIs(t, repo.Update(ctx, newTestClient("nope", "x", "")), domain.ErrClientNotFound)
}

func TestClientRepository_TaxIDUniqueWhenPresent(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(openTestDB(t))

	require.NoError(t, repo.Create(ctx, newTestClient("c1", "A", "")))
	require.NoError(t, repo.Create(ctx, newTestClient("c2", "B", "")))
	require.NoError(t, repo.Create(ctx, newTestClient("c3", "C", "123")))

	err := repo.Create(ctx, newTestClient("c4", "D", "123"))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestClientRepository_CreateManyReportsConflicts(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(openTestDB(t))
	require.NoError(t, repo.Create(ctx, newTestClient("c0", "Existing", "999")))

	batch := []*domain.Client{
		newTestClient("c1", "One", "1"),
		newTestClient("c2", "Two", "999"),
		newTestClient("c3", "Three", ""),
		newTestClient("c4", "Four", "1"),
	}
	conflicts, err := repo.CreateMany(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, conflicts)

	all, err := repo.List(ctx, ports.ClientFilter{})
	require.NoError(t, err)
	names := make([]string, 0, len(all))
	for _, c := range all {
		names = append(names, c.LegalName)
	}
	assert.Equal(t, []string{"Existing", "One", "Three"}, names)
}

func TestClientRepository_CreateManyEmpty(t *testing.T) {
	conflicts, err := NewClientRepository(openTestDB(t)).CreateMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openTestDB(t))
	now := time.Now().UTC()

	bruno := &domain.User{ID: "u2", Name: "Bruno", Username: "bruno", Email: "b@x.com", Role: domain.RoleFiscal,
		Permissions: domain.Permissions{CanView: true}, CreatedAt: now, UpdatedAt: now}
	ana := &domain.User{ID: "u1", Name: "Ana", Username: "ana", Email: "a@x.com", Role: domain.RoleAdmin,
		Permissions: domain.DefaultPermissions(domain.RoleAdmin), CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, bruno))
	require.NoError(t, repo.Create(ctx, ana))

	dup := *ana
	dup.ID = "u3"
	dup.Email = "other@x.com"
	assert.ErrorIs(t, repo.Create(ctx, &dup), domain.ErrConflict)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0].Name)
	assert.True(t, list[0].Permissions.CanDelete)

	got, err := repo.FindByUsername(ctx, "bruno")
	require.NoError(t, err)
	got.Permissions.CanEdit = true
	require.NoError(t, repo.Update(ctx, got))
	got, _ = repo.FindByID(ctx, "u2")
	assert.True(t, got.Permissions.CanEdit)

	n, err := repo.CountByRole(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, repo.Delete(ctx, "u2"))
	_, err = repo.FindByID(ctx, "u2")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCredentialStore(t *testing.T) {
	ctx := context.Background()
	store := NewCredentialStore(openTestDB(t))

	ident, err := store.CreateIdentity(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, ident.ID)

	_, err = store.CreateIdentity(ctx, "a@x.com", "other")
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = store.VerifyPassword(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	_, err = store.VerifyPassword(ctx, "a@x.com", "bad")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = store.VerifyPassword(ctx, "nobody@x.com", "pw")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	require.NoError(t, store.UpdateEmail(ctx, ident.ID, "b@x.com"))
	require.NoError(t, store.UpdatePassword(ctx, ident.ID, "new"))
	_, err = store.VerifyPassword(ctx, "b@x.com", "new")
	require.NoError(t, err)

	got, err := store.GetIdentity(ctx, ident.ID)
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", got.Email)

	require.NoError(t, store.DeleteIdentity(ctx, ident.ID))
	err = store.DeleteIdentity(ctx, ident.ID)
	assert.True(t, errors.Is(err, domain.ErrIdentityNotFound))
}

func TestClientRepository_ListSortsAccentedNames(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(openTestDB(t))
	for i, name := range []string{"Zeta", "Ágape", "beta", "Alfa", "Écran"} {
		require.NoError(t, repo.Create(ctx, newTestClient(fmt.Sprintf("c%d", i), name, "")))
	}

	all, err := repo.List(ctx, ports.ClientFilter{})
	require.NoError(t, err)
	names := make([]string, 0, len(all))
	for _, c := range all {
		names = append(names, c.LegalName)
	}
	assert.Equal(t, []string{"Ágape", "Alfa", "beta", "Écran", "Zeta"}, names)
}
