package sqlite

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/internal/core/ports"
)

func Open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        path,
	}, &gorm.Config{})
}

// isUniqueViolation recognises unique index failures from the pure-Go driver,
// whose errors gorm cannot translate.
func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// sortByName orders items the way the Mongo adapter's "pt" collation at
// strength 2 does: case-insensitive, accents significant but secondary.
// SQLite's NOCASE only folds ASCII.
func sortByName[T any](items []T, name func(*T) string) {
	c := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(name(&items[i]), name(&items[j])) < 0
	})
}

func mapWriteErr(op string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	m := clientModel(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return mapWriteErr("insert client", err)
	}
	return nil
}

// CreateMany inserts the batch in one transaction. A unique violation only
// aborts its own statement, so the remaining rows are still committed.
func (r *ClientRepository) CreateMany(ctx context.Context, cs []*domain.Client) ([]int, error) {
	var conflicts []int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		conflicts = conflicts[:0]
		for i, c := range cs {
			m := clientModel(c)
			if err := tx.Create(&m).Error; err != nil {
				if isUniqueViolation(err) {
					conflicts = append(conflicts, i)
					continue
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("insert clients: %w", err)
	}
	return conflicts, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	var m ClientModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	c := m.toDomain()
	return &c, nil
}

func (r *ClientRepository) List(ctx context.Context, f ports.ClientFilter) ([]domain.Client, error) {
	q := r.db.WithContext(ctx).Model(&ClientModel{})
	switch f.Status {
	case domain.StatusActive:
		q = q.Where("data_saida IS NULL OR data_saida = ''")
	case domain.StatusExClient:
		q = q.Where("data_saida IS NOT NULL AND data_saida <> ''")
	}

	rows := make([]ClientModel, 0)
	if err := q.Order("razao_social").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	sortByName(rows, func(m *ClientModel) string { return m.RazaoSocial })
	out := make([]domain.Client, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

// Update overwrites every column of the row.
func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	m := clientModel(c)
	res := r.db.WithContext(ctx).Model(&ClientModel{}).Where("id = ?", c.ID).Select("*").Omit("id", "created_at").Updates(&m)
	if res.Error != nil {
		return mapWriteErr("update client", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&ClientModel{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete client: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := userModel(u)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return mapWriteErr("insert user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *UserRepository) first(ctx context.Context, query string, arg any) (*domain.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).First(&m, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	u := m.toDomain()
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows := make([]UserModel, 0)
	if err := r.db.WithContext(ctx).Order("nome").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	sortByName(rows, func(m *UserModel) string { return m.Nome })
	out := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	m := userModel(u)
	res := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", u.ID).Select("*").Omit("id", "created_at").Updates(&m)
	if res.Error != nil {
		return mapWriteErr("update user", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&UserModel{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&UserModel{}).Where("tipo = ?", role).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
