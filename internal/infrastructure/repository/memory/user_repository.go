package memory

import (
	"context"
	"sync"
	"time"

	"github.com/canterahq/cantera/internal/domain/auth"
	"github.com/canterahq/cantera/internal/domain/user"
)

type UserRepository struct {
	mu     sync.RWMutex
	items  map[string]user.User
	orders []string
}

func NewUserRepository(users []user.User) *UserRepository {
	items := make(map[string]user.User, len(users))
	orders := make([]string, 0, len(users))
	for _, u := range users {
		items[u.ID] = u
		orders = append(orders, u.ID)
	}

	return &UserRepository{items: items, orders: orders}
}

func (r *UserRepository) Create(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[u.ID] = u
	r.orders = append(r.orders, u.ID)
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, tenantID, id string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[id]
	if !ok || u.TenantID != tenantID {
		return user.User{}, false, nil
	}

	return u, true, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, tenantID, email string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		u := r.items[id]
		if u.TenantID == tenantID && u.Email == email {
			return u, true, nil
		}
	}

	return user.User{}, false, nil
}

func (r *UserRepository) GetSuperAdminByEmail(_ context.Context, email string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		u := r.items[id]
		if u.Role == auth.RoleSuperAdmin && u.Email == email {
			return u, true, nil
		}
	}

	return user.User{}, false, nil
}

func (r *UserRepository) GetByResetToken(_ context.Context, token string) (user.User, bool, error) {
	if token == "" {
		return user.User{}, false, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		if u := r.items[id]; u.ResetToken == token {
			return u, true, nil
		}
	}

	return user.User{}, false, nil
}

func (r *UserRepository) ListByTenant(_ context.Context, tenantID string) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0)
	for _, id := range r.orders {
		if u := r.items[id]; u.TenantID == tenantID {
			out = append(out, u)
		}
	}

	return out, nil
}

func (r *UserRepository) UpdatePassword(_ context.Context, id, passwordHash string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]
	if !ok {
		return false, nil
	}

	u.PasswordHash = passwordHash
	u.ResetToken = ""
	u.ResetTokenExpiresAt = nil
	r.items[id] = u
	return true, nil
}

func (r *UserRepository) SetResetToken(_ context.Context, id, token string, expiresAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]
	if !ok {
		return false, nil
	}

	u.ResetToken = token
	u.ResetTokenExpiresAt = &expiresAt
	r.items[id] = u
	return true, nil
}

func (r *UserRepository) SetActive(_ context.Context, tenantID, id string, active bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]
	if !ok || u.TenantID != tenantID {
		return false, nil
	}

	u.Active = active
	r.items[id] = u
	return true, nil
}

var _ user.Repository = (*UserRepository)(nil)
