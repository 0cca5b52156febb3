package memory

import (
	"context"
	"sync"

	"github.com/canterahq/cantera/internal/domain/invitation"
)

type InvitationRepository struct {
	mu     sync.RWMutex
	items  map[string]invitation.Invitation
	orders []string
}

func NewInvitationRepository(invitations []invitation.Invitation) *InvitationRepository {
	items := make(map[string]invitation.Invitation, len(invitations))
	orders := make([]string, 0, len(invitations))
	for _, inv := range invitations {
		items[inv.ID] = inv
		orders = append(orders, inv.ID)
	}

	return &InvitationRepository{items: items, orders: orders}
}

func (r *InvitationRepository) Create(_ context.Context, inv invitation.Invitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[inv.ID] = inv
	r.orders = append(r.orders, inv.ID)
	return nil
}

func (r *InvitationRepository) GetByToken(_ context.Context, token string) (invitation.Invitation, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		if inv := r.items[id]; inv.Token == token {
			return inv, true, nil
		}
	}

	return invitation.Invitation{}, false, nil
}

func (r *InvitationRepository) ListByTenant(_ context.Context, tenantID string) ([]invitation.Invitation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]invitation.Invitation, 0)
	for _, id := range r.orders {
		if inv := r.items[id]; inv.TenantID == tenantID {
			out = append(out, inv)
		}
	}

	return out, nil
}

// MarkAccepted claims the invitation under the write lock, so two
// concurrent registrations cannot both succeed.
func (r *InvitationRepository) MarkAccepted(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv, ok := r.items[id]
	if !ok || inv.Accepted {
		return false, nil
	}

	inv.Accepted = true
	r.items[id] = inv
	return true, nil
}

func (r *InvitationRepository) Delete(_ context.Context, tenantID, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv, ok := r.items[id]
	if !ok || inv.TenantID != tenantID {
		return false, nil
	}

	delete(r.items, id)
	for i, oid := range r.orders {
		if oid == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}
	return true, nil
}

var _ invitation.Repository = (*InvitationRepository)(nil)
