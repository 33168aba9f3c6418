package payment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/kostsaya/kost-manager/internal/model"
)

// ContactIdentity is the resolved best-available contact data for a
// payment, used only to address and render notifications.
type ContactIdentity struct {
	Name       string
	Phone      string
	RoomNumber string
	Email      string
}

// tenantFinder is the read-only tenant lookup the resolver depends on.
type tenantFinder interface {
	GetTenantByID(ctx context.Context, id uuid.UUID) (model.Tenant, error)
	GetTenantByPhone(ctx context.Context, phone string) (model.Tenant, error)
}

// resolveContact applies the contact fallback chain: the payment's own
// fields win, and only fields the payment itself is missing are filled from
// the linked tenant, first by tenant_id, then by phone match. Lookup
// failures (including not-found) leave the field empty; resolution never
// mutates the payment.
func resolveContact(ctx context.Context, tenants tenantFinder, p model.Payment) ContactIdentity {
	contact := ContactIdentity{
		Name:       p.TenantName,
		Phone:      p.Phone,
		RoomNumber: p.RoomNumber,
	}
	if validEmail(p.Email) {
		contact.Email = p.Email
	}

	if contact.complete() {
		return contact
	}

	if p.TenantID != nil {
		if tenant, err := tenants.GetTenantByID(ctx, *p.TenantID); err == nil {
			contact.fillFrom(tenant)
		}
	}

	if !contact.complete() && p.Phone != "" {
		if tenant, err := tenants.GetTenantByPhone(ctx, p.Phone); err == nil {
			contact.fillFrom(tenant)
		}
	}

	return contact
}

func (c *ContactIdentity) complete() bool {
	return c.Name != "" && c.Phone != "" && c.RoomNumber != "" && c.Email != ""
}

// fillFrom copies tenant fields into slots the payment left empty.
func (c *ContactIdentity) fillFrom(t model.Tenant) {
	if c.Name == "" {
		c.Name = t.Name
	}
	if c.Phone == "" {
		c.Phone = t.Phone
	}
	if c.RoomNumber == "" {
		c.RoomNumber = t.RoomNumber
	}
	if c.Email == "" && validEmail(t.Email) {
		c.Email = t.Email
	}
}

func validEmail(s string) bool {
	return strings.Contains(s, "@")
}
