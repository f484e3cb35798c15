// Package memory implements the client and account registries as in-process
// append-only collections. Nothing in this package survives a restart.
package memory

import (
	"github.com/iho/minibank/internal/domain"
)

// ClientRegistry is the in-memory collection of registered clients.
type ClientRegistry struct {
	clients []*domain.Client
}

// NewClientRegistry creates an empty client registry.
func NewClientRegistry() *ClientRegistry {
	return &ClientRegistry{}
}

// Add registers a client. The tax identifier must be unique across the
// registry; a repeated one is rejected with ErrDuplicateClient.
func (r *ClientRegistry) Add(client *domain.Client) error {
	for _, existing := range r.clients {
		if existing.TaxID == client.TaxID {
			return domain.ErrDuplicateClient
		}
	}
	r.clients = append(r.clients, client)
	return nil
}

// FindByTaxID returns the client registered under taxID, or
// ErrClientNotFound.
func (r *ClientRegistry) FindByTaxID(taxID string) (*domain.Client, error) {
	for _, client := range r.clients {
		if client.TaxID == taxID {
			return client, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

// List returns the registered clients in registration order.
func (r *ClientRegistry) List() []*domain.Client {
	out := make([]*domain.Client, len(r.clients))
	copy(out, r.clients)
	return out
}
