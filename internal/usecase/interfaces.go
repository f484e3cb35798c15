package usecase

import (
	"time"

	"github.com/iho/minibank/internal/domain"
)

// ClientRegistry defines lookup and registration of clients.
type ClientRegistry interface {
	Add(client *domain.Client) error
	FindByTaxID(taxID string) (*domain.Client, error)
	List() []*domain.Client
}

// AccountRegistry defines lookup and registration of accounts.
type AccountRegistry interface {
	Add(account domain.Account)
	FindByNumber(number int) (domain.Account, error)
	List() []domain.Account
	NextNumber() int
}

// AuditEntry is one line of the operation audit trail.
type AuditEntry struct {
	ID        string
	Timestamp time.Time
	Operation string
	Args      map[string]any
	Result    string
}

// AuditSink receives one entry per core-exposed operation. A sink only
// observes: it must never alter results or control flow, so Record returns
// nothing and failures stay inside the sink.
type AuditSink interface {
	Record(entry AuditEntry)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
