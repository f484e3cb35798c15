package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the operation counters of the bank core. There is no
// exposition endpoint; counters are read in-process.
type Metrics struct {
	ClientsCreated prometheus.Counter
	AccountsOpened prometheus.Counter
	Deposits       prometheus.Counter
	Withdrawals    prometheus.Counter
	Statements     prometheus.Counter
	Rejections     *prometheus.CounterVec
}

// New creates all counters and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ClientsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "minibank_clients_created_total",
			Help: "Total number of clients created",
		}),
		AccountsOpened: factory.NewCounter(prometheus.CounterOpts{
			Name: "minibank_accounts_opened_total",
			Help: "Total number of accounts opened",
		}),
		Deposits: factory.NewCounter(prometheus.CounterOpts{
			Name: "minibank_deposits_total",
			Help: "Total number of successful deposits",
		}),
		Withdrawals: factory.NewCounter(prometheus.CounterOpts{
			Name: "minibank_withdrawals_total",
			Help: "Total number of successful withdrawals",
		}),
		Statements: factory.NewCounter(prometheus.CounterOpts{
			Name: "minibank_statements_total",
			Help: "Total number of statements generated",
		}),
		Rejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibank_rejections_total",
				Help: "Total rejected operations by reason",
			},
			[]string{"reason"},
		),
	}
}
