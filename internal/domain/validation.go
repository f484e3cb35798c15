package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidTaxID      = errors.New("invalid tax id")
	ErrInvalidClientName = errors.New("invalid client name")
	ErrAmountTooLarge    = errors.New("amount exceeds maximum allowed")
)

// Validation constants
const (
	MaxClientNameLength = 255
	MinClientNameLength = 1

	// MaxTransactionAmount bounds a single deposit or withdrawal.
	MaxTransactionAmount = "1000000000" // 1 billion
)

// Tax identifiers are CPF-style: exactly eleven digits, no punctuation.
var taxIDRegex = regexp.MustCompile(`^[0-9]{11}$`)

// ValidateTaxID validates a client tax identifier.
func ValidateTaxID(taxID string) error {
	if !taxIDRegex.MatchString(strings.TrimSpace(taxID)) {
		return fmt.Errorf("%w: must be exactly 11 digits", ErrInvalidTaxID)
	}
	return nil
}

// ValidateClientName validates a client's full name.
func ValidateClientName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinClientNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidClientName)
	}

	if len(name) > MaxClientNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidClientName, MaxClientNameLength)
	}

	return nil
}

// ValidateAmount checks a transaction amount before it reaches an account:
// positive and below the global cap.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxTransactionAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxTransactionAmount)
	}

	return nil
}
