package payment

import (
	"depot/internal/domain"
	"depot/internal/errors"
)

// Charger authorizes a charge against a card. Implementations must be
// replaceable by a real payment gateway behind the same interface.
type Charger interface {
	Charge(cardNumber string, amount domain.Cents) error
}

// StubCharger approves or declines on the parity of the card's last digit:
// even succeeds, odd declines. Cards with no digits count as ending in 0.
type StubCharger struct{}

func NewStubCharger() *StubCharger {
	return &StubCharger{}
}

func (StubCharger) Charge(cardNumber string, amount domain.Cents) error {
	lastDigit := 0
	for _, r := range cardNumber {
		if r >= '0' && r <= '9' {
			lastDigit = int(r - '0')
		}
	}

	if lastDigit%2 != 0 {
		return errors.NewPaymentDeclinedError("payment declined: card ends in odd digit")
	}

	return nil
}
