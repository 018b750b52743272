// Package payment holds the mock card check used by the demo checkout.
// There is no gateway behind it; a card either matches the accepted
// shape or the checkout is rejected.
package payment

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrInvalidCard = errors.New("card details invalid")

var (
	numberPattern = regexp.MustCompile(`^\d{16}$`)
	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3}$`)
)

type Card struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

func (c Card) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name on card is blank", ErrInvalidCard)
	}

	if !numberPattern.MatchString(c.Number) {
		return fmt.Errorf("%w: number must be 16 digits", ErrInvalidCard)
	}

	if !expiryPattern.MatchString(c.Expiry) {
		return fmt.Errorf("%w: expiry must be MM/YY", ErrInvalidCard)
	}

	if !cvvPattern.MatchString(c.CVV) {
		return fmt.Errorf("%w: cvv must be 3 digits", ErrInvalidCard)
	}

	return nil
}
