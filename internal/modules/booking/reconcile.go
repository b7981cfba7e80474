package booking

import (
	"fmt"
	"math/big"

	"framelight/internal/domain"
)

// Reconcile derives the payment status from the cumulative amount paid and
// the booking's frozen package price. Prices are decimal strings, so the
// comparison uses exact rational arithmetic instead of float equality.
//
//	paid <= 0        -> pending
//	0 < paid < price -> partial
//	paid >= price    -> paid
//
// Refunded/failed are never produced here.
func Reconcile(amountPaid float64, price string) (domain.PaymentStatus, error) {
	pr, err := domain.ParsePrice(price)
	if err != nil {
		return "", err
	}

	paid := new(big.Rat).SetFloat64(amountPaid)
	if paid == nil {
		return "", fmt.Errorf("non-finite paid amount %v", amountPaid)
	}

	zero := new(big.Rat)
	switch {
	case paid.Cmp(zero) <= 0:
		return domain.PaymentPending, nil
	case paid.Cmp(pr) >= 0:
		return domain.PaymentPaid, nil
	default:
		return domain.PaymentPartial, nil
	}
}
