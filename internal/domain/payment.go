package domain

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Payment records money received from a client. SessionID optionally links
// the payment to the session it settles; the link is weak and may be nil.
// Currency is stored as entered and never validated against an ISO list.
type Payment struct {
	ID          string
	OwnerID     string
	ClientID    string
	SessionID   *string
	AmountCents int64
	Currency    string
	Date        time.Time
	Comment     string
	CreatedAt   time.Time
}

func (p *Payment) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.OwnerID, validation.Required),
		validation.Field(&p.ClientID, validation.Required),
		validation.Field(&p.AmountCents, validation.Min(int64(0))),
		validation.Field(&p.Currency, validation.Required, validation.Length(1, 10)),
		validation.Field(&p.Date, validation.Required),
	)
}

// AmountLabel renders the payment amount with its currency code, e.g.
// "1500.00 RUB".
func (p *Payment) AmountLabel() string {
	return FormatAmount(p.AmountCents, p.Currency)
}
