package domain

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Client is a person the practitioner works with. FullName is the only
// required attribute; everything else is optional contact detail.
type Client struct {
	ID            string
	OwnerID       string
	FullName      string
	BirthDate     *time.Time
	Phone         *string
	Email         *string
	ContactMethod *string
	Comment       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the invariants that must hold before a client is stored.
func (c *Client) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.OwnerID, validation.Required),
		validation.Field(&c.FullName, validation.Required, validation.Length(1, 200)),
	)
}

// DisplayName returns the name used in list views and activity rows.
func (c *Client) DisplayName() string {
	return c.FullName
}
