package domain

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Note is free-text content attached to a client.
type Note struct {
	ID        string
	OwnerID   string
	ClientID  string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (n *Note) Validate() error {
	return validation.ValidateStruct(n,
		validation.Field(&n.OwnerID, validation.Required),
		validation.Field(&n.ClientID, validation.Required),
		validation.Field(&n.Content, validation.Required),
	)
}
