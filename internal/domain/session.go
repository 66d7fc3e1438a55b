package domain

import (
	"fmt"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var startTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Session is a scheduled appointment with a client on a calendar date.
// Date carries the day (midnight in the session's location); StartTime is
// the wall-clock "HH:MM" within that day. Two sessions may share a client,
// date and time; ordering within a day is by StartTime.
type Session struct {
	ID          string
	OwnerID     string
	ClientID    string
	Date        time.Time
	StartTime   string
	DurationMin int
	Status      SessionStatus
	Type        string
	Comment     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s *Session) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.OwnerID, validation.Required),
		validation.Field(&s.ClientID, validation.Required),
		validation.Field(&s.Date, validation.Required),
		validation.Field(&s.StartTime, validation.Required, validation.Match(startTimePattern).Error("must be HH:MM")),
		validation.Field(&s.DurationMin, validation.Required, validation.Min(1)),
		validation.Field(&s.Status, validation.In(SessionScheduled, SessionCompleted, SessionCanceled)),
	)
}

// StartAt combines Date and StartTime into a single instant, used for
// ordering sessions within a day. An unparseable StartTime falls back to
// midnight; Validate rejects such values before they are stored.
func (s *Session) StartAt() time.Time {
	t, err := time.Parse("15:04", s.StartTime)
	if err != nil {
		return s.Date
	}
	return s.Date.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
}

// EndAt returns the instant the session is scheduled to finish.
func (s *Session) EndAt() time.Time {
	return s.StartAt().Add(time.Duration(s.DurationMin) * time.Minute)
}

func (s *Session) String() string {
	return fmt.Sprintf("%s %s (%d min)", s.Date.Format("2006-01-02"), s.StartTime, s.DurationMin)
}
