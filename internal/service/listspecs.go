package service

import (
	"time"

	"github.com/dsorokina/kabinet/internal/domain"
	"github.com/dsorokina/kabinet/internal/listquery"
	"golang.org/x/text/language"
)

// List views search the fields each view declares. Payments and notes also
// match on the owning client's name, which the store does not denormalize,
// so those specs take a resolver closing over a name lookup built per call.

func present(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func newClientPipeline(tag language.Tag) *listquery.Pipeline[*domain.Client] {
	spec := listquery.Spec[*domain.Client]{
		Fields: []listquery.Field[*domain.Client]{
			func(c *domain.Client) (string, bool) { return c.FullName, true },
			func(c *domain.Client) (string, bool) { return present(c.Email) },
			func(c *domain.Client) (string, bool) { return present(c.Phone) },
		},
		Timestamp:   func(c *domain.Client) time.Time { return c.CreatedAt },
		DisplayName: func(c *domain.Client) string { return c.FullName },
	}
	return listquery.NewPipeline(spec, tag)
}

func newSessionPipeline(tag language.Tag, nameOf func(clientID string) string) *listquery.Pipeline[*domain.Session] {
	spec := listquery.Spec[*domain.Session]{
		Fields: []listquery.Field[*domain.Session]{
			func(s *domain.Session) (string, bool) { return s.Type, s.Type != "" },
			func(s *domain.Session) (string, bool) { return s.Comment, s.Comment != "" },
			func(s *domain.Session) (string, bool) { n := nameOf(s.ClientID); return n, n != "" },
		},
		Timestamp:   func(s *domain.Session) time.Time { return s.StartAt() },
		DisplayName: func(s *domain.Session) string { return nameOf(s.ClientID) },
	}
	return listquery.NewPipeline(spec, tag)
}

func newPaymentPipeline(tag language.Tag, nameOf func(clientID string) string) *listquery.Pipeline[*domain.Payment] {
	spec := listquery.Spec[*domain.Payment]{
		Fields: []listquery.Field[*domain.Payment]{
			func(p *domain.Payment) (string, bool) { return p.Comment, p.Comment != "" },
			func(p *domain.Payment) (string, bool) { n := nameOf(p.ClientID); return n, n != "" },
		},
		Timestamp:   func(p *domain.Payment) time.Time { return p.Date },
		DisplayName: func(p *domain.Payment) string { return nameOf(p.ClientID) },
	}
	return listquery.NewPipeline(spec, tag)
}

func newNotePipeline(tag language.Tag, nameOf func(clientID string) string) *listquery.Pipeline[*domain.Note] {
	spec := listquery.Spec[*domain.Note]{
		Fields: []listquery.Field[*domain.Note]{
			func(n *domain.Note) (string, bool) { return n.Content, n.Content != "" },
			func(n *domain.Note) (string, bool) { v := nameOf(n.ClientID); return v, v != "" },
		},
		Timestamp:   func(n *domain.Note) time.Time { return n.CreatedAt },
		DisplayName: func(n *domain.Note) string { return nameOf(n.ClientID) },
	}
	return listquery.NewPipeline(spec, tag)
}

func sortOrDefault(key listquery.SortKey) listquery.SortKey {
	if key == "" {
		return listquery.SortDate
	}
	return key
}

func clientNameIndex(clients []*domain.Client) func(string) string {
	byID := make(map[string]string, len(clients))
	for _, c := range clients {
		byID[c.ID] = c.FullName
	}
	return func(id string) string { return byID[id] }
}
