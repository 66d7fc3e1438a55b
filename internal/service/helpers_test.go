package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dsorokina/kabinet/internal/db"
	"github.com/dsorokina/kabinet/internal/domain"
	"github.com/dsorokina/kabinet/internal/repository"
	"github.com/dsorokina/kabinet/internal/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type repos struct {
	clients  *repository.SQLiteClientRepo
	sessions *repository.SQLiteSessionRepo
	payments *repository.SQLitePaymentRepo
	notes    *repository.SQLiteNoteRepo
	uow      db.UnitOfWork
	database *sql.DB
}

func setupRepos(t *testing.T) repos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repos{
		clients:  repository.NewSQLiteClientRepo(database),
		sessions: repository.NewSQLiteSessionRepo(database),
		payments: repository.NewSQLitePaymentRepo(database),
		notes:    repository.NewSQLiteNoteRepo(database),
		uow:      testutil.NewTestUoW(database),
		database: database,
	}
}

// mustClient stores a client fixture directly through the repository so
// tests can focus on the service under test.
func mustClient(t *testing.T, r repos, fullName string) *domain.Client {
	t.Helper()
	c := testutil.NewTestClient(fullName)
	require.NoError(t, r.clients.Create(context.Background(), c))
	return c
}

var testLocale = language.Und
