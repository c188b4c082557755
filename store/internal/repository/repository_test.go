package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookstore-service/pkg/postgres"
	"github.com/Astemirdum/bookstore-service/store/internal/errs"
	"github.com/Astemirdum/bookstore-service/store/internal/model"
	"github.com/Astemirdum/bookstore-service/store/internal/repository"
	"github.com/Astemirdum/bookstore-service/store/migrations"
)

func newRepo(t *testing.T) (repository.Repository, *sqlx.DB) {
	t.Helper()
	dsn := os.Getenv("STORE_TEST_DB_DSN")
	if dsn == "" {
		t.Skip("STORE_TEST_DB_DSN is not set, run make test-integration")
	}
	db, err := postgres.Open(context.Background(), dsn, migrations.MigrationFiles)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`TRUNCATE authors, books, orders RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	repo, err := repository.NewRepository(db, zap.NewNop())
	require.NoError(t, err)
	return repo, db
}

func TestRepository_CascadeDelete(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	author, err := repo.CreateAuthor(ctx, model.Author{Name: "Frank Herbert", Bio: "American author"})
	require.NoError(t, err)
	require.NotZero(t, author.ID)

	book, err := repo.CreateBook(ctx, model.Book{
		Title:       "Dune",
		Description: "Sand",
		Price:       model.MustPrice("12.50"),
		AuthorID:    author.ID,
	})
	require.NoError(t, err)
	got, err := repo.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, author.ID, got.AuthorID)
	require.Equal(t, "12.50", got.Price.String())

	order, err := repo.CreateOrder(ctx, model.Order{BookID: book.ID, BuyerEmail: "reader@example.com"})
	require.NoError(t, err)
	require.False(t, order.CreatedAt.IsZero())
	require.Equal(t, time.UTC, order.CreatedAt.Location())

	require.NoError(t, repo.DeleteAuthor(ctx, author.ID))

	_, err = repo.GetBook(ctx, book.ID)
	require.True(t, errors.Is(err, errs.ErrNotFound))
	_, err = repo.GetOrder(ctx, order.ID)
	require.True(t, errors.Is(err, errs.ErrNotFound))
	require.True(t, errors.Is(repo.DeleteAuthor(ctx, author.ID), errs.ErrNotFound))
}

func TestRepository_UpdateKeepsCreatedAt(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	author, err := repo.CreateAuthor(ctx, model.Author{Name: "a", Bio: "b"})
	require.NoError(t, err)
	book, err := repo.CreateBook(ctx, model.Book{Title: "t", Description: "d", Price: model.MustPrice("1"), AuthorID: author.ID})
	require.NoError(t, err)
	order, err := repo.CreateOrder(ctx, model.Order{BookID: book.ID, BuyerEmail: "a@b.co"})
	require.NoError(t, err)

	updated, err := repo.UpdateOrder(ctx, order.ID, model.Order{
		BookID:     book.ID,
		BuyerEmail: "c@d.co",
		CreatedAt:  time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Equal(t, "c@d.co", updated.BuyerEmail)
	require.True(t, order.CreatedAt.Equal(updated.CreatedAt))
}

func TestRepository_UnknownReference(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.CreateBook(ctx, model.Book{Title: "t", Description: "d", Price: model.MustPrice("1"), AuthorID: 404})
	var refErr *errs.ReferenceError
	require.True(t, errors.As(err, &refErr))
	require.Equal(t, "author", refErr.Field)
	require.Equal(t, int64(404), refErr.ID)

	_, err = repo.CreateOrder(ctx, model.Order{BookID: 404, BuyerEmail: "a@b.co"})
	require.True(t, errors.As(err, &refErr))
	require.Equal(t, "book", refErr.Field)
}

func TestRepository_ListOrder(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	author, err := repo.CreateAuthor(ctx, model.Author{Name: "a", Bio: "b"})
	require.NoError(t, err)
	for _, title := range []string{"one", "two", "three"} {
		_, err := repo.CreateBook(ctx, model.Book{Title: title, Description: "d", Price: model.MustPrice("1"), AuthorID: author.ID})
		require.NoError(t, err)
	}
	books, err := repo.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 3)
	require.Equal(t, "one", books[0].Title)
	require.Equal(t, "three", books[2].Title)
}
