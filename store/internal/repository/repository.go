package repository

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookstore-service/store/internal/errs"
	"github.com/Astemirdum/bookstore-service/store/internal/model"
)

type Repository interface {
	ListAuthors(ctx context.Context) ([]model.Author, error)
	GetAuthor(ctx context.Context, id int64) (model.Author, error)
	CreateAuthor(ctx context.Context, author model.Author) (model.Author, error)
	UpdateAuthor(ctx context.Context, id int64, author model.Author) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error

	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, id int64, book model.Book) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error

	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id int64) (model.Order, error)
	CreateOrder(ctx context.Context, order model.Order) (model.Order, error)
	UpdateOrder(ctx context.Context, id int64, order model.Order) (model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	authorsTableName = `authors`
	booksTableName   = `books`
	ordersTableName  = `orders`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) get(ctx context.Context, dest any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return errors.Wrap(err, "build query")
	}
	if err := r.db.GetContext(ctx, dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		r.log.Error("get", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) selectAll(ctx context.Context, dest any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return errors.Wrap(err, "build query")
	}
	r.log.Debug("select", zap.String("query", query))
	if err := r.db.SelectContext(ctx, dest, query, args...); err != nil {
		r.log.Error("select", zap.String("q", query), zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) delete(ctx context.Context, table string, id int64) error {
	query, args, err := qb.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return errors.Wrap(err, "build query")
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error("delete", zap.String("table", table), zap.Int64("id", id), zap.Error(err))
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func returning(columns []string) string {
	return "returning " + strings.Join(columns, ", ")
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
