package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Astemirdum/bookstore-service/store/internal/model"
)

var authorColumns = []string{"id", "name", "bio"}

func (r *repository) ListAuthors(ctx context.Context) ([]model.Author, error) {
	items := make([]model.Author, 0)
	q := qb.Select(authorColumns...).From(authorsTableName).OrderBy("id")
	if err := r.selectAll(ctx, &items, q); err != nil {
		return nil, errors.Wrap(err, "ListAuthors")
	}
	return items, nil
}

func (r *repository) GetAuthor(ctx context.Context, id int64) (model.Author, error) {
	var author model.Author
	q := qb.Select(authorColumns...).From(authorsTableName).Where(sq.Eq{"id": id})
	if err := r.get(ctx, &author, q); err != nil {
		return model.Author{}, errors.Wrap(err, "GetAuthor")
	}
	return author, nil
}

func (r *repository) CreateAuthor(ctx context.Context, author model.Author) (model.Author, error) {
	q := qb.Insert(authorsTableName).
		Columns("name", "bio").
		Values(author.Name, author.Bio).
		Suffix(returning(authorColumns))

	var created model.Author
	if err := r.get(ctx, &created, q); err != nil {
		return model.Author{}, errors.Wrap(err, "CreateAuthor")
	}
	return created, nil
}

func (r *repository) UpdateAuthor(ctx context.Context, id int64, author model.Author) (model.Author, error) {
	q := qb.Update(authorsTableName).
		SetMap(map[string]any{
			"name": author.Name,
			"bio":  author.Bio,
		}).
		Where(sq.Eq{"id": id}).
		Suffix(returning(authorColumns))

	var updated model.Author
	if err := r.get(ctx, &updated, q); err != nil {
		return model.Author{}, errors.Wrap(err, "UpdateAuthor")
	}
	return updated, nil
}

// DeleteAuthor removes the author together with its books and their orders.
func (r *repository) DeleteAuthor(ctx context.Context, id int64) error {
	return errors.Wrap(r.delete(ctx, authorsTableName, id), "DeleteAuthor")
}
