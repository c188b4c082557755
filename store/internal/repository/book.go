package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Astemirdum/bookstore-service/store/internal/errs"
	"github.com/Astemirdum/bookstore-service/store/internal/model"
)

var bookColumns = []string{"id", "title", "description", "price", "image_url", "author_id"}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	items := make([]model.Book, 0)
	q := qb.Select(bookColumns...).From(booksTableName).OrderBy("id")
	if err := r.selectAll(ctx, &items, q); err != nil {
		return nil, errors.Wrap(err, "ListBooks")
	}
	return items, nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	var book model.Book
	q := qb.Select(bookColumns...).From(booksTableName).Where(sq.Eq{"id": id})
	if err := r.get(ctx, &book, q); err != nil {
		return model.Book{}, errors.Wrap(err, "GetBook")
	}
	return book, nil
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	q := qb.Insert(booksTableName).
		Columns("title", "description", "price", "image_url", "author_id").
		Values(book.Title, book.Description, book.Price, book.ImageURL, book.AuthorID).
		Suffix(returning(bookColumns))

	var created model.Book
	if err := r.get(ctx, &created, q); err != nil {
		if isForeignKeyViolation(err) {
			return model.Book{}, &errs.ReferenceError{Field: "author", ID: book.AuthorID}
		}
		return model.Book{}, errors.Wrap(err, "CreateBook")
	}
	return created, nil
}

func (r *repository) UpdateBook(ctx context.Context, id int64, book model.Book) (model.Book, error) {
	q := qb.Update(booksTableName).
		SetMap(map[string]any{
			"title":       book.Title,
			"description": book.Description,
			"price":       book.Price,
			"image_url":   book.ImageURL,
			"author_id":   book.AuthorID,
		}).
		Where(sq.Eq{"id": id}).
		Suffix(returning(bookColumns))

	var updated model.Book
	if err := r.get(ctx, &updated, q); err != nil {
		if isForeignKeyViolation(err) {
			return model.Book{}, &errs.ReferenceError{Field: "author", ID: book.AuthorID}
		}
		return model.Book{}, errors.Wrap(err, "UpdateBook")
	}
	return updated, nil
}

// DeleteBook removes the book together with its orders.
func (r *repository) DeleteBook(ctx context.Context, id int64) error {
	return errors.Wrap(r.delete(ctx, booksTableName, id), "DeleteBook")
}
