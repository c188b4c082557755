package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Astemirdum/bookstore-service/store/internal/errs"
	"github.com/Astemirdum/bookstore-service/store/internal/model"
)

var orderColumns = []string{"id", "buyer_email", "created_at", "book_id"}

func (r *repository) ListOrders(ctx context.Context) ([]model.Order, error) {
	items := make([]model.Order, 0)
	q := qb.Select(orderColumns...).From(ordersTableName).OrderBy("id")
	if err := r.selectAll(ctx, &items, q); err != nil {
		return nil, errors.Wrap(err, "ListOrders")
	}
	for i := range items {
		items[i].CreatedAt = items[i].CreatedAt.UTC()
	}
	return items, nil
}

func (r *repository) GetOrder(ctx context.Context, id int64) (model.Order, error) {
	var order model.Order
	q := qb.Select(orderColumns...).From(ordersTableName).Where(sq.Eq{"id": id})
	if err := r.get(ctx, &order, q); err != nil {
		return model.Order{}, errors.Wrap(err, "GetOrder")
	}
	order.CreatedAt = order.CreatedAt.UTC()
	return order, nil
}

// CreateOrder leaves created_at to the column default.
func (r *repository) CreateOrder(ctx context.Context, order model.Order) (model.Order, error) {
	q := qb.Insert(ordersTableName).
		Columns("book_id", "buyer_email").
		Values(order.BookID, order.BuyerEmail).
		Suffix(returning(orderColumns))

	var created model.Order
	if err := r.get(ctx, &created, q); err != nil {
		if isForeignKeyViolation(err) {
			return model.Order{}, &errs.ReferenceError{Field: "book", ID: order.BookID}
		}
		return model.Order{}, errors.Wrap(err, "CreateOrder")
	}
	created.CreatedAt = created.CreatedAt.UTC()
	return created, nil
}

// UpdateOrder never touches created_at.
func (r *repository) UpdateOrder(ctx context.Context, id int64, order model.Order) (model.Order, error) {
	q := qb.Update(ordersTableName).
		SetMap(map[string]any{
			"book_id":     order.BookID,
			"buyer_email": order.BuyerEmail,
		}).
		Where(sq.Eq{"id": id}).
		Suffix(returning(orderColumns))

	var updated model.Order
	if err := r.get(ctx, &updated, q); err != nil {
		if isForeignKeyViolation(err) {
			return model.Order{}, &errs.ReferenceError{Field: "book", ID: order.BookID}
		}
		return model.Order{}, errors.Wrap(err, "UpdateOrder")
	}
	updated.CreatedAt = updated.CreatedAt.UTC()
	return updated, nil
}

func (r *repository) DeleteOrder(ctx context.Context, id int64) error {
	return errors.Wrap(r.delete(ctx, ordersTableName, id), "DeleteOrder")
}
