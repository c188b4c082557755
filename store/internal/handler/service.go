package handler

import (
	"context"

	"github.com/Astemirdum/bookstore-service/store/internal/model"
	"github.com/Astemirdum/bookstore-service/store/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type StoreService interface {
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

var _ StoreService = (*service.Service)(nil)
