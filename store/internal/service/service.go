package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Astemirdum/bookstore-service/store/internal/model"
	storeRepo "github.com/Astemirdum/bookstore-service/store/internal/repository"
)

type Service struct {
	log    *zap.Logger
	repo   storeRepo.Repository
	events *orderEvents
}

type Option func(s *Service)

// WithOrderEvents publishes every created order through q.
func WithOrderEvents(q Enqueuer) Option {
	return func(s *Service) {
		s.events = newOrderEvents(q, s.log)
	}
}

func NewService(repo storeRepo.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:  log.Named("service"),
		repo: repo,
	}
	for _, op := range opts {
		op(s)
	}
	return s
}

func (s *Service) ListAuthors(ctx context.Context) ([]model.Author, error) {
	return s.repo.ListAuthors(ctx)
}

func (s *Service) GetAuthor(ctx context.Context, id int64) (model.Author, error) {
	return s.repo.GetAuthor(ctx, id)
}

func (s *Service) CreateAuthor(ctx context.Context, author model.Author) (model.Author, error) {
	return s.repo.CreateAuthor(ctx, author)
}

func (s *Service) UpdateAuthor(ctx context.Context, id int64, author model.Author) (model.Author, error) {
	return s.repo.UpdateAuthor(ctx, id, author)
}

func (s *Service) DeleteAuthor(ctx context.Context, id int64) error {
	return s.repo.DeleteAuthor(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	return s.repo.CreateBook(ctx, book)
}

func (s *Service) UpdateBook(ctx context.Context, id int64, book model.Book) (model.Book, error) {
	return s.repo.UpdateBook(ctx, id, book)
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.DeleteBook(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *Service) GetOrder(ctx context.Context, id int64) (model.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *Service) CreateOrder(ctx context.Context, order model.Order) (model.Order, error) {
	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return model.Order{}, err
	}
	if s.events != nil {
		s.events.created(created)
	}
	return created, nil
}

func (s *Service) UpdateOrder(ctx context.Context, id int64, order model.Order) (model.Order, error) {
	return s.repo.UpdateOrder(ctx, id, order)
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	return s.repo.DeleteOrder(ctx, id)
}
