package model

import (
	"strings"
	"time"
)

type Author struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name" validate:"required,max=100"`
	Bio  string `json:"bio" db:"bio" validate:"required"`
}

type Book struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title" validate:"required,max=200"`
	Description string `json:"description" db:"description" validate:"required"`
	Price       Price  `json:"price" db:"price" validate:"required,decimal=6_2,non_negative"`
	ImageURL    string `json:"image_url" db:"image_url" validate:"omitempty,max=200,url,http_url"`
	AuthorID    int64  `json:"author" db:"author_id" validate:"required"`
}

// Order.CreatedAt is assigned by the store on insert and never written again.
type Order struct {
	ID         int64     `json:"id" db:"id"`
	BuyerEmail string    `json:"buyer_email" db:"buyer_email" validate:"required,max=254,email"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	BookID     int64     `json:"book" db:"book_id" validate:"required"`
}

// TrimSpace strips surrounding whitespace from the text fields, so a blank
// value fails the required check.
func (a *Author) TrimSpace() {
	a.Name = strings.TrimSpace(a.Name)
	a.Bio = strings.TrimSpace(a.Bio)
}

func (b *Book) TrimSpace() {
	b.Title = strings.TrimSpace(b.Title)
	b.Description = strings.TrimSpace(b.Description)
	b.ImageURL = strings.TrimSpace(b.ImageURL)
}

func (o *Order) TrimSpace() {
	o.BuyerEmail = strings.TrimSpace(o.BuyerEmail)
}

type OrderCreatedEvent struct {
	OrderID    int64     `json:"order_id"`
	BookID     int64     `json:"book_id"`
	BuyerEmail string    `json:"buyer_email"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewOrderCreatedEvent(o Order) OrderCreatedEvent {
	return OrderCreatedEvent{
		OrderID:    o.ID,
		BookID:     o.BookID,
		BuyerEmail: o.BuyerEmail,
		CreatedAt:  o.CreatedAt,
	}
}
