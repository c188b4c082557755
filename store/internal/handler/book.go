package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/bookstore-service/store/internal/model"
)

func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.storeSvc.ListBooks(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.httpError(err)
	}
	book, err := h.storeSvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var book model.Book
	if err := c.Bind(&book); err != nil {
		return h.httpError(err)
	}
	book.ID = 0
	book.TrimSpace()
	if err := c.Validate(book); err != nil {
		return h.httpError(err)
	}
	created, err := h.storeSvc.CreateBook(c.Request().Context(), book)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseID(c)
	if err != nil {
		return h.httpError(err)
	}
	book, err := h.storeSvc.GetBook(ctx, id)
	if err != nil {
		return h.httpError(err)
	}
	if !isPartial(c) {
		book = model.Book{}
	}
	if err := c.Bind(&book); err != nil {
		return h.httpError(err)
	}
	book.ID = id
	book.TrimSpace()
	if err := c.Validate(book); err != nil {
		return h.httpError(err)
	}
	updated, err := h.storeSvc.UpdateBook(ctx, id, book)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.httpError(err)
	}
	if err := h.storeSvc.DeleteBook(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
