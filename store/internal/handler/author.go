package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/bookstore-service/store/internal/model"
)

func (h *Handler) ListAuthors(c echo.Context) error {
	authors, err := h.storeSvc.ListAuthors(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, authors)
}

func (h *Handler) GetAuthor(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.httpError(err)
	}
	author, err := h.storeSvc.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, author)
}

func (h *Handler) CreateAuthor(c echo.Context) error {
	var author model.Author
	if err := c.Bind(&author); err != nil {
		return h.httpError(err)
	}
	author.ID = 0
	author.TrimSpace()
	if err := c.Validate(author); err != nil {
		return h.httpError(err)
	}
	created, err := h.storeSvc.CreateAuthor(c.Request().Context(), author)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateAuthor serves PUT as a full replacement and PATCH as an overlay of
// the supplied fields on the stored author.
func (h *Handler) UpdateAuthor(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseID(c)
	if err != nil {
		return h.httpError(err)
	}
	author, err := h.storeSvc.GetAuthor(ctx, id)
	if err != nil {
		return h.httpError(err)
	}
	if !isPartial(c) {
		author = model.Author{}
	}
	if err := c.Bind(&author); err != nil {
		return h.httpError(err)
	}
	author.ID = id
	author.TrimSpace()
	if err := c.Validate(author); err != nil {
		return h.httpError(err)
	}
	updated, err := h.storeSvc.UpdateAuthor(ctx, id, author)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteAuthor(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.httpError(err)
	}
	if err := h.storeSvc.DeleteAuthor(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func isPartial(c echo.Context) bool {
	return c.Request().Method == http.MethodPatch
}
