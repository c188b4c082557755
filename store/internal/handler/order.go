package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/bookstore-service/store/internal/model"
)

func (h *Handler) ListOrders(c echo.Context) error {
	orders, err := h.storeSvc.ListOrders(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.httpError(err)
	}
	order, err := h.storeSvc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *Handler) CreateOrder(c echo.Context) error {
	var order model.Order
	if err := c.Bind(&order); err != nil {
		return h.httpError(err)
	}
	order.ID = 0
	order.CreatedAt = time.Time{}
	order.TrimSpace()
	if err := c.Validate(order); err != nil {
		return h.httpError(err)
	}
	created, err := h.storeSvc.CreateOrder(c.Request().Context(), order)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateOrder keeps created_at whatever the body says.
func (h *Handler) UpdateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseID(c)
	if err != nil {
		return h.httpError(err)
	}
	order, err := h.storeSvc.GetOrder(ctx, id)
	if err != nil {
		return h.httpError(err)
	}
	createdAt := order.CreatedAt
	if !isPartial(c) {
		order = model.Order{}
	}
	if err := c.Bind(&order); err != nil {
		return h.httpError(err)
	}
	order.ID = id
	order.CreatedAt = createdAt
	order.TrimSpace()
	if err := c.Validate(order); err != nil {
		return h.httpError(err)
	}
	updated, err := h.storeSvc.UpdateOrder(ctx, id, order)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteOrder(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.httpError(err)
	}
	if err := h.storeSvc.DeleteOrder(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
