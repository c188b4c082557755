package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	md "github.com/Astemirdum/bookstore-service/pkg/middleware"
	"github.com/Astemirdum/bookstore-service/pkg/validate"
	"github.com/Astemirdum/bookstore-service/store/internal/errs"
	"github.com/Astemirdum/bookstore-service/store/internal/model"
	_ "github.com/Astemirdum/bookstore-service/swagger"
)

const (
	authorsPrefix = "authors"
	booksPrefix   = "books"
	ordersPrefix  = "orders"
)

type Handler struct {
	storeSvc StoreService
	log      *zap.Logger
}

func New(storeSvc StoreService, log *zap.Logger) *Handler {
	return &Handler{
		storeSvc: storeSvc,
		log:      log,
	}
}

func NewValidator() *validate.CustomValidator {
	return validate.NewCustomValidator(
		validate.WithCustomTypeFunc(model.PriceTypeFunc, model.Price{}),
	)
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Pre(middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return strings.HasPrefix(p, "/manage/") || strings.HasPrefix(p, "/swagger/")
		},
	}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	e.GET("/manage/health", h.Health, md.NewRateLimiter(baseRPS))
	e.GET("/swagger/*", echoSwagger.WrapHandler, md.NewRateLimiter(baseRPS))

	e.Validator = NewValidator()
	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.NewRequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.GET("/", h.Root)
	h.register(api)

	return e
}

// register binds every record type to the list/create/retrieve/update/delete
// verbs under its prefix.
func (h *Handler) register(g *echo.Group) {
	routes := []struct {
		prefix                         string
		list, create, get, update, del echo.HandlerFunc
	}{
		{authorsPrefix, h.ListAuthors, h.CreateAuthor, h.GetAuthor, h.UpdateAuthor, h.DeleteAuthor},
		{booksPrefix, h.ListBooks, h.CreateBook, h.GetBook, h.UpdateBook, h.DeleteBook},
		{ordersPrefix, h.ListOrders, h.CreateOrder, h.GetOrder, h.UpdateOrder, h.DeleteOrder},
	}
	for _, r := range routes {
		collection := "/" + r.prefix + "/"
		item := collection + ":id/"
		g.GET(collection, r.list)
		g.POST(collection, r.create)
		g.GET(item, r.get)
		g.PUT(item, r.update)
		g.PATCH(item, r.update)
		g.DELETE(item, r.del)
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Root lists the collection endpoints.
func (h *Handler) Root(c echo.Context) error {
	base := c.Scheme() + "://" + c.Request().Host
	return c.JSON(http.StatusOK, map[string]string{
		authorsPrefix: base + "/" + authorsPrefix + "/",
		booksPrefix:   base + "/" + booksPrefix + "/",
		ordersPrefix:  base + "/" + ordersPrefix + "/",
	})
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.ErrNotFound
	}
	return id, nil
}

func (h *Handler) httpError(err error) error {
	var (
		refErr  *errs.ReferenceError
		httpErr *echo.HTTPError
	)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	case errors.As(err, &refErr):
		return echo.NewHTTPError(http.StatusBadRequest, errs.NewValidationErrorResponse(
			map[string][]string{refErr.Field: {refErr.Error()}},
		))
	case errors.As(err, &httpErr):
		return httpErr
	}
	if fields, ok := validate.FieldErrors(err); ok {
		return echo.NewHTTPError(http.StatusBadRequest, errs.NewValidationErrorResponse(fields))
	}
	h.log.Error("internal", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
