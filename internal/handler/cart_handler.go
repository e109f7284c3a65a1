package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/middleware"
	"storefront/internal/usecase"
	"storefront/internal/validator"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// /cartのHTTP
type CartHandler struct {
	cart *usecase.NotifyingCart
}

// DI
func NewCartHandler(cart *usecase.NotifyingCart) *CartHandler {
	return &CartHandler{cart: cart}
}

type AddProductRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

type UpdateProductAmountRequest struct {
	Amount int64 `json:"amount" validate:"required,gte=1"`
}

// 失敗時のボディ。statusで種類を判別できる。
type CartErrorResponse struct {
	Error  string `json:"error"`
	Status string `json:"status"`
}

// /cart, /cart/{id} を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")

	g.GET("", h.getCart)
	g.POST("", h.addProduct)
	g.PATCH("/:id", h.updateAmount)
	g.DELETE("/:id", h.removeProduct)
}

func (h *CartHandler) getCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cart.Summary())
}

func (h *CartHandler) addProduct(c echo.Context) error {
	var req AddProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: validator.Message(err)})
	}

	if err := h.cart.AddProduct(c.Request().Context(), req.ProductID); err != nil {
		return writeCartError(c, err)
	}
	return c.JSON(http.StatusOK, h.cart.Summary())
}

func (h *CartHandler) updateAmount(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateProductAmountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: validator.Message(err)})
	}

	err = h.cart.UpdateProductAmount(c.Request().Context(), usecase.UpdateProductAmountInput{
		ProductID: productID,
		Amount:    req.Amount,
	})
	if err != nil {
		return writeCartError(c, err)
	}
	return c.JSON(http.StatusOK, h.cart.Summary())
}

func (h *CartHandler) removeProduct(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.cart.RemoveProduct(c.Request().Context(), productID); err != nil {
		return writeCartError(c, err)
	}
	return c.JSON(http.StatusOK, h.cart.Summary())
}

func writeCartError(c echo.Context, err error) error {
	ce, ok := usecase.AsCartError(err)
	if !ok {
		middleware.LoggerFrom(c).Error("unexpected cart error", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(cartHTTPStatus(ce.Status), CartErrorResponse{
		Error:  ce.Message,
		Status: ce.Status.String(),
	})
}

func cartHTTPStatus(s usecase.Status) int {
	switch s {
	case usecase.StatusNotFound:
		return http.StatusNotFound
	case usecase.StatusOutOfStock, usecase.StatusInvalid:
		return http.StatusBadRequest
	case usecase.StatusTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
