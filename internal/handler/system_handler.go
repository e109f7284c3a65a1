package handler

import (
	"context"
	"net/http"
	"time"

	"storefront/internal/middleware"
	"storefront/internal/notify"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// 疎通確認できるもの
type Pinger interface {
	Ping(ctx context.Context) error
}

type NotificationSource interface {
	Recent() []notify.Message
}

// /healthz, /notifications
type SystemHandler struct {
	storage       Pinger
	notifications NotificationSource
}

// DI
func NewSystemHandler(storage Pinger, notifications NotificationSource) *SystemHandler {
	return &SystemHandler{storage: storage, notifications: notifications}
}

type HealthResponse struct {
	Status string `json:"status"`
}

type NotificationsResponse struct {
	Items []notify.Message `json:"items"`
}

func (h *SystemHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.health)
	e.GET("/notifications", h.recentNotifications)
}

func (h *SystemHandler) health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.storage.Ping(ctx); err != nil {
		middleware.LoggerFrom(c).Warn("storage ping failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *SystemHandler) recentNotifications(c echo.Context) error {
	return c.JSON(http.StatusOK, NotificationsResponse{Items: h.notifications.Recent()})
}
