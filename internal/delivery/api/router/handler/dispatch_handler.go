package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"adhan/config"
	"adhan/internal/delivery/api/response"
	deliverycontext "adhan/internal/delivery/context"
	domainerrors "adhan/internal/domain/errors"
	"adhan/internal/usecase"
)

// DispatchHandlerParams holds dependencies for DispatchHandler, injected by Fx.
type DispatchHandlerParams struct {
	fx.In

	Config     *config.Config
	DispatchUC usecase.DispatchUsecase
	Logger     *slog.Logger
}

// DispatchHandler exposes the manual dispatch trigger and the VAPID key
type DispatchHandler struct {
	enabled        bool
	vapidPublicKey string
	dispatchUC     usecase.DispatchUsecase
	logger         *slog.Logger
}

// NewDispatchHandler is the constructor for DispatchHandler
func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	h := &DispatchHandler{
		enabled:    params.Config.Dispatch != nil && params.Config.Dispatch.ManualTrigger,
		dispatchUC: params.DispatchUC,
		logger:     params.Logger,
	}
	if params.Config.VAPID != nil {
		h.vapidPublicKey = params.Config.VAPID.PublicKey
	}

	return h
}

// RunTick handles POST /api/dispatch/run
func (h *DispatchHandler) RunTick(c echo.Context) error {
	if !h.enabled {
		return response.HandleAppError(c, domainerrors.ErrManualDispatchDisabled)
	}

	ctx := c.Request().Context()
	tickID := "manual-" + uuid.NewString()
	ctx = deliverycontext.WithTickID(ctx, tickID)

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Dispatch] manual tick requested", slog.String("tick_id", tickID))

	report, err := h.dispatchUC.Tick(ctx, tickID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// GetVAPIDPublicKey handles GET /api/vapid-public-key
func (h *DispatchHandler) GetVAPIDPublicKey(c echo.Context) error {
	if h.vapidPublicKey == "" {
		return response.HandleAppError(c, domainerrors.ErrNotFound.WithDetails("vapid public key is not configured"))
	}

	return response.Success(c, http.StatusOK, map[string]string{"public_key": h.vapidPublicKey})
}
