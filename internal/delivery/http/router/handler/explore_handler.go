package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "linkvault/internal/delivery/context"
	httpmiddleware "linkvault/internal/delivery/http/middleware"
	"linkvault/internal/delivery/http/response"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ExploreHandlerParams holds dependencies for ExploreHandler, injected by Fx.
type ExploreHandlerParams struct {
	fx.In

	TemplateUC  usecase.TemplateUsecase
	DiscoverUC  usecase.DiscoverUsecase
	ResolveUC   usecase.ResolveUsecase
	AnalyticsUC usecase.AnalyticsUsecase
	AccessUC    usecase.AccessUsecase
	Logger      *slog.Logger
}

// ExploreHandler serves the read-only views that are not a single profile page.
type ExploreHandler struct {
	templateUC  usecase.TemplateUsecase
	discoverUC  usecase.DiscoverUsecase
	resolveUC   usecase.ResolveUsecase
	analyticsUC usecase.AnalyticsUsecase
	accessUC    usecase.AccessUsecase
	logger      *slog.Logger
}

// NewExploreHandler is the constructor for ExploreHandler
func NewExploreHandler(params ExploreHandlerParams) *ExploreHandler {
	return &ExploreHandler{
		templateUC:  params.TemplateUC,
		discoverUC:  params.DiscoverUC,
		resolveUC:   params.ResolveUC,
		analyticsUC: params.AnalyticsUC,
		accessUC:    params.AccessUC,
		logger:      params.Logger,
	}
}

// DiscoverQuery represents the query parameters of the discover view
type DiscoverQuery struct {
	Query string `query:"q"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// Templates lists the profile presets.
func (h *ExploreHandler) Templates(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.templateUC.List(), "")
}

// Discover lists public profiles.
func (h *ExploreHandler) Discover(c echo.Context) error {
	var q DiscoverQuery
	if err := c.Bind(&q); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discover query")
	}
	if err := c.Validate(&q); err != nil {
		return response.HandleAppError(c, err)
	}

	profiles, err := h.discoverUC.Discover(c.Request().Context(), q.Query, q.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profiles, "")
}

// Verify shows the record tags stored with a profile.
func (h *ExploreHandler) Verify(c echo.Context) error {
	address := c.Param("address")

	verification, err := h.resolveUC.Verify(c.Request().Context(), address)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Info("Verification failed", slog.String("address", address), slog.Any("error", err))

		return response.ProfileNotFound(c)
	}

	return response.Success(c, http.StatusOK, verification, "")
}

// Analytics returns the local analytics report of a profile. Reports of
// password-protected profiles need the unlock token.
func (h *ExploreHandler) Analytics(c echo.Context) error {
	address := c.Param("address")
	if ok, err := h.authorize(c, address); !ok {
		return err
	}

	report, err := h.analyticsUC.GetReport(c.Request().Context(), address)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Info("Analytics report failed", slog.String("address", address), slog.Any("error", err))

		return response.ProfileNotFound(c)
	}

	return response.Success(c, http.StatusOK, report, "")
}

// RebuildAnalytics replays the event log of a profile and returns the fresh snapshot.
func (h *ExploreHandler) RebuildAnalytics(c echo.Context) error {
	address := c.Param("address")
	if ok, err := h.authorize(c, address); !ok {
		return err
	}

	snapshot, err := h.analyticsUC.Rebuild(c.Request().Context(), address)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Analytics rebuilt")
}

// authorize writes the error response itself when it returns false.
func (h *ExploreHandler) authorize(c echo.Context, address string) (bool, error) {
	doc, err := h.resolveUC.FetchByAddress(c.Request().Context(), address)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Info("Analytics profile lookup failed", slog.String("address", address), slog.Any("error", err))

		return false, response.ProfileNotFound(c)
	}
	if !h.accessUC.CanView(address, doc, httpmiddleware.GetUnlockToken(c)) {
		return false, response.HandleAppError(c, domainerrors.ErrPasswordRequired)
	}

	return true, nil
}
