package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"linkvault/config"
	deliverycontext "linkvault/internal/delivery/context"
	httpmiddleware "linkvault/internal/delivery/http/middleware"
	"linkvault/internal/delivery/http/response"
	"linkvault/internal/delivery/middleware"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/service"
	"linkvault/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// visitLimiter decides whether a client may record another analytics event.
type visitLimiter interface {
	Allow(ip string) bool
}

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	Config      *config.Config
	PublishUC   usecase.PublishUsecase
	ResolveUC   usecase.ResolveUsecase
	AccessUC    usecase.AccessUsecase
	AnalyticsUC usecase.AnalyticsUsecase
	TemplateUC  usecase.TemplateUsecase
	Store       service.ContentStore
	QRCode      service.QRCodeService
	Inspector   service.VisitInspector
	Limiter     *middleware.IPRateLimiter
	Logger      *slog.Logger
}

// ProfileHandler serves creating, editing and viewing profiles.
type ProfileHandler struct {
	publicBaseURL string
	publishUC     usecase.PublishUsecase
	resolveUC     usecase.ResolveUsecase
	accessUC      usecase.AccessUsecase
	analyticsUC   usecase.AnalyticsUsecase
	templateUC    usecase.TemplateUsecase
	store         service.ContentStore
	qrcode        service.QRCodeService
	inspector     service.VisitInspector
	limiter       visitLimiter
	logger        *slog.Logger
	now           func() time.Time
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		publicBaseURL: strings.TrimRight(params.Config.App.PublicBaseURL, "/"),
		publishUC:     params.PublishUC,
		resolveUC:     params.ResolveUC,
		accessUC:      params.AccessUC,
		analyticsUC:   params.AnalyticsUC,
		templateUC:    params.TemplateUC,
		store:         params.Store,
		qrcode:        params.QRCode,
		inspector:     params.Inspector,
		limiter:       params.Limiter,
		logger:        params.Logger,
		now:           time.Now,
	}
}

// UnlockRequest represents the request body of the password gate
type UnlockRequest struct {
	Password string `json:"password" validate:"required"`
}

// ClickResponse tells the client where a link leads.
type ClickResponse struct {
	LinkID string `json:"linkId"`
	URL    string `json:"url"`
}

// Create publishes a new profile, seeded from ?template= when given.
func (h *ProfileHandler) Create(c echo.Context) error {
	p, err := h.bindProfile(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if err := h.templateUC.Apply(c.QueryParam("template"), p); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.publishUC.Publish(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "Profile published")
}

// Edit publishes a new version of the profile at :address.
func (h *ProfileHandler) Edit(c echo.Context) error {
	p, err := h.bindProfile(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.publishUC.Republish(c.Request().Context(), c.Param("address"), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Profile updated")
}

// bindProfile decodes the request body over the authoring defaults. The default
// link is dropped so the body or a template decides the links.
func (h *ProfileHandler) bindProfile(c echo.Context) (*entity.Profile, error) {
	p := entity.NewProfile("", h.now())
	p.Links = nil
	if err := c.Bind(p); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid profile document")
	}

	return p, nil
}

// GetByAddress renders the profile stored at :address.
func (h *ProfileHandler) GetByAddress(c echo.Context) error {
	ctx := c.Request().Context()
	address := c.Param("address")

	doc, err := h.resolveUC.FetchByAddress(ctx, address)
	if err != nil {
		h.log(c).Info("Profile lookup failed", slog.String("address", address), slog.Any("error", err))

		return response.ProfileNotFound(c)
	}

	return h.render(c, address, h.store.RetrievalURL(address), doc)
}

// GetByUsername renders the profile :username currently points at.
func (h *ProfileHandler) GetByUsername(c echo.Context) error {
	resolved, err := h.resolveUC.ResolveUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		// the resolver already logged stage and reason
		return response.ProfileNotFound(c)
	}

	return h.render(c, resolved.ContentAddress, resolved.RetrievalURL, resolved.Profile)
}

func (h *ProfileHandler) render(c echo.Context, address, retrievalURL string, doc *entity.Profile) error {
	if !h.accessUC.CanView(address, doc, httpmiddleware.GetUnlockToken(c)) {
		return response.Success(c, http.StatusOK, lockedView(address, doc), "Password required")
	}

	h.recordView(c, address, doc)

	return response.Success(c, http.StatusOK, newProfileView(address, retrievalURL, doc, h.now()), "")
}

// recordView counts a view unless analytics are off for doc, the client is over
// its rate limit or the visitor is a bot. Failures never affect the page.
func (h *ProfileHandler) recordView(c echo.Context, address string, doc *entity.Profile) {
	if !doc.Settings.EnableAnalytics {
		return
	}

	req := c.Request()
	ip := c.RealIP()
	if !h.limiter.Allow(ip) {
		h.log(c).Debug("View not recorded, client over rate limit", slog.String("ip", ip))

		return
	}

	visit, human := h.inspector.Inspect(service.VisitRequest{
		IP:        ip,
		UserAgent: req.UserAgent(),
		Referer:   req.Referer(),
	})
	if !human {
		return
	}

	if _, err := h.analyticsUC.RecordView(req.Context(), address, visit); err != nil {
		h.log(c).Warn("Failed to record view", slog.String("address", address), slog.Any("error", err))
	}
}

// Unlock exchanges the profile password for an access token.
func (h *ProfileHandler) Unlock(c echo.Context) error {
	var req UnlockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unlock input")
	}
	if req.Password == "" {
		return response.HandleAppError(c, domainerrors.ErrPasswordRequired)
	}

	result, err := h.accessUC.Unlock(c.Request().Context(), c.Param("address"), req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Profile unlocked")
}

// Click counts a click on :linkId and returns its destination.
func (h *ProfileHandler) Click(c echo.Context) error {
	ctx := c.Request().Context()
	address := c.Param("address")
	linkID := c.Param("linkId")

	doc, err := h.resolveUC.FetchByAddress(ctx, address)
	if err != nil {
		h.log(c).Info("Profile lookup failed", slog.String("address", address), slog.Any("error", err))

		return response.ProfileNotFound(c)
	}
	if !h.accessUC.CanView(address, doc, httpmiddleware.GetUnlockToken(c)) {
		return response.HandleAppError(c, domainerrors.ErrPasswordRequired)
	}

	link, ok := doc.FindLink(linkID)
	if !ok || !link.IsActive {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("unknown link "+linkID))
	}

	if doc.Settings.EnableAnalytics {
		if _, err := h.analyticsUC.RecordClick(ctx, address, linkID); err != nil {
			h.log(c).Warn("Failed to record click",
				slog.String("address", address),
				slog.String("link_id", linkID),
				slog.Any("error", err),
			)
		}
	}

	return response.Success(c, http.StatusOK, ClickResponse{LinkID: linkID, URL: link.URL}, "")
}

// QRCode renders a PNG share code of the public profile URL.
func (h *ProfileHandler) QRCode(c echo.Context) error {
	address := c.Param("address")

	doc, err := h.resolveUC.FetchByAddress(c.Request().Context(), address)
	if err != nil {
		h.log(c).Info("Profile lookup failed", slog.String("address", address), slog.Any("error", err))

		return response.ProfileNotFound(c)
	}
	if !doc.Settings.EnableSharing {
		return response.HandleAppError(c, domainerrors.ErrForbidden.WithDetails("sharing is disabled for this profile"))
	}

	png, err := h.qrcode.GenerateProfileQR(h.shareURL(c, doc.Username))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *ProfileHandler) shareURL(c echo.Context, username string) string {
	base := h.publicBaseURL
	if base == "" {
		base = c.Scheme() + "://" + c.Request().Host
	}

	return base + "/" + username
}

func (h *ProfileHandler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}
