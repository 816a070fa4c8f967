package handler

import (
	"log/slog"
	"net/http"

	"linkvault/internal/delivery/http/response"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WalletHandlerParams holds dependencies for WalletHandler, injected by Fx.
type WalletHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// WalletHandler serves the wallet session and the settings view.
type WalletHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewWalletHandler is the constructor for WalletHandler
func NewWalletHandler(params WalletHandlerParams) *WalletHandler {
	return &WalletHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// FundRequest represents the request body for funding the store account
type FundRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// ChainRequest represents the request body for switching chains
type ChainRequest struct {
	ChainID int64 `json:"chainId" validate:"required,gt=0"`
}

// Connect opens the wallet session.
func (h *WalletHandler) Connect(c echo.Context) error {
	session, err := h.sessionUC.Connect(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session, "Wallet connected")
}

// Disconnect closes the wallet session.
func (h *WalletHandler) Disconnect(c echo.Context) error {
	if err := h.sessionUC.Disconnect(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Wallet disconnected")
}

// Get returns the current session.
func (h *WalletHandler) Get(c echo.Context) error {
	session, ok := h.sessionUC.Current()
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrWalletNotConnected)
	}

	return response.Success(c, http.StatusOK, session, "")
}

// Balance returns the store balance of the session account.
func (h *WalletHandler) Balance(c echo.Context) error {
	balance, err := h.sessionUC.Balance(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, balance, "")
}

// Fund credits the session account.
func (h *WalletHandler) Fund(c echo.Context) error {
	var req FundRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid fund input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	balance, err := h.sessionUC.Fund(c.Request().Context(), req.Amount)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, balance, "Account funded")
}

// SwitchChain moves the session account to another chain.
func (h *WalletHandler) SwitchChain(c echo.Context) error {
	var req ChainRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chain input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.sessionUC.SwitchChain(c.Request().Context(), req.ChainID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session, "Chain switched")
}
