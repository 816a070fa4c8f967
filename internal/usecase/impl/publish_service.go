package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"linkvault/config"
	deliverycontext "linkvault/internal/delivery/context"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/profile"
	"linkvault/internal/domain/service"
	"linkvault/internal/usecase"
	"linkvault/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// publishService implements the PublishUsecase interface.
type publishService struct {
	app       profile.AppInfo
	sessions  usecase.SessionUsecase
	resolver  usecase.ResolveUsecase
	store     service.ContentStore
	hasher    service.PasswordHasher
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewPublishService is the constructor for publishService.
func NewPublishService(
	cfg *config.Config,
	sessions usecase.SessionUsecase,
	resolver usecase.ResolveUsecase,
	store service.ContentStore,
	hasher service.PasswordHasher,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.PublishUsecase {
	return &publishService{
		app:       appInfo(cfg),
		sessions:  sessions,
		resolver:  resolver,
		store:     store,
		hasher:    hasher,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Publish stores p as a new profile.
func (srv *publishService) Publish(ctx context.Context, p *entity.Profile) (*usecase.PublishResult, error) {
	session, err := srv.prepare(p, false)
	if err != nil {
		return nil, err
	}

	return srv.persist(ctx, session, p, "")
}

// Republish stores an edit of the document at previousAddress.
func (srv *publishService) Republish(ctx context.Context, previousAddress string, p *entity.Profile) (*usecase.PublishResult, error) {
	session, err := srv.prepare(p, true)
	if err != nil {
		return nil, err
	}

	previous, err := srv.resolver.FetchByAddress(ctx, previousAddress)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load previous version")
	}
	if !strings.EqualFold(previous.Metadata.Creator, session.Address) {
		return nil, errors.Wrapf(domainerrors.ErrForbidden, "profile %s belongs to another wallet", previousAddress)
	}

	if previous.Metadata.CreatedAt != 0 {
		p.Metadata.CreatedAt = previous.Metadata.CreatedAt
	}
	// an edit that keeps protection without a new password keeps the old hash
	if p.Settings.PasswordProtected && p.Settings.Password == "" && previous.Settings.PasswordProtected {
		p.Settings.Password = previous.Settings.Password
	}

	return srv.persist(ctx, session, p, previousAddress)
}

// prepare checks the session and validates p before any network call. An edit
// may omit the password of a protected profile to keep the stored hash.
func (srv *publishService) prepare(p *entity.Profile, isEdit bool) (*entity.WalletSession, error) {
	session, ok := srv.sessions.Current()
	if !ok {
		return nil, domainerrors.ErrWalletNotConnected
	}
	if p == nil {
		return nil, domainerrors.ErrMissingRequiredField.WithDetails("profile")
	}

	p.Name = strings.TrimSpace(p.Name)
	p.Username = strings.TrimSpace(p.Username)
	profile.Normalize(p)

	candidate := p
	if isEdit && p.Settings.PasswordProtected && p.Settings.Password == "" {
		c := *p
		c.Settings.Password = "unchanged"
		candidate = &c
	}
	if err := profile.Validate(candidate); err != nil {
		return nil, err
	}

	return session, nil
}

func (srv *publishService) persist(
	ctx context.Context,
	session *entity.WalletSession,
	p *entity.Profile,
	previousAddress string,
) (*usecase.PublishResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if p.Settings.PasswordProtected {
		if p.Settings.Password == "" {
			return nil, domainerrors.ErrMissingRequiredField.WithDetails("settings.password")
		}
		if !srv.hasher.IsHash(p.Settings.Password) {
			hash, err := srv.hasher.Hash(p.Settings.Password)
			if err != nil {
				return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to hash profile password")
			}
			p.Settings.Password = hash
		}
	} else {
		p.Settings.Password = ""
	}

	now := srv.now()
	if p.Version == "" {
		p.Version = entity.ProfileVersion
	}
	if p.Metadata.CreatedAt == 0 {
		p.Metadata.CreatedAt = now.UnixMilli()
	}
	p.Metadata.UpdatedAt = now.UnixMilli()
	p.Metadata.Creator = session.Address
	p.Metadata.IsPublic = p.Settings.IsPublic

	data, err := profile.Encode(p)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	price, err := srv.store.Price(ctx, len(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get upload price")
	}
	balance, err := srv.store.Balance(ctx, session.Address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get balance")
	}
	if balance.Cmp(price) < 0 {
		return nil, errors.Wrap(
			domainerrors.ErrInsufficientBalance.WithDetails("need "+price.String()+", have "+balance.String()),
			"balance check",
		)
	}

	receipt, err := srv.store.Upload(ctx, data, profile.DocumentTags(srv.app, p))
	if err != nil {
		if errors.Is(err, domainerrors.ErrInsufficientBalance) {
			return nil, err
		}
		logger.Error("Profile upload failed",
			slog.String("username", p.Username),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrUploadFailed.WithDetails(err.Error()), "upload profile")
	}

	logger.Info("Profile stored",
		slog.String("username", p.Username),
		slog.String("content_address", receipt.ID),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	mapping := srv.storeMapping(ctx, p.Username, receipt.ID, now)
	if mapping.Err != nil {
		logger.Warn("Username mapping not stored, profile stays reachable by address only",
			slog.String("username", p.Username),
			slog.String("content_address", receipt.ID),
			slog.Any("error", mapping.Err),
		)
	}

	result := &usecase.PublishResult{
		ContentAddress: receipt.ID,
		RetrievalURL:   srv.store.RetrievalURL(receipt.ID),
		Receipt:        receipt,
		Mapping:        mapping,
	}
	srv.announce(ctx, logger, p, result, previousAddress, now)

	return result, nil
}

// storeMapping writes the username index record; failures are reported, never returned.
func (srv *publishService) storeMapping(ctx context.Context, username, address string, now time.Time) usecase.MappingOutcome {
	data, err := profile.EncodeMapping(&entity.UsernameMapping{
		Username:       username,
		ContentAddress: address,
		Timestamp:      now.UnixMilli(),
	})
	if err != nil {
		return usecase.MappingOutcome{Err: err}
	}

	receipt, err := srv.store.Upload(ctx, data, profile.MappingTags(srv.app, username))
	if err != nil {
		return usecase.MappingOutcome{Err: err}
	}

	return usecase.MappingOutcome{Stored: true, ContentAddress: receipt.ID}
}

func (srv *publishService) announce(
	ctx context.Context,
	logger *slog.Logger,
	p *entity.Profile,
	result *usecase.PublishResult,
	previousAddress string,
	now time.Time,
) {
	event := &service.ProfilePublishedEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		EventID:         uuid.NewString(),
		ContentAddress:  result.ContentAddress,
		PreviousAddress: previousAddress,
		Username:        p.Username,
		Creator:         p.Metadata.Creator,
		RetrievalURL:    result.RetrievalURL,
		MappingStored:   result.Mapping.Stored,
		PublishedAt:     now.UnixMilli(),
	}
	if err := srv.publisher.PublishProfilePublished(ctx, event); err != nil {
		logger.Warn("Failed to publish profile event",
			slog.String("content_address", result.ContentAddress),
			slog.Any("error", err),
		)
	}
}
