package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"linkvault/config"
	deliverycontext "linkvault/internal/delivery/context"
	"linkvault/internal/domain/constants"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/profile"
	"linkvault/internal/domain/service"
	"linkvault/internal/usecase"

	"github.com/pkg/errors"
)

// resolveService implements the ResolveUsecase interface.
type resolveService struct {
	app    profile.AppInfo
	store  service.ContentStore
	loader *documentLoader
	logger *slog.Logger
}

// NewResolveService is the constructor for resolveService.
func NewResolveService(
	cfg *config.Config,
	store service.ContentStore,
	cache service.DocumentCache,
	logger *slog.Logger,
) usecase.ResolveUsecase {
	return &resolveService{
		app:    appInfo(cfg),
		store:  store,
		loader: &documentLoader{store: store, cache: cache, logger: logger},
		logger: logger,
	}
}

func appInfo(cfg *config.Config) profile.AppInfo {
	return profile.AppInfo{
		Name:        cfg.App.Name,
		Version:     cfg.App.Version,
		ProfileType: cfg.App.ProfileType,
	}
}

// ResolveUsername runs MappingQuery, MappingFetch and DocumentFetch strictly in sequence.
func (srv *resolveService) ResolveUsername(ctx context.Context, username string) (*usecase.ResolvedProfile, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	username = strings.TrimSpace(username)

	if !profile.ValidUsername(username) {
		return nil, &usecase.ResolutionError{Stage: usecase.StageStart, Reason: usecase.ReasonInvalidUsername}
	}

	// MappingQuery
	results, err := srv.store.Query(ctx, service.QueryFilter{
		Tags:  profile.MappingFilter(srv.app, username),
		Limit: 1,
		Order: service.SortNewestFirst,
	})
	if err != nil {
		return nil, srv.fail(logger, username, usecase.StageMappingQuery, usecase.ReasonMappingUnavailable, err)
	}
	if len(results) == 0 {
		return nil, srv.fail(logger, username, usecase.StageMappingQuery, usecase.ReasonUsernameNotFound, nil)
	}

	// MappingFetch
	data, err := srv.loader.fetch(ctx, results[0].ID)
	if err != nil {
		return nil, srv.fail(logger, username, usecase.StageMappingFetch, usecase.ReasonMappingUnavailable, err)
	}
	mapping, err := profile.DecodeMapping(data)
	if err != nil {
		return nil, srv.fail(logger, username, usecase.StageMappingFetch, usecase.ReasonMappingUnavailable, err)
	}

	// DocumentFetch
	doc, err := srv.loader.loadProfile(ctx, mapping.ContentAddress)
	if err != nil {
		return nil, srv.fail(logger, username, usecase.StageDocumentFetch, usecase.ReasonProfileUnavailable, err)
	}

	logger.Debug("Username resolved",
		slog.String("username", username),
		slog.String("mapping", results[0].ID),
		slog.String("content_address", mapping.ContentAddress),
	)

	return &usecase.ResolvedProfile{
		Username:       username,
		ContentAddress: mapping.ContentAddress,
		RetrievalURL:   srv.store.RetrievalURL(mapping.ContentAddress),
		Mapping:        mapping,
		Profile:        doc,
	}, nil
}

func (srv *resolveService) fail(
	logger *slog.Logger,
	username string,
	stage usecase.ResolutionStage,
	reason usecase.ResolutionReason,
	cause error,
) error {
	logger.Info("Username resolution failed",
		slog.String("username", username),
		slog.String("stage", string(stage)),
		slog.String("reason", string(reason)),
		slog.Any("error", cause),
	)

	return &usecase.ResolutionError{Stage: stage, Reason: reason, Err: cause}
}

// FetchByAddress loads one document.
func (srv *resolveService) FetchByAddress(ctx context.Context, address string) (*entity.Profile, error) {
	return srv.loader.loadProfile(ctx, address)
}

// Verify looks up the tags stored with address.
func (srv *resolveService) Verify(ctx context.Context, address string) (*usecase.Verification, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, domainerrors.ErrMissingRequiredField.WithDetails("address")
	}

	results, err := srv.store.Query(ctx, service.QueryFilter{IDs: []string{address}, Limit: 1})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query record tags")
	}
	if len(results) == 0 {
		return nil, errors.Wrapf(domainerrors.ErrProfileNotFound, "no record at %s", address)
	}

	record := results[0]
	get := func(name string) string {
		v, _ := record.Tags.Get(name)

		return v
	}
	public, _ := strconv.ParseBool(get(constants.TagPublic))

	return &usecase.Verification{
		ContentAddress: record.ID,
		Creator:        get(constants.TagCreator),
		Name:           get(constants.TagName),
		Username:       get(constants.TagUsername),
		Public:         public,
		Timestamp:      record.Timestamp.UnixMilli(),
		RetrievalURL:   srv.store.RetrievalURL(record.ID),
		Authentic: get(constants.TagAppName) == srv.app.Name &&
			get(constants.TagProfileType) == srv.app.ProfileType,
		Tags: record.Tags,
	}, nil
}
