package usecase

import (
	"context"
	"fmt"

	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
)

// ResolveUsecase reads published profiles.
type ResolveUsecase interface {
	// ResolveUsername follows the newest mapping of username to its document.
	// Failures are *ResolutionError values.
	ResolveUsername(ctx context.Context, username string) (*ResolvedProfile, error)

	// FetchByAddress loads the document stored at address.
	FetchByAddress(ctx context.Context, address string) (*entity.Profile, error)

	// Verify reports the tags the network holds for address.
	Verify(ctx context.Context, address string) (*Verification, error)
}

// ResolutionStage is a state of the username resolution pipeline.
type ResolutionStage string

const (
	StageStart         ResolutionStage = "Start"
	StageMappingQuery  ResolutionStage = "MappingQuery"
	StageMappingFetch  ResolutionStage = "MappingFetch"
	StageDocumentFetch ResolutionStage = "DocumentFetch"
	StageDone          ResolutionStage = "Done"
)

// ResolutionReason explains why resolution failed.
type ResolutionReason string

const (
	ReasonInvalidUsername    ResolutionReason = "InvalidUsername"
	ReasonUsernameNotFound   ResolutionReason = "UsernameNotFound"
	ReasonMappingUnavailable ResolutionReason = "MappingUnavailable"
	ReasonProfileUnavailable ResolutionReason = "ProfileUnavailable"
)

// ResolutionError is the Failed state of the pipeline. It matches the AppError
// of its reason with errors.Is and errors.As.
type ResolutionError struct {
	Stage  ResolutionStage
	Reason ResolutionReason
	Err    error
}

func (e *ResolutionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("resolve %s: %s", e.Stage, e.Reason)
	}

	return fmt.Sprintf("resolve %s: %s: %v", e.Stage, e.Reason, e.Err)
}

// Unwrap exposes both the reason's AppError and the underlying cause.
func (e *ResolutionError) Unwrap() []error {
	errs := []error{e.Reason.AppError()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}

// AppError maps the reason onto the error taxonomy.
func (r ResolutionReason) AppError() *domainerrors.BaseError {
	switch r {
	case ReasonInvalidUsername:
		return domainerrors.ErrInvalidUsername
	case ReasonUsernameNotFound:
		return domainerrors.ErrUsernameNotFound
	case ReasonMappingUnavailable:
		return domainerrors.ErrNetworkError
	default:
		return domainerrors.ErrProfileNotFound
	}
}

// ResolvedProfile is the Done state of the pipeline.
type ResolvedProfile struct {
	Username       string                  `json:"username"`
	ContentAddress string                  `json:"contentAddress"`
	RetrievalURL   string                  `json:"retrievalUrl"`
	Mapping        *entity.UsernameMapping `json:"mapping"`
	Profile        *entity.Profile         `json:"profile"`
}

// Verification describes the on-network record of a document.
type Verification struct {
	ContentAddress string      `json:"contentAddress"`
	Creator        string      `json:"creator"`
	Name           string      `json:"name"`
	Username       string      `json:"username"`
	Public         bool        `json:"public"`
	Timestamp      int64       `json:"timestamp"` // epoch millis
	RetrievalURL   string      `json:"retrievalUrl"`
	Authentic      bool        `json:"authentic"` // written by this application
	Tags           entity.Tags `json:"tags"`
}
