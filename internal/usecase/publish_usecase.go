// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"linkvault/internal/domain/entity"
	"linkvault/internal/domain/service"
)

// PublishUsecase stores new profile versions and keeps the username index current.
type PublishUsecase interface {
	// Publish stores p as a new document owned by the connected wallet.
	Publish(ctx context.Context, p *entity.Profile) (*PublishResult, error)

	// Republish stores an edited version of the document at previousAddress and
	// repoints its username mapping to the new address.
	Republish(ctx context.Context, previousAddress string, p *entity.Profile) (*PublishResult, error)
}

// MappingOutcome reports the best-effort username mapping write. Err is logged
// by the publisher and never returned as the operation's error.
type MappingOutcome struct {
	Stored         bool   `json:"stored"`
	ContentAddress string `json:"contentAddress,omitempty"`
	Err            error  `json:"-"`
}

// PublishResult is returned for every stored profile version.
type PublishResult struct {
	ContentAddress string                 `json:"contentAddress"`
	RetrievalURL   string                 `json:"retrievalUrl"`
	Receipt        *service.UploadReceipt `json:"receipt"`
	Mapping        MappingOutcome         `json:"mapping"`
}
