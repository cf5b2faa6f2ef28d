package services

import (
	"context"

	"github.com/gstbill/gst_billing_app/internal/core/domain"
	"github.com/gstbill/gst_billing_app/internal/dto"
)

// HeaderSvcFacade manages issuing-company profiles and their bank details.
type HeaderSvcFacade interface {
	CreateHeader(ctx context.Context, req dto.CreateHeaderRequest, creatorUserID string) (*domain.Header, error)
	GetHeaderByID(ctx context.Context, headerID string) (*domain.Header, error)
	ListHeaders(ctx context.Context) ([]domain.Header, error)
	UpdateHeader(ctx context.Context, headerID string, req dto.UpdateHeaderRequest, updaterUserID string) (*domain.Header, error)
}
