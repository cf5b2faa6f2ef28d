package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gstbill/gst_billing_app/internal/core/domain"
	portsrepo "github.com/gstbill/gst_billing_app/internal/core/ports/repositories"
	portssvc "github.com/gstbill/gst_billing_app/internal/core/ports/services"
	"github.com/gstbill/gst_billing_app/internal/dto"
	"github.com/gstbill/gst_billing_app/internal/middleware"
)

// headerService manages issuing-company profiles.
type headerService struct {
	headerRepo portsrepo.HeaderRepositoryFacade
}

// NewHeaderService creates a new headerService.
func NewHeaderService(headerRepo portsrepo.HeaderRepositoryFacade) portssvc.HeaderSvcFacade {
	return &headerService{headerRepo: headerRepo}
}

var _ portssvc.HeaderSvcFacade = (*headerService)(nil)

func (s *headerService) CreateHeader(ctx context.Context, req dto.CreateHeaderRequest, creatorUserID string) (*domain.Header, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	headerID := uuid.NewString()
	header := domain.Header{
		HeaderID: headerID,
		Name:     req.Name,
		Code:     req.Code,
		Address:  req.Address,
		GSTIN:    req.GSTIN,
		PAN:      req.PAN,
		Email:    req.Email,
		Phone:    req.Phone,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.Bank != nil {
		header.Bank = &domain.HeaderBankDetails{
			HeaderID:      headerID,
			BankName:      req.Bank.BankName,
			AccountNumber: req.Bank.AccountNumber,
			IFSCCode:      req.Bank.IFSCCode,
			UPIID:         req.Bank.UPIID,
			UPIQRImageURL: req.Bank.UPIQRImageURL,
		}
	}

	if err := s.headerRepo.SaveHeader(ctx, header); err != nil {
		logger.Error("Failed to save header", slog.String("error", err.Error()), slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to create header: %w", err)
	}

	logger.Info("Header created", slog.String("header_id", headerID), slog.String("code", req.Code))
	return &header, nil
}

func (s *headerService) GetHeaderByID(ctx context.Context, headerID string) (*domain.Header, error) {
	return s.headerRepo.FindHeaderByID(ctx, headerID)
}

func (s *headerService) ListHeaders(ctx context.Context) ([]domain.Header, error) {
	return s.headerRepo.ListHeaders(ctx)
}

// UpdateHeader merges set fields over the stored profile. The bill-number
// code prefix is immutable; already-issued numbers embed it.
func (s *headerService) UpdateHeader(ctx context.Context, headerID string, req dto.UpdateHeaderRequest, updaterUserID string) (*domain.Header, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	header, err := s.headerRepo.FindHeaderByID(ctx, headerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find header %s: %w", headerID, err)
	}

	if req.Name != nil {
		header.Name = *req.Name
	}
	if req.Address != nil {
		header.Address = *req.Address
	}
	if req.GSTIN != nil {
		header.GSTIN = *req.GSTIN
	}
	if req.PAN != nil {
		header.PAN = *req.PAN
	}
	if req.Email != nil {
		header.Email = *req.Email
	}
	if req.Phone != nil {
		header.Phone = *req.Phone
	}
	header.LastUpdatedAt = time.Now()
	header.LastUpdatedBy = updaterUserID

	if err := s.headerRepo.UpdateHeader(ctx, *header); err != nil {
		logger.Error("Failed to update header", slog.String("error", err.Error()), slog.String("header_id", headerID))
		return nil, fmt.Errorf("failed to update header: %w", err)
	}

	if req.Bank != nil {
		bank := domain.HeaderBankDetails{
			HeaderID:      headerID,
			BankName:      req.Bank.BankName,
			AccountNumber: req.Bank.AccountNumber,
			IFSCCode:      req.Bank.IFSCCode,
			UPIID:         req.Bank.UPIID,
			UPIQRImageURL: req.Bank.UPIQRImageURL,
		}
		if err := s.headerRepo.UpsertBankDetails(ctx, bank); err != nil {
			return nil, fmt.Errorf("failed to update bank details: %w", err)
		}
		header.Bank = &bank
	}

	return header, nil
}
