package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gstbill/gst_billing_app/internal/apperrors"
	"github.com/gstbill/gst_billing_app/internal/core/domain"
	portsrepo "github.com/gstbill/gst_billing_app/internal/core/ports/repositories"
	portssvc "github.com/gstbill/gst_billing_app/internal/core/ports/services"
	"github.com/gstbill/gst_billing_app/internal/dto"
	"github.com/gstbill/gst_billing_app/internal/middleware"
	"github.com/gstbill/gst_billing_app/internal/utils"
)

const typeaheadLimit = 10

// clientService manages the client directory.
type clientService struct {
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new clientService.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// CreateClient inserts a client unless similar active names exist and the
// caller has not confirmed. The duplicate check is advisory: a confirmed
// create inserts even an exact name match.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*portssvc.ClientCreateOutcome, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Confirmed {
		candidates, err := s.clientRepo.FindActiveClientsByFuzzyName(ctx, strings.TrimSpace(req.Name))
		if err != nil {
			return nil, fmt.Errorf("failed to check for similar client names: %w", err)
		}
		if len(candidates) > 0 {
			logger.Info("Client create withheld, similar names found",
				slog.String("name", req.Name), slog.Int("candidates", len(candidates)))
			return &portssvc.ClientCreateOutcome{Candidates: candidates}, nil
		}
	}

	now := time.Now()
	client := domain.Client{
		ClientID:      uuid.NewString(),
		Name:          strings.TrimSpace(req.Name),
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		GSTIN:         req.GSTIN,
		Address:       req.Address,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		logger.Error("Failed to save client", slog.String("error", err.Error()), slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	logger.Info("Client created", slog.String("client_id", client.ClientID))
	return &portssvc.ClientCreateOutcome{Client: &client}, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	return s.clientRepo.FindClientByID(ctx, clientID)
}

func (s *clientService) ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	return s.clientRepo.FindClients(ctx, limit, offset)
}

func (s *clientService) SearchClients(ctx context.Context, q string) ([]domain.Client, error) {
	q = strings.TrimSpace(q)
	if len(q) < 2 {
		return nil, fmt.Errorf("search query must be at least 2 characters: %w", apperrors.ErrValidation)
	}
	return s.clientRepo.SearchActiveClients(ctx, q, typeaheadLimit)
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterUserID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}
	if !client.IsActive {
		return nil, fmt.Errorf("client %s is inactive: %w", clientID, apperrors.ErrNotFound)
	}

	if req.Name != nil {
		client.Name = strings.TrimSpace(*req.Name)
	}
	if req.ContactPerson != nil {
		client.ContactPerson = *req.ContactPerson
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.GSTIN != nil {
		client.GSTIN = *req.GSTIN
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = updaterUserID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string, requestingUserID string) error {
	if err := s.clientRepo.DeactivateClient(ctx, clientID, time.Now(), requestingUserID); err != nil {
		return fmt.Errorf("failed to deactivate client %s: %w", clientID, err)
	}
	return nil
}

// BulkImportClients processes rows independently and sequentially, so an
// in-batch repeat of a just-imported name lands in duplicates.
func (s *clientService) BulkImportClients(ctx context.Context, rows []domain.ClientImportRow, importerUserID string) (*domain.ClientImportResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	result := &domain.ClientImportResult{
		Imported:   []domain.ImportedClient{},
		Duplicates: []domain.DuplicateClient{},
		Errors:     []domain.ImportRowError{},
	}

	for i, row := range rows {
		rowNo := i + 1
		name := strings.TrimSpace(row.Name)

		if msg := validateImportRow(name, row); msg != "" {
			result.Errors = append(result.Errors, domain.ImportRowError{Row: rowNo, Name: row.Name, Message: msg})
			continue
		}

		existing, err := s.clientRepo.FindActiveClientByExactName(ctx, name)
		switch {
		case err == nil:
			result.Duplicates = append(result.Duplicates, domain.DuplicateClient{
				Row:              rowNo,
				Name:             name,
				ExistingClientID: existing.ClientID,
			})
			continue
		case !errors.Is(err, apperrors.ErrNotFound):
			return nil, fmt.Errorf("failed duplicate check for row %d: %w", rowNo, err)
		}

		now := time.Now()
		client := domain.Client{
			ClientID:      uuid.NewString(),
			Name:          name,
			ContactPerson: row.ContactPerson,
			Phone:         row.Phone,
			Email:         row.Email,
			GSTIN:         row.GSTIN,
			Address:       row.Address,
			IsActive:      true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     importerUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: importerUserID,
			},
		}
		if err := s.clientRepo.SaveClient(ctx, client); err != nil {
			result.Errors = append(result.Errors, domain.ImportRowError{Row: rowNo, Name: name, Message: "failed to insert row"})
			logger.Warn("Bulk import row failed", slog.Int("row", rowNo), slog.String("error", err.Error()))
			continue
		}
		result.Imported = append(result.Imported, domain.ImportedClient{Row: rowNo, ClientID: client.ClientID, Name: name})
	}

	result.Counts = domain.ClientImportCounts{
		Imported:   len(result.Imported),
		Duplicates: len(result.Duplicates),
		Errors:     len(result.Errors),
	}
	logger.Info("Bulk client import finished",
		slog.Int("imported", result.Counts.Imported),
		slog.Int("duplicates", result.Counts.Duplicates),
		slog.Int("errors", result.Counts.Errors))
	return result, nil
}

func validateImportRow(name string, row domain.ClientImportRow) string {
	if name == "" {
		return "name is required"
	}
	if strings.TrimSpace(row.ContactPerson) == "" {
		return "contact person is required"
	}
	if !utils.IsValidPhone(row.Phone) {
		return "phone must be 10 digits"
	}
	if row.GSTIN != "" && !utils.IsValidGSTIN(row.GSTIN) {
		return "invalid GSTIN format"
	}
	return ""
}
