package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/validation"
)

type contactUsecase struct {
	repo     domain.ContactRepository
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(repo domain.ContactRepository, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		repo:     repo,
		validate: validate,
	}
}

// Submit is the authoritative validation and persistence path for contact
// submissions. Client-side guards are advisory; everything is re-checked
// here against the schema before anything touches storage.
func (uc *contactUsecase) Submit(ctx context.Context, req *domain.ContactRequest, meta domain.RequestMeta) (*domain.ContactMessage, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Company = strings.TrimSpace(req.Company)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if err := uc.validate.Struct(req); err != nil {
		violations := make([]domain.FieldViolation, 0)
		for _, fe := range validation.FormatValidationErrors(err) {
			violations = append(violations, domain.FieldViolation{
				Field:   fe.Field,
				Message: fe.Message,
			})
		}
		return nil, &domain.InvalidSubmissionError{Violations: violations}
	}

	// Honeypot check runs after schema validation: bots get the same
	// 400s a human would, and a silent discard otherwise.
	if req.HP != "" {
		logger.Log.Info("Discarding bot submission", "ip", meta.IP)
		return nil, domain.ErrBotDetected
	}

	msg := &domain.ContactMessage{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Company:   req.Company,
		Subject:   req.Subject,
		Message:   req.Message,
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
	}

	if err := uc.repo.Save(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to persist contact message: %w", err)
	}

	return msg, nil
}
