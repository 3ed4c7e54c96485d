package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/validation"
)

// Mock Repositories
type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Save(ctx context.Context, msg *domain.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func newContactUC(repo domain.ContactRepository) domain.ContactUsecase {
	logger.Init()
	validate := validator.New()
	validation.RegisterValidators(validate)
	return usecase.NewContactUsecase(repo, validate)
}

func validRequest() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Company: "ACME",
		Subject: domain.SubjectClient,
		Message: "I would like to discuss a project with you.",
	}
}

func meta() domain.RequestMeta {
	return domain.RequestMeta{IP: "203.0.113.7", UserAgent: "test-agent/1.0"}
}

func violationFields(err error) []string {
	var invalid *domain.InvalidSubmissionError
	if !errors.As(err, &invalid) {
		return nil
	}
	fields := make([]string, 0, len(invalid.Violations))
	for _, v := range invalid.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func TestContactSubmit(t *testing.T) {
	t.Run("Valid submission is persisted with request metadata", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.ContactMessage")).Return(nil)

		uc := newContactUC(mockRepo)
		msg, err := uc.Submit(context.Background(), validRequest(), meta())

		require.NoError(t, err)
		assert.NotEmpty(t, msg.ID)
		assert.Equal(t, "203.0.113.7", msg.IP)
		assert.Equal(t, "test-agent/1.0", msg.UserAgent)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Company defaults to empty string when absent", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		req := validRequest()
		req.Company = ""
		msg, err := newContactUC(mockRepo).Submit(context.Background(), req, meta())

		require.NoError(t, err)
		assert.Equal(t, "", msg.Company)
	})

	t.Run("Honeypot submissions are discarded, never persisted", func(t *testing.T) {
		mockRepo := new(MockContactRepo)

		req := validRequest()
		req.HP = "gotcha"
		msg, err := newContactUC(mockRepo).Submit(context.Background(), req, meta())

		assert.Nil(t, msg)
		assert.ErrorIs(t, err, domain.ErrBotDetected)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Missing required fields fail schema validation", func(t *testing.T) {
		for _, field := range []string{"name", "email", "subject", "message"} {
			req := validRequest()
			switch field {
			case "name":
				req.Name = ""
			case "email":
				req.Email = ""
			case "subject":
				req.Subject = ""
			case "message":
				req.Message = ""
			}

			mockRepo := new(MockContactRepo)
			_, err := newContactUC(mockRepo).Submit(context.Background(), req, meta())
			assert.Contains(t, violationFields(err), field)
			mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		}
	})

	t.Run("Message length bounds are enforced", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := newContactUC(mockRepo)

		req := validRequest()
		req.Message = "too short"
		_, err := uc.Submit(context.Background(), req, meta())
		assert.Contains(t, violationFields(err), "message")

		req = validRequest()
		req.Message = strings.Repeat("a", 1201)
		_, err = uc.Submit(context.Background(), req, meta())
		assert.Contains(t, violationFields(err), "message")
	})

	t.Run("Subject outside the taxonomy is rejected", func(t *testing.T) {
		req := validRequest()
		req.Subject = "spam"
		_, err := newContactUC(new(MockContactRepo)).Submit(context.Background(), req, meta())
		assert.Contains(t, violationFields(err), "subject")
	})

	t.Run("Name with digits or markup is rejected", func(t *testing.T) {
		req := validRequest()
		req.Name = "Jane123"
		_, err := newContactUC(new(MockContactRepo)).Submit(context.Background(), req, meta())
		assert.Contains(t, violationFields(err), "name")
	})

	t.Run("Persistence failure propagates as an error", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("Save", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

		msg, err := newContactUC(mockRepo).Submit(context.Background(), validRequest(), meta())
		assert.Nil(t, msg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "persist")
	})
}
