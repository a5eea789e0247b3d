package submissions

import (
	"context"
	"errors"
	"fmt"

	"github.com/curanest/booking-gateway/internal/domain"
	submissionRepo "github.com/curanest/booking-gateway/internal/infra/storage/submission"
	"github.com/curanest/booking-gateway/internal/service/submissions/models"
)

// Service сервис истории отправленных бронирований
type Service struct {
	repo   SubmissionRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo SubmissionRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID получает отправку по ID.
// Пользователь видит только свои отправки.
func (s *Service) GetByID(ctx context.Context, id int64, userID string) (*models.SubmissionResponse, error) {
	s.logger.Info("GetByID: fetching submission id=%d for user=%s", id, userID)

	submission, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, submissionRepo.ErrSubmissionNotFound) {
			s.logger.Warn("GetByID: submission id=%d not found", id)
			return nil, ErrSubmissionNotFound
		}
		s.logger.Error("GetByID: repository error for submission id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if submission.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%s to submission id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainSubmission(submission), nil
}

// GetUserSubmissions получает историю отправок пользователя.
// Опционально фильтрует по статусу.
func (s *Service) GetUserSubmissions(ctx context.Context, req *models.GetUserSubmissionsRequest) (*models.SubmissionListResponse, error) {
	s.logger.Info("GetUserSubmissions: fetching submissions for user=%s, status=%v", req.UserID, req.Status)

	var status *domain.SubmissionStatus
	if req.Status != nil {
		parsed, err := models.ToDomainSubmissionStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserSubmissions: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &parsed
	}

	submissions, err := s.repo.GetByUserID(ctx, req.UserID)
	if err != nil {
		s.logger.Error("GetUserSubmissions: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserSubmissions - repository error: %v", ErrInternal, err)
	}

	if status != nil {
		filtered := make([]*domain.Submission, 0, len(submissions))
		for _, sub := range submissions {
			if sub.Status == *status {
				filtered = append(filtered, sub)
			}
		}
		submissions = filtered
	}

	s.logger.Info("GetUserSubmissions: fetched %d submissions for user=%s", len(submissions), req.UserID)
	return models.FromDomainSubmissionList(submissions), nil
}
