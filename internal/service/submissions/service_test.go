package submissions

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curanest/booking-gateway/internal/domain"
	submissionRepo "github.com/curanest/booking-gateway/internal/infra/storage/submission"
	"github.com/curanest/booking-gateway/internal/service/submissions/models"
	"github.com/curanest/booking-gateway/pkg/logger"
	"github.com/curanest/booking-gateway/pkg/ptr"
)

type fakeRepo struct {
	byID   map[int64]*domain.Submission
	byUser map[string][]*domain.Submission
	err    error
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Submission, error) {
	if r.err != nil {
		return nil, r.err
	}
	s, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", submissionRepo.ErrSubmissionNotFound, id)
	}
	return s, nil
}

func (r *fakeRepo) GetByUserID(_ context.Context, userID string) ([]*domain.Submission, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.byUser[userID], nil
}

func newFixture() *fakeRepo {
	submitted := &domain.Submission{
		ID: 1, UserID: "user-1", Status: domain.SubmissionStatusSubmitted, RemoteID: ptr.Ptr("cus-1"),
		Dates: []string{"2026-03-01T08:00:00+07:00"},
		Tasks: []domain.SubmissionTask{{TaskID: "task-1", TotalUnit: 2, TotalCost: 120000}},
	}
	rejected := &domain.Submission{ID: 2, UserID: "user-1", Status: domain.SubmissionStatusRejected}

	return &fakeRepo{
		byID:   map[int64]*domain.Submission{1: submitted, 2: rejected},
		byUser: map[string][]*domain.Submission{"user-1": {submitted, rejected}},
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(newFixture(), logger.NewNop())

	resp, err := svc.GetByID(context.Background(), 1, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "cus-1", *resp.RemoteID)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, 2, resp.Tasks[0].TotalUnit)
}

func TestGetByID_Errors(t *testing.T) {
	svc := NewService(newFixture(), logger.NewNop())

	_, err := svc.GetByID(context.Background(), 99, "user-1")
	assert.ErrorIs(t, err, ErrSubmissionNotFound)

	_, err = svc.GetByID(context.Background(), 1, "user-2")
	assert.ErrorIs(t, err, ErrAccessDenied)

	broken := NewService(&fakeRepo{err: errors.New("db down")}, logger.NewNop())
	_, err = broken.GetByID(context.Background(), 1, "user-1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetUserSubmissions(t *testing.T) {
	svc := NewService(newFixture(), logger.NewNop())

	all, err := svc.GetUserSubmissions(context.Background(), &models.GetUserSubmissionsRequest{UserID: "user-1"})
	require.NoError(t, err)
	assert.Len(t, all.Submissions, 2)

	rejected, err := svc.GetUserSubmissions(context.Background(), &models.GetUserSubmissionsRequest{
		UserID: "user-1",
		Status: ptr.Ptr("rejected"),
	})
	require.NoError(t, err)
	require.Len(t, rejected.Submissions, 1)
	assert.Equal(t, int64(2), rejected.Submissions[0].ID)
	assert.NotNil(t, rejected.Submissions[0].Dates)

	empty, err := svc.GetUserSubmissions(context.Background(), &models.GetUserSubmissionsRequest{UserID: "nobody"})
	require.NoError(t, err)
	assert.NotNil(t, empty.Submissions)
	assert.Empty(t, empty.Submissions)

	_, err = svc.GetUserSubmissions(context.Background(), &models.GetUserSubmissionsRequest{
		UserID: "user-1",
		Status: ptr.Ptr("cancelled"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
