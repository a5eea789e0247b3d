package submission

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/curanest/booking-gateway/internal/domain"
	"github.com/curanest/booking-gateway/pkg/psqlbuilder"
	"github.com/curanest/booking-gateway/pkg/txmanager"
)

const (
	submissionsTable = "booking_submissions"
	tasksTable       = "booking_submission_tasks"
)

var submissionColumns = []string{
	"id",
	"draft_id",
	"user_id",
	"package_id",
	"patient_id",
	"nursing_id",
	"remote_id",
	"number_of_days",
	"day_interval",
	"status",
	"discount_percent",
	"total_duration_minutes",
	"total_price_per_day",
	"discounted_price_per_day",
	"total_price_with_days",
	"discounted_price_with_days",
	"dates",
	"created_at",
}

// Repository журнал отправленных бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет отправку вместе со строками задач.
// Две вставки атомарны только внутри транзакции из контекста (txmanager.Do).
func (r *Repository) Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := insertSubmissionQuery(s).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	s.CreatedAt = createdAt.Time

	if len(s.Tasks) == 0 {
		return s, nil
	}

	query, args, err = insertTasksQuery(s.ID, s.Tasks).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build tasks insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute tasks insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// GetByID получает отправку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Submission, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(submissionColumns...).
		From(submissionsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSubmission(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id=%d", ErrSubmissionNotFound, id)
		}
		return nil, fmt.Errorf("%w: GetByID - scan: %v", ErrScanRow, err)
	}

	if err := r.attachTasks(ctx, executor, []*domain.Submission{s}); err != nil {
		return nil, err
	}
	return s, nil
}

// GetByUserID получает все отправки пользователя, новые первыми
func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]*domain.Submission, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(submissionColumns...).
		From(submissionsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	submissions := make([]*domain.Submission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan: %v", ErrScanRow, err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows: %v", ErrScanRow, err)
	}

	if err := r.attachTasks(ctx, executor, submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *Repository) attachTasks(ctx context.Context, executor DBExecutor, submissions []*domain.Submission) error {
	if len(submissions) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.Submission, len(submissions))
	ids := make([]int64, 0, len(submissions))
	for _, s := range submissions {
		s.Tasks = make([]domain.SubmissionTask, 0)
		byID[s.ID] = s
		ids = append(ids, s.ID)
	}

	query, args, err := selectTasksQuery(ids).ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachTasks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachTasks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			submissionID int64
			task         domain.SubmissionTask
		)
		if err := rows.Scan(
			&submissionID,
			&task.TaskID,
			&task.TotalUnit,
			&task.TotalCost,
			&task.EstDuration,
			&task.ClientNote,
		); err != nil {
			return fmt.Errorf("%w: attachTasks - scan: %v", ErrScanRow, err)
		}
		if s, ok := byID[submissionID]; ok {
			s.Tasks = append(s.Tasks, task)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachTasks - rows: %v", ErrScanRow, err)
	}

	return nil
}

func insertSubmissionQuery(s *domain.Submission) squirrel.InsertBuilder {
	return psqlbuilder.Insert(submissionsTable).
		Columns(
			"draft_id",
			"user_id",
			"package_id",
			"patient_id",
			"nursing_id",
			"remote_id",
			"number_of_days",
			"day_interval",
			"status",
			"discount_percent",
			"total_duration_minutes",
			"total_price_per_day",
			"discounted_price_per_day",
			"total_price_with_days",
			"discounted_price_with_days",
			"dates",
		).
		Values(
			s.DraftID,
			s.UserID,
			s.PackageID,
			s.PatientID,
			s.NursingID,
			s.RemoteID,
			s.NumberOfDays,
			s.Interval,
			string(s.Status),
			s.DiscountPercent,
			s.TotalDurationMinutes,
			s.TotalPricePerDay,
			s.DiscountedPricePerDay,
			s.TotalPriceWithDays,
			s.DiscountedPriceWithDays,
			pq.Array(s.Dates),
		).
		Suffix("RETURNING id, created_at")
}

func insertTasksQuery(submissionID int64, tasks []domain.SubmissionTask) squirrel.InsertBuilder {
	builder := psqlbuilder.Insert(tasksTable).
		Columns("submission_id", "position", "task_id", "total_unit", "total_cost", "est_duration", "client_note")
	for i, t := range tasks {
		builder = builder.Values(submissionID, i, t.TaskID, t.TotalUnit, t.TotalCost, t.EstDuration, t.ClientNote)
	}
	return builder
}

func selectTasksQuery(submissionIDs []int64) squirrel.SelectBuilder {
	return psqlbuilder.Select("submission_id", "task_id", "total_unit", "total_cost", "est_duration", "client_note").
		From(tasksTable).
		Where(squirrel.Eq{"submission_id": submissionIDs}).
		OrderBy("submission_id", "position")
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSubmission(row rowScanner) (*domain.Submission, error) {
	var (
		s         domain.Submission
		nursingID sql.NullString
		remoteID  sql.NullString
		status    string
		createdAt sql.NullTime
	)

	err := row.Scan(
		&s.ID,
		&s.DraftID,
		&s.UserID,
		&s.PackageID,
		&s.PatientID,
		&nursingID,
		&remoteID,
		&s.NumberOfDays,
		&s.Interval,
		&status,
		&s.DiscountPercent,
		&s.TotalDurationMinutes,
		&s.TotalPricePerDay,
		&s.DiscountedPricePerDay,
		&s.TotalPriceWithDays,
		&s.DiscountedPriceWithDays,
		pq.Array(&s.Dates),
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if nursingID.Valid {
		s.NursingID = &nursingID.String
	}
	if remoteID.Valid {
		s.RemoteID = &remoteID.String
	}
	s.Status = domain.SubmissionStatus(status)
	s.CreatedAt = createdAt.Time

	return &s, nil
}
