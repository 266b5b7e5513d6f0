package submission_service

import (
	"context"

	"github.com/google/uuid"
	"github.com/tcp_snm/arena/internal/arena_errors"
	"github.com/tcp_snm/arena/internal/database"
	"github.com/tcp_snm/arena/internal/service/contest_service"
)

var (
	msgUniqueKey = map[string]error{
		"uq_mcq_submissions_user_question": arena_errors.ErrAlreadySubmitted,
		"uq_dsa_submissions_user_problem":  arena_errors.ErrAlreadySubmitted,
	}

	errMsgs = map[string]map[string]error{
		arena_errors.CodeUniqueConstraint: msgUniqueKey,
	}
)

type SubmissionService struct {
	DB                   SubmissionLedger
	ContestServiceConfig *contest_service.ContestService
	Judge                Judge
}

// SubmissionLedger is the append-only record of accepted submissions. The
// Has* reads are pre-check optimizations, the Insert* unique constraints
// are the authoritative one-submission-per-(user, question) guarantee.
type SubmissionLedger interface {
	HasMcqSubmission(ctx context.Context, arg database.HasMcqSubmissionParams) (bool, error)
	InsertMcqSubmission(ctx context.Context, arg database.InsertMcqSubmissionParams) (database.McqSubmission, error)
	HasDsaSubmission(ctx context.Context, arg database.HasDsaSubmissionParams) (bool, error)
	InsertDsaSubmission(ctx context.Context, arg database.InsertDsaSubmissionParams) (database.DsaSubmission, error)
}

type McqSubmissionRequest struct {
	ContestID           uuid.UUID `json:"-"`
	QuestionID          int32     `json:"-"`
	SelectedOptionIndex int32     `json:"selectedOptionIndex" validate:"gte=0"`
}

type DsaSubmissionRequest struct {
	ContestID    uuid.UUID `json:"-"`
	ProblemID    int32     `json:"-"`
	SolutionCode string    `json:"solutionCode" validate:"required"`
	Language     string    `json:"language" validate:"required"`
}

type ScoreResult struct {
	IsCorrect    bool  `json:"isCorrect"`
	PointsEarned int32 `json:"pointsEarned"`
}
