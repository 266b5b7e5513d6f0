package submission_service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/arena/internal/arena_errors"
	"github.com/tcp_snm/arena/internal/database"
	"github.com/tcp_snm/arena/internal/service"
	"github.com/tcp_snm/arena/internal/service/user_service"
)

// SubmitMcq admits and scores a multiple choice answer. Every gate below
// short-circuits, a request that clears them all results in exactly one
// ledger entry.
func (s *SubmissionService) SubmitMcq(
	ctx context.Context,
	request McqSubmissionRequest,
) (ScoreResult, error) {
	// get user from claims
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return ScoreResult{}, err
	}

	// only contestees may submit answers
	if err = user_service.AuthorizeRole(
		claims,
		user_service.RoleContestee,
		fmt.Sprintf(
			"user %s tried to submit an answer to question %v without contestee role",
			claims.UserID,
			request.QuestionID,
		),
	); err != nil {
		return ScoreResult{}, err
	}

	// resolve the question together with its owning contest's time window
	question, err := s.ContestServiceConfig.GetMcqQuestionForSubmit(
		ctx,
		request.ContestID,
		request.QuestionID,
	)
	if err != nil {
		return ScoreResult{}, err
	}

	// the contest must be ongoing
	if err = s.ContestServiceConfig.CanSubmit(
		claims,
		question.ContestStartTime,
		question.ContestEndTime,
	); err != nil {
		return ScoreResult{}, err
	}

	// ask the ledger about a prior submission. this read is a cheap
	// rejection only, the insert below is the real uniqueness guarantee
	submitted, err := s.DB.HasMcqSubmission(ctx, database.HasMcqSubmissionParams{
		UserID:     claims.UserID,
		QuestionID: question.ID,
	})
	if err != nil {
		return ScoreResult{}, arena_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf(
				"cannot check prior submission of user %s for question %v",
				claims.UserID,
				question.ID,
			),
		)
	}
	if submitted {
		log.Warnf(
			"user %s tried to resubmit an answer for question %v",
			claims.UserID,
			question.ID,
		)
		return ScoreResult{}, arena_errors.ErrAlreadySubmitted
	}

	// answer shape
	if err = service.ValidateInput(request); err != nil {
		return ScoreResult{}, err
	}
	if int(request.SelectedOptionIndex) >= len(question.Options) {
		return ScoreResult{}, fmt.Errorf(
			"%w, selectedOptionIndex must be within [0, %d)",
			arena_errors.ErrInvalidRequest,
			len(question.Options),
		)
	}

	// score. a correct answer earns the question's configured points
	isCorrect := request.SelectedOptionIndex == question.CorrectOptionIndex
	var pointsEarned int32
	if isCorrect {
		pointsEarned = question.Points
	}

	// persist. a unique constraint violation here means a concurrent
	// request won the race, surfaced as already submitted
	submission, err := s.DB.InsertMcqSubmission(ctx, database.InsertMcqSubmissionParams{
		UserID:              claims.UserID,
		QuestionID:          question.ID,
		SelectedOptionIndex: request.SelectedOptionIndex,
		IsCorrect:           isCorrect,
		PointsEarned:        pointsEarned,
	})
	if err != nil {
		return ScoreResult{}, arena_errors.HandleDBErrors(
			err,
			errMsgs,
			fmt.Sprintf(
				"cannot insert mcq submission of user %s for question %v in db",
				claims.UserID,
				question.ID,
			),
		)
	}

	log.WithFields(log.Fields{
		"user_id":       submission.UserID,
		"question_id":   submission.QuestionID,
		"is_correct":    submission.IsCorrect,
		"points_earned": submission.PointsEarned,
	}).Info("recorded mcq submission")

	return ScoreResult{
		IsCorrect:    submission.IsCorrect,
		PointsEarned: submission.PointsEarned,
	}, nil
}
