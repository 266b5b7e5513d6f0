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

// SubmitDsa admits a coding problem submission. The gates mirror SubmitMcq,
// scoring is delegated to the external judge and partial credit is awarded
// proportional to passed test cases.
func (s *SubmissionService) SubmitDsa(
	ctx context.Context,
	request DsaSubmissionRequest,
) (ScoreResult, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return ScoreResult{}, err
	}

	if err = user_service.AuthorizeRole(
		claims,
		user_service.RoleContestee,
		fmt.Sprintf(
			"user %s tried to submit a solution to problem %v without contestee role",
			claims.UserID,
			request.ProblemID,
		),
	); err != nil {
		return ScoreResult{}, err
	}

	problem, err := s.ContestServiceConfig.GetDsaProblemForSubmit(
		ctx,
		request.ContestID,
		request.ProblemID,
	)
	if err != nil {
		return ScoreResult{}, err
	}

	if err = s.ContestServiceConfig.CanSubmit(
		claims,
		problem.ContestStartTime,
		problem.ContestEndTime,
	); err != nil {
		return ScoreResult{}, err
	}

	submitted, err := s.DB.HasDsaSubmission(ctx, database.HasDsaSubmissionParams{
		UserID:    claims.UserID,
		ProblemID: problem.ID,
	})
	if err != nil {
		return ScoreResult{}, arena_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf(
				"cannot check prior submission of user %s for problem %v",
				claims.UserID,
				problem.ID,
			),
		)
	}
	if submitted {
		log.Warnf(
			"user %s tried to resubmit a solution for problem %v",
			claims.UserID,
			problem.ID,
		)
		return ScoreResult{}, arena_errors.ErrAlreadySubmitted
	}

	// answer shape, non empty code and a language identifier
	if err = service.ValidateInput(request); err != nil {
		return ScoreResult{}, err
	}

	// hand the solution to the judge with the full test case set
	testCases, err := s.ContestServiceConfig.FetchTestCasesByProblem(ctx, problem.ID)
	if err != nil {
		return ScoreResult{}, err
	}
	if len(testCases) == 0 {
		err = fmt.Errorf(
			"%w, problem %v has no test cases to judge against",
			arena_errors.ErrInternal,
			problem.ID,
		)
		log.Error(err)
		return ScoreResult{}, err
	}

	verdict, err := s.Judge.Evaluate(ctx, judgeRequestForProblem(problem, request, testCases))
	if err != nil {
		return ScoreResult{}, err
	}
	if verdict.TotalCases <= 0 || verdict.PassedCases < 0 || verdict.PassedCases > verdict.TotalCases {
		err = fmt.Errorf(
			"%w, judge returned inconsistent verdict %d/%d for problem %v",
			arena_errors.ErrInternal,
			verdict.PassedCases,
			verdict.TotalCases,
			problem.ID,
		)
		log.Error(err)
		return ScoreResult{}, err
	}

	// partial credit proportional to passed cases, correct only on a
	// full pass
	isCorrect := verdict.PassedCases == verdict.TotalCases
	pointsEarned := int32(int64(problem.Points) * int64(verdict.PassedCases) / int64(verdict.TotalCases))

	submission, err := s.DB.InsertDsaSubmission(ctx, database.InsertDsaSubmissionParams{
		UserID:       claims.UserID,
		ProblemID:    problem.ID,
		SolutionCode: request.SolutionCode,
		Language:     request.Language,
		IsCorrect:    isCorrect,
		PointsEarned: pointsEarned,
		PassedCases:  verdict.PassedCases,
		TotalCases:   verdict.TotalCases,
	})
	if err != nil {
		return ScoreResult{}, arena_errors.HandleDBErrors(
			err,
			errMsgs,
			fmt.Sprintf(
				"cannot insert dsa submission of user %s for problem %v in db",
				claims.UserID,
				problem.ID,
			),
		)
	}

	log.WithFields(log.Fields{
		"user_id":       submission.UserID,
		"problem_id":    submission.ProblemID,
		"passed_cases":  submission.PassedCases,
		"total_cases":   submission.TotalCases,
		"points_earned": submission.PointsEarned,
	}).Info("recorded dsa submission")

	return ScoreResult{
		IsCorrect:    submission.IsCorrect,
		PointsEarned: submission.PointsEarned,
	}, nil
}

func judgeRequestForProblem(
	problem database.GetDsaProblemByIdRow,
	request DsaSubmissionRequest,
	testCases []database.TestCase,
) JudgeRequest {
	judgeCases := make([]JudgeTestCase, 0, len(testCases))
	for _, tc := range testCases {
		judgeCases = append(judgeCases, JudgeTestCase{
			Input:          tc.Input,
			ExpectedOutput: tc.ExpectedOutput,
		})
	}
	return JudgeRequest{
		ProblemID:     problem.ID,
		SolutionCode:  request.SolutionCode,
		Language:      request.Language,
		TimeLimitMS:   problem.TimeLimitMs,
		MemoryLimitKB: problem.MemoryLimitKb,
		TestCases:     judgeCases,
	}
}
