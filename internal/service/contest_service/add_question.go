package contest_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/arena/internal/arena_errors"
	"github.com/tcp_snm/arena/internal/database"
	"github.com/tcp_snm/arena/internal/service"
	"github.com/tcp_snm/arena/internal/service/user_service"
)

func (c *ContestService) AddMcqQuestion(
	ctx context.Context,
	request AddMcqQuestionRequest,
) (database.McqQuestion, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return database.McqQuestion{}, err
	}

	if err = user_service.AuthorizeRole(
		claims,
		user_service.RoleCreator,
		fmt.Sprintf(
			"user %s tried to add a question to contest %v without creator role",
			claims.UserID,
			request.ContestID,
		),
	); err != nil {
		return database.McqQuestion{}, err
	}

	if err = service.ValidateInput(request); err != nil {
		return database.McqQuestion{}, err
	}

	// the correct option must index into the options
	if int(request.CorrectOptionIndex) >= len(request.Options) {
		return database.McqQuestion{}, fmt.Errorf(
			"%w, correct_option_index must be within [0, %d)",
			arena_errors.ErrInvalidRequest,
			len(request.Options),
		)
	}

	// contest must exist before attaching questions to it
	if _, err = c.fetchContestById(ctx, request.ContestID); err != nil {
		return database.McqQuestion{}, err
	}

	dbQuestion, err := c.DB.InsertMcqQuestion(ctx, database.InsertMcqQuestionParams{
		ContestID:          request.ContestID,
		QuestionText:       request.QuestionText,
		Options:            request.Options,
		CorrectOptionIndex: request.CorrectOptionIndex,
		Points:             request.Points,
	})
	if err != nil {
		return database.McqQuestion{}, arena_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot insert mcq question in contest %v", request.ContestID),
		)
	}

	log.WithFields(log.Fields{
		"question_id": dbQuestion.ID,
		"contest_id":  dbQuestion.ContestID,
	}).Info("added mcq question")

	return dbQuestion, nil
}

func (c *ContestService) AddDsaProblem(
	ctx context.Context,
	request AddDsaProblemRequest,
) (database.DsaProblem, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return database.DsaProblem{}, err
	}

	if err = user_service.AuthorizeRole(
		claims,
		user_service.RoleCreator,
		fmt.Sprintf(
			"user %s tried to add a problem to contest %v without creator role",
			claims.UserID,
			request.ContestID,
		),
	); err != nil {
		return database.DsaProblem{}, err
	}

	if err = service.ValidateInput(request); err != nil {
		return database.DsaProblem{}, err
	}

	if _, err = c.fetchContestById(ctx, request.ContestID); err != nil {
		return database.DsaProblem{}, err
	}

	tags := request.Tags
	if tags == nil {
		tags = []string{}
	}

	testCaseArgs := make([]database.InsertTestCaseParams, 0, len(request.TestCases))
	for _, tc := range request.TestCases {
		testCaseArgs = append(testCaseArgs, database.InsertTestCaseParams{
			Input:          tc.Input,
			ExpectedOutput: tc.ExpectedOutput,
			IsHidden:       tc.IsHidden,
		})
	}

	// the problem and its cases go in atomically. a problem must never be
	// visible, or submittable, with a partial case set
	dbProblem, err := c.DB.InsertDsaProblemWithTestCases(
		ctx,
		database.InsertDsaProblemParams{
			ContestID:     request.ContestID,
			Title:         request.Title,
			Description:   request.Description,
			Tags:          tags,
			Points:        request.Points,
			TimeLimitMs:   request.TimeLimitMS,
			MemoryLimitKb: request.MemoryLimitKB,
		},
		testCaseArgs,
	)
	if err != nil {
		return database.DsaProblem{}, arena_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot insert dsa problem in contest %v", request.ContestID),
		)
	}

	log.WithFields(log.Fields{
		"problem_id": dbProblem.ID,
		"contest_id": dbProblem.ContestID,
		"test_cases": len(request.TestCases),
	}).Info("added dsa problem")

	return dbProblem, nil
}

func (c *ContestService) fetchContestById(
	ctx context.Context,
	contestID uuid.UUID,
) (database.Contest, error) {
	contest, err := c.DB.GetContestById(ctx, contestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.Contest{}, arena_errors.ErrContestNotFound
		}
		return database.Contest{}, arena_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot fetch contest with id %v", contestID),
		)
	}
	return contest, nil
}
