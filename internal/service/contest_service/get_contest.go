package contest_service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tcp_snm/arena/internal/arena_errors"
)

// GetContestWithQuestions returns the contestee-facing view of a contest.
// Correct option indices and hidden test cases are stripped here, not in
// the handlers.
func (c *ContestService) GetContestWithQuestions(
	ctx context.Context,
	contestID uuid.UUID,
) (ContestWithQuestions, error) {
	contest, err := c.fetchContestById(ctx, contestID)
	if err != nil {
		return ContestWithQuestions{}, err
	}

	dbMcqs, err := c.DB.ListMcqQuestionsByContest(ctx, contestID)
	if err != nil {
		return ContestWithQuestions{}, arena_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot list mcq questions of contest %v", contestID),
		)
	}

	dbProblems, err := c.DB.ListDsaProblemsByContest(ctx, contestID)
	if err != nil {
		return ContestWithQuestions{}, arena_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot list dsa problems of contest %v", contestID),
		)
	}

	mcqs := make([]McqQuestion, 0, len(dbMcqs))
	for _, q := range dbMcqs {
		mcqs = append(mcqs, McqQuestion{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Options:      q.Options,
			Points:       q.Points,
		})
	}

	problems := make([]DsaProblem, 0, len(dbProblems))
	for _, p := range dbProblems {
		problems = append(problems, DsaProblem{
			ID:            p.ID,
			Title:         p.Title,
			Description:   p.Description,
			Tags:          p.Tags,
			Points:        p.Points,
			TimeLimitMS:   p.TimeLimitMs,
			MemoryLimitKB: p.MemoryLimitKb,
		})
	}

	return ContestWithQuestions{
		Contest: Contest{
			ID:          contest.ID,
			CreatorID:   contest.CreatorID,
			Title:       contest.Title,
			Description: contest.Description,
			StartTime:   contest.StartTime,
			EndTime:     contest.EndTime,
		},
		Mcqs:        mcqs,
		DsaProblems: problems,
	}, nil
}
