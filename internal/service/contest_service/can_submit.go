package contest_service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/arena/internal/arena_errors"
	"github.com/tcp_snm/arena/internal/database"
	"github.com/tcp_snm/arena/internal/service"
)

// InitializeCaches sets up the question lookup caches used on the submit
// path. Safe to skip in tests, lookups fall through to the store.
func (c *ContestService) InitializeCaches() error {
	log.Info("initializing contest service caches")
	mcqCache, err := lru.New[mcqCacheKey, database.GetMcqQuestionByIdRow](questionCacheSize)
	if err != nil {
		return errors.Join(arena_errors.ErrInternal, err)
	}
	dsaCache, err := lru.New[dsaCacheKey, database.GetDsaProblemByIdRow](questionCacheSize)
	if err != nil {
		return errors.Join(arena_errors.ErrInternal, err)
	}
	c.mcqCache = mcqCache
	c.dsaCache = dsaCache
	return nil
}

// GetMcqQuestionForSubmit resolves a question together with its owning
// contest's time window. The question must belong to the given contest.
func (c *ContestService) GetMcqQuestionForSubmit(
	ctx context.Context,
	contestID uuid.UUID,
	questionID int32,
) (database.GetMcqQuestionByIdRow, error) {
	key := mcqCacheKey{contestID: contestID, questionID: questionID}
	if c.mcqCache != nil {
		if row, ok := c.mcqCache.Get(key); ok {
			return row, nil
		}
	}

	row, err := c.DB.GetMcqQuestionById(ctx, database.GetMcqQuestionByIdParams{
		ID:        questionID,
		ContestID: contestID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.GetMcqQuestionByIdRow{}, arena_errors.ErrQuestionNotFound
		}
		return database.GetMcqQuestionByIdRow{}, arena_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot fetch mcq question %v of contest %v", questionID, contestID),
		)
	}

	if c.mcqCache != nil {
		c.mcqCache.Add(key, row)
	}
	return row, nil
}

// GetDsaProblemForSubmit is the coding-problem counterpart of
// GetMcqQuestionForSubmit.
func (c *ContestService) GetDsaProblemForSubmit(
	ctx context.Context,
	contestID uuid.UUID,
	problemID int32,
) (database.GetDsaProblemByIdRow, error) {
	key := dsaCacheKey{contestID: contestID, problemID: problemID}
	if c.dsaCache != nil {
		if row, ok := c.dsaCache.Get(key); ok {
			return row, nil
		}
	}

	row, err := c.DB.GetDsaProblemById(ctx, database.GetDsaProblemByIdParams{
		ID:        problemID,
		ContestID: contestID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.GetDsaProblemByIdRow{}, arena_errors.ErrQuestionNotFound
		}
		return database.GetDsaProblemByIdRow{}, arena_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot fetch dsa problem %v of contest %v", problemID, contestID),
		)
	}

	if c.dsaCache != nil {
		c.dsaCache.Add(key, row)
	}
	return row, nil
}

// FetchTestCasesByProblem returns every test case of a problem, hidden ones
// included. Only the judge path may call this.
func (c *ContestService) FetchTestCasesByProblem(
	ctx context.Context,
	problemID int32,
) ([]database.TestCase, error) {
	testCases, err := c.DB.ListTestCasesByProblem(ctx, problemID)
	if err != nil {
		return nil, arena_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot list test cases of problem %v", problemID),
		)
	}
	return testCases, nil
}

// CanSubmit enforces the contest time window. All questions of a contest
// share the one deadline, the end time itself is still accepted.
func (c *ContestService) CanSubmit(
	claims service.UserCredentialClaims,
	startTime time.Time,
	endTime time.Time,
) error {
	now := time.Now()

	if now.Before(startTime) {
		log.Warnf(
			"user %s tried to submit before contest start at %v",
			claims.UserID,
			startTime,
		)
		return arena_errors.ErrContestNotActive
	}

	if now.After(endTime) {
		log.Warnf(
			"user %s tried to submit to a completed contest, ended at %v",
			claims.UserID,
			endTime,
		)
		return arena_errors.ErrContestNotActive
	}

	return nil
}
