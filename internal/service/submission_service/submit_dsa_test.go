package submission_service_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/tcp_snm/arena/internal/arena_errors"
	"github.com/tcp_snm/arena/internal/database"
	"github.com/tcp_snm/arena/internal/service/submission_service"
)

func (fx *engineFixture) seedDsaProblem(contestID uuid.UUID, points int32, caseCount int) database.DsaProblem {
	problem := database.DsaProblem{
		ID:            int32(len(fx.store.problems) + 1),
		ContestID:     contestID,
		Title:         "two sum",
		Description:   "find the pair",
		Points:        points,
		TimeLimitMs:   2000,
		MemoryLimitKb: 262144,
	}
	fx.store.problems[problem.ID] = problem
	for i := 0; i < caseCount; i++ {
		fx.store.testCases[problem.ID] = append(fx.store.testCases[problem.ID], database.TestCase{
			ID:             int32(i + 1),
			ProblemID:      problem.ID,
			Input:          "1 2",
			ExpectedOutput: "3",
			IsHidden:       i > 0,
		})
	}
	return problem
}

func dsaRequest(contestID uuid.UUID, problemID int32) submission_service.DsaSubmissionRequest {
	return submission_service.DsaSubmissionRequest{
		ContestID:    contestID,
		ProblemID:    problemID,
		SolutionCode: "print(sum(map(int, input().split())))",
		Language:     "python",
	}
}

func TestSubmitDsaFullPass(t *testing.T) {
	fx := newEngineFixture()
	contest := fx.seedContest(time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	problem := fx.seedDsaProblem(contest.ID, 10, 3)
	fx.judge.verdict = submission_service.JudgeVerdict{PassedCases: 3, TotalCases: 3}

	result, err := fx.engine.SubmitDsa(contesteeCtx(uuid.New()), dsaRequest(contest.ID, problem.ID))
	if err != nil {
		t.Fatalf("expected submission to succeed, got %v", err)
	}
	if !result.IsCorrect {
		t.Error("expected a full pass to be scored correct")
	}
	if result.PointsEarned != 10 {
		t.Errorf("expected full points on a full pass, got %d", result.PointsEarned)
	}
	if fx.judge.calls != 1 {
		t.Errorf("expected exactly one judge call, got %d", fx.judge.calls)
	}
}

func TestSubmitDsaPartialCredit(t *testing.T) {
	fx := newEngineFixture()
	contest := fx.seedContest(time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	problem := fx.seedDsaProblem(contest.ID, 10, 4)
	fx.judge.verdict = submission_service.JudgeVerdict{PassedCases: 2, TotalCases: 4}

	result, err := fx.engine.SubmitDsa(contesteeCtx(uuid.New()), dsaRequest(contest.ID, problem.ID))
	if err != nil {
		t.Fatalf("expected submission to succeed, got %v", err)
	}
	if result.IsCorrect {
		t.Error("expected a partial pass to be scored incorrect")
	}
	if result.PointsEarned != 5 {
		t.Errorf("expected 5 points for 2/4 cases on a 10 point problem, got %d", result.PointsEarned)
	}
}

func TestSubmitDsaZeroPass(t *testing.T) {
	fx := newEngineFixture()
	contest := fx.seedContest(time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	problem := fx.seedDsaProblem(contest.ID, 10, 4)
	fx.judge.verdict = submission_service.JudgeVerdict{PassedCases: 0, TotalCases: 4}

	result, err := fx.engine.SubmitDsa(contesteeCtx(uuid.New()), dsaRequest(contest.ID, problem.ID))
	if err != nil {
		t.Fatalf("expected submission to succeed, got %v", err)
	}
	if result.IsCorrect || result.PointsEarned != 0 {
		t.Errorf("expected an incorrect zero point result, got %+v", result)
	}
	// the attempt is still consumed
	if len(fx.ledger.dsa) != 1 {
		t.Errorf("expected the failed attempt to be recorded, got %d entries", len(fx.ledger.dsa))
	}
}

func TestSubmitDsaInvalidPayload(t *testing.T) {
	fx := newEngineFixture()
	contest := fx.seedContest(time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	problem := fx.seedDsaProblem(contest.ID, 10, 3)

	empty := dsaRequest(contest.ID, problem.ID)
	empty.SolutionCode = ""
	if _, err := fx.engine.SubmitDsa(contesteeCtx(uuid.New()), empty); !errors.Is(err, arena_errors.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest for empty solution code, got %v", err)
	}

	noLang := dsaRequest(contest.ID, problem.ID)
	noLang.Language = ""
	if _, err := fx.engine.SubmitDsa(contesteeCtx(uuid.New()), noLang); !errors.Is(err, arena_errors.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest for missing language, got %v", err)
	}

	if fx.judge.calls != 0 {
		t.Errorf("expected no judge calls for rejected payloads, got %d", fx.judge.calls)
	}
}

func TestSubmitDsaJudgeUnavailable(t *testing.T) {
	fx := newEngineFixture()
	contest := fx.seedContest(time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	problem := fx.seedDsaProblem(contest.ID, 10, 3)
	fx.judge.err = arena_errors.ErrJudgeUnavailable

	_, err := fx.engine.SubmitDsa(contesteeCtx(uuid.New()), dsaRequest(contest.ID, problem.ID))
	if !errors.Is(err, arena_errors.ErrJudgeUnavailable) {
		t.Errorf("expected the judge error to propagate, got %v", err)
	}
	// nothing must be recorded, the attempt is retryable
	if len(fx.ledger.dsa) != 0 {
		t.Errorf("expected no ledger entries when the judge is down, got %d", len(fx.ledger.dsa))
	}
}

func TestSubmitDsaInconsistentVerdict(t *testing.T) {
	fx := newEngineFixture()
	contest := fx.seedContest(time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	problem := fx.seedDsaProblem(contest.ID, 10, 3)

	for _, verdict := range []submission_service.JudgeVerdict{
		{PassedCases: 4, TotalCases: 3},
		{PassedCases: -1, TotalCases: 3},
		{PassedCases: 0, TotalCases: 0},
	} {
		fx.judge.verdict = verdict
		_, err := fx.engine.SubmitDsa(contesteeCtx(uuid.New()), dsaRequest(contest.ID, problem.ID))
		if !errors.Is(err, arena_errors.ErrInternal) {
			t.Errorf("verdict %+v: expected ErrInternal, got %v", verdict, err)
		}
	}
}

func TestSubmitDsaTwiceSequential(t *testing.T) {
	fx := newEngineFixture()
	contest := fx.seedContest(time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	problem := fx.seedDsaProblem(contest.ID, 10, 3)
	fx.judge.verdict = submission_service.JudgeVerdict{PassedCases: 1, TotalCases: 3}
	userID := uuid.New()

	if _, err := fx.engine.SubmitDsa(contesteeCtx(userID), dsaRequest(contest.ID, problem.ID)); err != nil {
		t.Fatalf("expected the first submission to succeed, got %v", err)
	}
	_, err := fx.engine.SubmitDsa(contesteeCtx(userID), dsaRequest(contest.ID, problem.ID))
	if !errors.Is(err, arena_errors.ErrAlreadySubmitted) {
		t.Errorf("expected ErrAlreadySubmitted on resubmission, got %v", err)
	}
	// the pre-check fired, the losing attempt never reached the judge
	if fx.judge.calls != 1 {
		t.Errorf("expected one judge call across both attempts, got %d", fx.judge.calls)
	}
}

func TestSubmitDsaConcurrentDuplicates(t *testing.T) {
	fx := newEngineFixture()
	// force both racers past the pre-check so the ledger's constraint is
	// the deciding authority
	fx.ledger.precheckDisabled = true

	contest := fx.seedContest(time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	problem := fx.seedDsaProblem(contest.ID, 10, 3)
	fx.judge.verdict = submission_service.JudgeVerdict{PassedCases: 3, TotalCases: 3}
	userID := uuid.New()

	const racers = 2
	results := make(chan error, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.engine.SubmitDsa(contesteeCtx(userID), dsaRequest(contest.ID, problem.ID))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, rejections int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, arena_errors.ErrAlreadySubmitted):
			rejections++
		default:
			t.Errorf("unexpected error from concurrent submission: %v", err)
		}
	}
	if successes != 1 || rejections != 1 {
		t.Errorf(
			"expected exactly one success and one rejection, got %d successes, %d rejections",
			successes,
			rejections,
		)
	}
	if len(fx.ledger.dsa) != 1 {
		t.Errorf("expected exactly one ledger entry, got %d", len(fx.ledger.dsa))
	}
}

func TestSubmitDsaProblemNotFound(t *testing.T) {
	fx := newEngineFixture()
	contest := fx.seedContest(time.Now().Add(-time.Hour), time.Now().Add(time.Hour))

	_, err := fx.engine.SubmitDsa(contesteeCtx(uuid.New()), dsaRequest(contest.ID, 99))
	if !errors.Is(err, arena_errors.ErrQuestionNotFound) {
		t.Errorf("expected ErrQuestionNotFound, got %v", err)
	}
}
