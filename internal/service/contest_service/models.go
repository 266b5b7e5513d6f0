package contest_service

import (
	"context"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tcp_snm/arena/internal/database"
	"github.com/tcp_snm/arena/internal/service/user_service"
)

const questionCacheSize = 1024

type ContestService struct {
	DB                ContestStore
	UserServiceConfig *user_service.UserService

	// question rows are immutable once created, so the submit path can
	// cache them together with the owning contest's time window
	mcqCache *lru.Cache[mcqCacheKey, database.GetMcqQuestionByIdRow]
	dsaCache *lru.Cache[dsaCacheKey, database.GetDsaProblemByIdRow]
}

type mcqCacheKey struct {
	contestID  uuid.UUID
	questionID int32
}

type dsaCacheKey struct {
	contestID uuid.UUID
	problemID int32
}

// ContestStore is the repository contract for contests, questions and their
// time bounds. The production implementation is the sqlc query layer, tests
// use an in-memory fake.
type ContestStore interface {
	InsertContest(ctx context.Context, arg database.InsertContestParams) (database.Contest, error)
	GetContestById(ctx context.Context, id uuid.UUID) (database.Contest, error)
	InsertMcqQuestion(ctx context.Context, arg database.InsertMcqQuestionParams) (database.McqQuestion, error)
	GetMcqQuestionById(ctx context.Context, arg database.GetMcqQuestionByIdParams) (database.GetMcqQuestionByIdRow, error)
	ListMcqQuestionsByContest(ctx context.Context, contestID uuid.UUID) ([]database.McqQuestion, error)
	InsertDsaProblemWithTestCases(ctx context.Context, problemArg database.InsertDsaProblemParams, testCaseArgs []database.InsertTestCaseParams) (database.DsaProblem, error)
	GetDsaProblemById(ctx context.Context, arg database.GetDsaProblemByIdParams) (database.GetDsaProblemByIdRow, error)
	ListDsaProblemsByContest(ctx context.Context, contestID uuid.UUID) ([]database.DsaProblem, error)
	ListTestCasesByProblem(ctx context.Context, problemID int32) ([]database.TestCase, error)
}

type CreateContestRequest struct {
	Title       string    `json:"title" validate:"required,min=3,max=100"`
	Description string    `json:"description" validate:"required"`
	StartTime   time.Time `json:"startTime" validate:"required"`
	EndTime     time.Time `json:"endTime" validate:"required"`
}

type Contest struct {
	ID          uuid.UUID `json:"id"`
	CreatorID   uuid.UUID `json:"creatorId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
}

type AddMcqQuestionRequest struct {
	ContestID          uuid.UUID `json:"-"`
	QuestionText       string    `json:"questionText" validate:"required"`
	Options            []string  `json:"options" validate:"required,min=2"`
	CorrectOptionIndex int32     `json:"correctOptionIndex" validate:"gte=0"`
	Points             int32     `json:"points" validate:"required,gt=0"`
}

type TestCase struct {
	Input          string `json:"input" validate:"required"`
	ExpectedOutput string `json:"expectedOutput" validate:"required"`
	IsHidden       bool   `json:"isHidden"`
}

type AddDsaProblemRequest struct {
	ContestID     uuid.UUID  `json:"-"`
	Title         string     `json:"title" validate:"required,max=100"`
	Description   string     `json:"description" validate:"required"`
	Tags          []string   `json:"tags"`
	Points        int32      `json:"points" validate:"required,gt=0"`
	TimeLimitMS   int32      `json:"timeLimitMs" validate:"required,gt=0"`
	MemoryLimitKB int32      `json:"memoryLimitKb" validate:"required,gt=0"`
	TestCases     []TestCase `json:"testCases" validate:"required,min=1,dive"`
}

// McqQuestion is the contestee-facing view. The correct option index never
// leaves the service layer.
type McqQuestion struct {
	ID           int32    `json:"id"`
	QuestionText string   `json:"questionText"`
	Options      []string `json:"options"`
	Points       int32    `json:"points"`
}

type DsaProblem struct {
	ID            int32    `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Tags          []string `json:"tags"`
	Points        int32    `json:"points"`
	TimeLimitMS   int32    `json:"timeLimitMs"`
	MemoryLimitKB int32    `json:"memoryLimitKb"`
}

type ContestWithQuestions struct {
	Contest
	Mcqs        []McqQuestion `json:"mcqs"`
	DsaProblems []DsaProblem  `json:"dsaProblems"`
}
