package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/tcp_snm/arena/internal/api"
	"github.com/tcp_snm/arena/internal/arena_errors"
	"github.com/tcp_snm/arena/internal/database"
	"github.com/tcp_snm/arena/internal/service"
	"github.com/tcp_snm/arena/internal/service/contest_service"
	"github.com/tcp_snm/arena/internal/service/submission_service"
	"github.com/tcp_snm/arena/internal/service/user_service"
)

func TestMain(m *testing.M) {
	fmt.Println("starting initializations")

	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logrus.SetLevel(logrus.DebugLevel)

	logrus.Info("initializing service")
	service.InitializeServices()

	logrus.Info("starting tests")
	code := m.Run()

	os.Exit(code)
}

// fakeStore backs both the contest store and the submission ledger with the
// one mcq question the scenario needs.
type fakeStore struct {
	mu       sync.Mutex
	contest  database.Contest
	question database.McqQuestion
	mcq      map[uuid.UUID]database.McqSubmission
}

func (f *fakeStore) InsertContest(ctx context.Context, arg database.InsertContestParams) (database.Contest, error) {
	return f.contest, nil
}

func (f *fakeStore) GetContestById(ctx context.Context, id uuid.UUID) (database.Contest, error) {
	if id != f.contest.ID {
		return database.Contest{}, pgx.ErrNoRows
	}
	return f.contest, nil
}

func (f *fakeStore) InsertMcqQuestion(ctx context.Context, arg database.InsertMcqQuestionParams) (database.McqQuestion, error) {
	return f.question, nil
}

func (f *fakeStore) GetMcqQuestionById(ctx context.Context, arg database.GetMcqQuestionByIdParams) (database.GetMcqQuestionByIdRow, error) {
	if arg.ID != f.question.ID || arg.ContestID != f.contest.ID {
		return database.GetMcqQuestionByIdRow{}, pgx.ErrNoRows
	}
	return database.GetMcqQuestionByIdRow{
		ID:                 f.question.ID,
		ContestID:          f.question.ContestID,
		QuestionText:       f.question.QuestionText,
		Options:            f.question.Options,
		CorrectOptionIndex: f.question.CorrectOptionIndex,
		Points:             f.question.Points,
		ContestStartTime:   f.contest.StartTime,
		ContestEndTime:     f.contest.EndTime,
	}, nil
}

func (f *fakeStore) ListMcqQuestionsByContest(ctx context.Context, contestID uuid.UUID) ([]database.McqQuestion, error) {
	return []database.McqQuestion{f.question}, nil
}

func (f *fakeStore) InsertDsaProblemWithTestCases(ctx context.Context, problemArg database.InsertDsaProblemParams, testCaseArgs []database.InsertTestCaseParams) (database.DsaProblem, error) {
	return database.DsaProblem{}, nil
}

func (f *fakeStore) GetDsaProblemById(ctx context.Context, arg database.GetDsaProblemByIdParams) (database.GetDsaProblemByIdRow, error) {
	return database.GetDsaProblemByIdRow{}, pgx.ErrNoRows
}

func (f *fakeStore) ListDsaProblemsByContest(ctx context.Context, contestID uuid.UUID) ([]database.DsaProblem, error) {
	return nil, nil
}

func (f *fakeStore) ListTestCasesByProblem(ctx context.Context, problemID int32) ([]database.TestCase, error) {
	return nil, nil
}

func (f *fakeStore) HasMcqSubmission(ctx context.Context, arg database.HasMcqSubmissionParams) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.mcq[arg.UserID]
	return ok, nil
}

func (f *fakeStore) InsertMcqSubmission(ctx context.Context, arg database.InsertMcqSubmissionParams) (database.McqSubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.mcq[arg.UserID]; ok {
		return database.McqSubmission{}, &pgconn.PgError{
			Code:           arena_errors.CodeUniqueConstraint,
			ConstraintName: "uq_mcq_submissions_user_question",
		}
	}
	submission := database.McqSubmission{
		ID:                  uuid.New(),
		UserID:              arg.UserID,
		QuestionID:          arg.QuestionID,
		SelectedOptionIndex: arg.SelectedOptionIndex,
		IsCorrect:           arg.IsCorrect,
		PointsEarned:        arg.PointsEarned,
	}
	f.mcq[arg.UserID] = submission
	return submission, nil
}

func (f *fakeStore) HasDsaSubmission(ctx context.Context, arg database.HasDsaSubmissionParams) (bool, error) {
	return false, nil
}

func (f *fakeStore) InsertDsaSubmission(ctx context.Context, arg database.InsertDsaSubmissionParams) (database.DsaSubmission, error) {
	return database.DsaSubmission{}, nil
}

type scoreEnvelope struct {
	Success bool `json:"success"`
	Data    *struct {
		IsCorrect    bool  `json:"isCorrect"`
		PointsEarned int32 `json:"pointsEarned"`
	} `json:"data"`
	Error *string `json:"error"`
}

// withClaims stands in for the jwt middleware, handlers read the same
// context key either way.
func withClaims(claims service.UserCredentialClaims, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), service.KeyCtxUserCredClaims, claims)
		next(w, r.WithContext(ctx))
	}
}

func submissionRouter(a *api.Api, claims service.UserCredentialClaims) http.Handler {
	router := chi.NewRouter()
	router.Post(
		"/contests/{contestId}/mcq/{questionId}/submit",
		withClaims(claims, a.HandlerSubmitMcq),
	)
	return router
}

func newScenario() (*api.Api, *fakeStore) {
	store := &fakeStore{mcq: map[uuid.UUID]database.McqSubmission{}}
	store.contest = database.Contest{
		ID:        uuid.New(),
		CreatorID: uuid.New(),
		Title:     "weekly round",
		StartTime: time.Now().Add(-time.Hour),
		EndTime:   time.Now().Add(time.Hour),
	}
	store.question = database.McqQuestion{
		ID:                 1,
		ContestID:          store.contest.ID,
		QuestionText:       "pick one",
		Options:            []string{"A", "B", "C"},
		CorrectOptionIndex: 1,
		Points:             5,
	}

	contestConfig := &contest_service.ContestService{DB: store}
	return &api.Api{
		ContestServiceConfig: contestConfig,
		SubmissionServiceConfig: &submission_service.SubmissionService{
			DB:                   store,
			ContestServiceConfig: contestConfig,
		},
	}, store
}

func postSubmission(t *testing.T, router http.Handler, path, body string) (*httptest.ResponseRecorder, scoreEnvelope) {
	t.Helper()
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	router.ServeHTTP(recorder, request)

	var envelope scoreEnvelope
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("cannot decode response %q: %v", recorder.Body.String(), err)
	}
	return recorder, envelope
}

func TestSubmitMcqEndpoint(t *testing.T) {
	apiConfig, store := newScenario()
	claims := service.UserCredentialClaims{
		UserID: uuid.New(),
		Role:   string(user_service.RoleContestee),
	}
	router := submissionRouter(apiConfig, claims)
	path := fmt.Sprintf("/contests/%s/mcq/%d/submit", store.contest.ID, store.question.ID)

	// first submission, the correct option earns the configured points
	recorder, envelope := postSubmission(t, router, path, `{"selectedOptionIndex": 1}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body %s", recorder.Code, recorder.Body.String())
	}
	if !envelope.Success || envelope.Error != nil {
		t.Fatalf("expected a success envelope, got %s", recorder.Body.String())
	}
	if envelope.Data == nil || !envelope.Data.IsCorrect || envelope.Data.PointsEarned != 5 {
		t.Errorf("expected isCorrect true with 5 points, got %s", recorder.Body.String())
	}

	// the retry is rejected with the submission code
	recorder, envelope = postSubmission(t, router, path, `{"selectedOptionIndex": 2}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", recorder.Code)
	}
	if envelope.Success || envelope.Error == nil || *envelope.Error != "ALREADY_SUBMITTED" {
		t.Errorf("expected an ALREADY_SUBMITTED envelope, got %s", recorder.Body.String())
	}
}

func TestSubmitMcqEndpointRejections(t *testing.T) {
	apiConfig, store := newScenario()
	contestee := service.UserCredentialClaims{
		UserID: uuid.New(),
		Role:   string(user_service.RoleContestee),
	}

	// a creator may not submit
	creator := service.UserCredentialClaims{
		UserID: store.contest.CreatorID,
		Role:   string(user_service.RoleCreator),
	}
	router := submissionRouter(apiConfig, creator)
	path := fmt.Sprintf("/contests/%s/mcq/%d/submit", store.contest.ID, store.question.ID)
	recorder, envelope := postSubmission(t, router, path, `{"selectedOptionIndex": 1}`)
	if recorder.Code != http.StatusForbidden {
		t.Errorf("expected status 403 for creator, got %d", recorder.Code)
	}
	if envelope.Error == nil || *envelope.Error != "FORBIDDEN" {
		t.Errorf("expected a FORBIDDEN envelope, got %s", recorder.Body.String())
	}

	router = submissionRouter(apiConfig, contestee)

	// unknown question
	missing := fmt.Sprintf("/contests/%s/mcq/%d/submit", store.contest.ID, store.question.ID+7)
	recorder, envelope = postSubmission(t, router, missing, `{"selectedOptionIndex": 1}`)
	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected status 404 for unknown question, got %d", recorder.Code)
	}
	if envelope.Error == nil || *envelope.Error != "QUESTION_NOT_FOUND" {
		t.Errorf("expected a QUESTION_NOT_FOUND envelope, got %s", recorder.Body.String())
	}

	// malformed contest id never reaches the service
	recorder, envelope = postSubmission(t, router, "/contests/not-a-uuid/mcq/1/submit", `{"selectedOptionIndex": 1}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for malformed contest id, got %d", recorder.Code)
	}
	if envelope.Error == nil || *envelope.Error != "INVALID_REQUEST" {
		t.Errorf("expected an INVALID_REQUEST envelope, got %s", recorder.Body.String())
	}

	// a question id past int32 must be rejected, not wrapped onto an
	// existing id
	overflow := fmt.Sprintf("/contests/%s/mcq/%d/submit", store.contest.ID, int64(store.question.ID)+(1<<32))
	recorder, envelope = postSubmission(t, router, overflow, `{"selectedOptionIndex": 1}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for an overflowing question id, got %d", recorder.Code)
	}
	if envelope.Error == nil || *envelope.Error != "INVALID_REQUEST" {
		t.Errorf("expected an INVALID_REQUEST envelope, got %s", recorder.Body.String())
	}

	// out of range option index
	recorder, envelope = postSubmission(t, router, path, `{"selectedOptionIndex": 9}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for out of range index, got %d", recorder.Code)
	}
	if envelope.Error == nil || *envelope.Error != "INVALID_REQUEST" {
		t.Errorf("expected an INVALID_REQUEST envelope, got %s", recorder.Body.String())
	}

	// expired contest window
	store.contest.EndTime = time.Now().Add(-time.Minute)
	recorder, envelope = postSubmission(t, router, path, `{"selectedOptionIndex": 1}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 after the deadline, got %d", recorder.Code)
	}
	if envelope.Error == nil || *envelope.Error != "CONTEST_NOT_ACTIVE" {
		t.Errorf("expected a CONTEST_NOT_ACTIVE envelope, got %s", recorder.Body.String())
	}
}
