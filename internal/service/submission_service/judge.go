package submission_service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/arena/internal/arena_errors"
)

// The judge is an external collaborator. This service never executes
// submitted code, it only forwards solutions and trusts the verdict.

type JudgeTestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
}

type JudgeRequest struct {
	ProblemID     int32           `json:"problemId"`
	SolutionCode  string          `json:"solutionCode"`
	Language      string          `json:"language"`
	TimeLimitMS   int32           `json:"timeLimitMs"`
	MemoryLimitKB int32           `json:"memoryLimitKb"`
	TestCases     []JudgeTestCase `json:"testCases"`
}

type JudgeVerdict struct {
	PassedCases int32 `json:"passedCases"`
	TotalCases  int32 `json:"totalCases"`
}

type Judge interface {
	Evaluate(ctx context.Context, request JudgeRequest) (JudgeVerdict, error)
}

type HTTPJudge struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPJudge(baseURL string) *HTTPJudge {
	return &HTTPJudge{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (j *HTTPJudge) Evaluate(
	ctx context.Context,
	request JudgeRequest,
) (JudgeVerdict, error) {
	body, err := json.Marshal(request)
	if err != nil {
		err = fmt.Errorf(
			"%w, cannot marshal judge request for problem %v, %w",
			arena_errors.ErrInternal,
			request.ProblemID,
			err,
		)
		log.Error(err)
		return JudgeVerdict{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		j.BaseURL+"/evaluate",
		bytes.NewReader(body),
	)
	if err != nil {
		err = fmt.Errorf(
			"%w, cannot build judge request, %w",
			arena_errors.ErrInternal,
			err,
		)
		log.Error(err)
		return JudgeVerdict{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := j.Client.Do(req)
	if err != nil {
		err = arena_errors.WrapIPCError(err)
		log.Error(err)
		return JudgeVerdict{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		err = fmt.Errorf(
			"%w, judge responded with status %d for problem %v",
			arena_errors.ErrJudgeUnavailable,
			res.StatusCode,
			request.ProblemID,
		)
		log.Error(err)
		return JudgeVerdict{}, err
	}

	var verdict JudgeVerdict
	if err = json.NewDecoder(res.Body).Decode(&verdict); err != nil {
		err = fmt.Errorf(
			"%w, cannot decode judge verdict for problem %v, %w",
			arena_errors.ErrInternal,
			request.ProblemID,
			err,
		)
		log.Error(err)
		return JudgeVerdict{}, err
	}

	return verdict, nil
}
