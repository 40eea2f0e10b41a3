package service

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"algoarena/internal/domain/model"
)

// SubmissionService fabricates test and submission results. Nothing is
// parsed, executed or stored; the delays simulate a judge working so the
// frontend's progress states have something to show.
type SubmissionService struct {
	testRunDelay time.Duration
	submitDelay  time.Duration
}

func NewSubmissionService(testRunDelay, submitDelay time.Duration) *SubmissionService {
	return &SubmissionService{
		testRunDelay: testRunDelay,
		submitDelay:  submitDelay,
	}
}

type SubmissionRequest struct {
	Code      string `json:"code"`
	Language  string `json:"language"`
	ProblemID any    `json:"problemId"`
}

func (r *SubmissionRequest) DecodeForm(values url.Values) {
	r.Code = values.Get("code")
	r.Language = values.Get("language")
	r.ProblemID = values.Get("problemId")
}

// TestSubmission returns the canned always-passing test run, ignoring the
// submitted code entirely.
func (s *SubmissionService) TestSubmission(ctx context.Context, req SubmissionRequest) (*model.TestRunResult, error) {
	if err := sleep(ctx, s.testRunDelay); err != nil {
		return nil, err
	}

	return &model.TestRunResult{
		Success: true,
		Message: "Code executed successfully",
		TestResults: []model.TestCaseResult{
			{
				TestCaseID:     1,
				Passed:         true,
				Input:          "nums = [2,7,11,15], target = 9",
				ExpectedOutput: "[0,1]",
				Output:         "[0,1]",
				ExecutionTime:  "4ms",
			},
			{
				TestCaseID:     2,
				Passed:         true,
				Input:          "nums = [3,2,4], target = 6",
				ExpectedOutput: "[1,2]",
				Output:         "[1,2]",
				ExecutionTime:  "6ms",
			},
		},
		Output: "All test cases passed!",
	}, nil
}

// SubmitSolution returns the canned accepted verdict. The submission id is
// the only part of the payload that varies between calls.
func (s *SubmissionService) SubmitSolution(ctx context.Context, req SubmissionRequest) (*model.SubmissionResult, error) {
	if err := sleep(ctx, s.submitDelay); err != nil {
		return nil, err
	}

	return &model.SubmissionResult{
		Success:       true,
		Message:       "Solution submitted successfully",
		SubmissionID:  newSubmissionID(),
		Status:        model.StatusAccepted,
		ExecutionTime: "45ms",
		MemoryUsed:    "14.2MB",
	}, nil
}

// lastSubmissionNano guards submission id uniqueness. Ids are nanosecond
// timestamps bumped past the previous one on collision, so two calls in the
// same instant still differ.
var lastSubmissionNano int64

func newSubmissionID() string {
	for {
		last := atomic.LoadInt64(&lastSubmissionNano)
		now := time.Now().UnixNano()
		if now <= last {
			now = last + 1
		}
		if atomic.CompareAndSwapInt64(&lastSubmissionNano, last, now) {
			return fmt.Sprintf("sub_%d", now)
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
