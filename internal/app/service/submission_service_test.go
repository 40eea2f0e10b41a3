package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"
)

var submissionIDPattern = regexp.MustCompile(`^sub_\d+$`)

func TestTestSubmission_CannedResult(t *testing.T) {
	svc := NewSubmissionService(0, 0)

	result, err := svc.TestSubmission(context.Background(), SubmissionRequest{
		Code:      "function twoSum() {}",
		Language:  "javascript",
		ProblemID: 1,
	})
	if err != nil {
		t.Fatalf("TestSubmission failed: %v", err)
	}

	if !result.Success {
		t.Error("Expected success:true")
	}
	if result.Message != "Code executed successfully" {
		t.Errorf("Unexpected message: %q", result.Message)
	}
	if result.Output != "All test cases passed!" {
		t.Errorf("Unexpected output: %q", result.Output)
	}
	if len(result.TestResults) != 2 {
		t.Fatalf("Expected exactly 2 test results, got %d", len(result.TestResults))
	}
	for _, tc := range result.TestResults {
		if !tc.Passed {
			t.Errorf("Test case %d not passed", tc.TestCaseID)
		}
		if tc.Output != tc.ExpectedOutput {
			t.Errorf("Test case %d output %q != expected %q", tc.TestCaseID, tc.Output, tc.ExpectedOutput)
		}
	}
}

func TestTestSubmission_IgnoresInput(t *testing.T) {
	svc := NewSubmissionService(0, 0)
	ctx := context.Background()

	empty, err := svc.TestSubmission(ctx, SubmissionRequest{})
	if err != nil {
		t.Fatalf("TestSubmission failed: %v", err)
	}
	garbage, err := svc.TestSubmission(ctx, SubmissionRequest{Code: "\x00 not code", Language: "cobol", ProblemID: "999"})
	if err != nil {
		t.Fatalf("TestSubmission failed: %v", err)
	}
	if !empty.Success || !garbage.Success {
		t.Error("Simulator must succeed regardless of input")
	}
}

func TestSubmitSolution_CannedVerdict(t *testing.T) {
	svc := NewSubmissionService(0, 0)

	result, err := svc.SubmitSolution(context.Background(), SubmissionRequest{Code: "x", Language: "go", ProblemID: 2})
	if err != nil {
		t.Fatalf("SubmitSolution failed: %v", err)
	}

	if !result.Success {
		t.Error("Expected success:true")
	}
	if result.Status != "accepted" {
		t.Errorf("Expected status accepted, got %q", result.Status)
	}
	if !submissionIDPattern.MatchString(result.SubmissionID) {
		t.Errorf("Submission id %q does not match sub_<digits>", result.SubmissionID)
	}
	if result.ExecutionTime == "" || result.MemoryUsed == "" {
		t.Errorf("Expected sample execution stats, got %+v", result)
	}
}

func TestSubmitSolution_UniqueIDs(t *testing.T) {
	svc := NewSubmissionService(0, 0)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		result, err := svc.SubmitSolution(ctx, SubmissionRequest{})
		if err != nil {
			t.Fatalf("SubmitSolution failed: %v", err)
		}
		if seen[result.SubmissionID] {
			t.Fatalf("Duplicate submission id %q", result.SubmissionID)
		}
		seen[result.SubmissionID] = true
	}
}

func TestSimulator_HonorsConfiguredDelay(t *testing.T) {
	delay := 30 * time.Millisecond
	svc := NewSubmissionService(delay, delay)
	ctx := context.Background()

	start := time.Now()
	if _, err := svc.TestSubmission(ctx, SubmissionRequest{}); err != nil {
		t.Fatalf("TestSubmission failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < delay {
		t.Errorf("TestSubmission returned after %v, want at least %v", elapsed, delay)
	}

	start = time.Now()
	if _, err := svc.SubmitSolution(ctx, SubmissionRequest{}); err != nil {
		t.Fatalf("SubmitSolution failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < delay {
		t.Errorf("SubmitSolution returned after %v, want at least %v", elapsed, delay)
	}
}

func TestSimulator_DelayObservesContext(t *testing.T) {
	svc := NewSubmissionService(time.Minute, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.TestSubmission(ctx, SubmissionRequest{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
