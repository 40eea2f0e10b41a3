package model

type SubmissionStatus string

const (
	StatusAccepted SubmissionStatus = "accepted"
)

// TestRunResult is the canned payload returned by the test endpoint.
// Nothing is executed; the results are fixed.
type TestRunResult struct {
	Success     bool             `json:"success"`
	Message     string           `json:"message"`
	TestResults []TestCaseResult `json:"testResults"`
	Output      string           `json:"output"`
}

type TestCaseResult struct {
	TestCaseID     int    `json:"testCaseId"`
	Passed         bool   `json:"passed"`
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
	Output         string `json:"output"`
	ExecutionTime  string `json:"executionTime"`
}

// SubmissionResult is the canned payload returned by the submit endpoint.
// Submissions are never stored; the ID only proves the call happened.
type SubmissionResult struct {
	Success       bool             `json:"success"`
	Message       string           `json:"message"`
	SubmissionID  string           `json:"submissionId"`
	Status        SubmissionStatus `json:"status"`
	ExecutionTime string           `json:"executionTime"`
	MemoryUsed    string           `json:"memoryUsed"`
}
