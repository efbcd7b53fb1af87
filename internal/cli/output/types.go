package output

// CheckOutput is the JSON payload of the check command.
type CheckOutput struct {
	Files   []FileReport `json:"files"`
	Summary CheckSummary `json:"summary"`
}

// FileReport holds the violations found in one file.
type FileReport struct {
	Path       string           `json:"path"`
	Violations []ViolationEntry `json:"violations"`
}

// ViolationEntry is one violation in JSON output.
type ViolationEntry struct {
	RuleID   string `json:"rule_id"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column,omitempty"`
}

// CheckSummary aggregates violation counts across all scanned files.
type CheckSummary struct {
	FilesScanned int `json:"files_scanned"`
	LinesScanned int `json:"lines_scanned"`
	Total        int `json:"total"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Info         int `json:"info"`
	Hints        int `json:"hints"`
	Suppressed   int `json:"suppressed,omitempty"`
}
