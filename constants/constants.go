package constants

import "os"

// Analyzer defaults. Callers passing zero tolerances get these.
const DefaultPitchToleranceCents = 50.0
const DefaultTimingToleranceBeats = 0.3

// Second confidence gate applied by display/performance consumers on top
// of the estimator's own rejection floor.
const DisplayConfidenceGate = 0.5

func GetProgressPath() string {
	path := os.Getenv("PROGRESS_PATH")
	if path != "" {
		return path
	}
	return "./progress.dat"
}

func GetProgressTable() string {
	table := os.Getenv("PROGRESS_TABLE")
	if table != "" {
		return table
	}
	return "brasscoach-progress"
}
