// Package scoringconst contains constants of the Scoring contract that are
// shared with off-chain applications.
package scoringconst

const (
	// ErrInvalidInput is thrown when the observation sequences passed to
	// evaluateMiners have different lengths.
	ErrInvalidInput = "invalid input: observation sequences differ in length"
	// ErrSubmissionFailed is thrown when the weight registry rejects a
	// submission. The registry message is appended to it.
	ErrSubmissionFailed = "weight submission failed"
	// ErrInvalidOwner is thrown when the owner key has invalid format.
	ErrInvalidOwner = "invalid owner key"
	// ErrInvalidRegistry is thrown when the registry address has invalid format.
	ErrInvalidRegistry = "invalid weight registry address"
	// ErrInvalidParams is thrown when scoring parameters are out of range.
	ErrInvalidParams = "invalid scoring parameters"

	// DefaultMaxScore is the score bound deployments use unless the subnet
	// owner picks another one.
	DefaultMaxScore = 100
	// DefaultResponseTimeWeight is the response time penalty factor
	// deployments use unless the subnet owner picks another one. The
	// per-miner penalty is responseTime * weight / 100.
	DefaultResponseTimeWeight = 50
)
