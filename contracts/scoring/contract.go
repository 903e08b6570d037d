package scoring

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/subnetlab/scoring-contract/common"
	"github.com/subnetlab/scoring-contract/contracts/scoring/scoringconst"
)

type (
	// ScoreResult is a single miner score computed by EvaluateMiners. Results
	// are returned in the order of the input observations.
	ScoreResult struct {
		// Score value in [0, maxScore].
		Score int
		// MinerID of the scored miner.
		MinerID int
	}

	// SubmissionStatus is the response of the weight registry's submitWeights
	// method.
	SubmissionStatus struct {
		Success bool
		Message string
	}
)

const (
	ownerKey              = "owner"
	subnetIDKey           = "subnetID"
	registryKey           = "registry"
	versionKeyKey         = "versionKey"
	maxScoreKey           = "maxScore"
	responseTimeWeightKey = "responseTimeWeight"

	// Submission flags passed to the weight registry with every batch.
	waitForInclusion    = true
	waitForFinalization = false

	submitWeightsMethod = "submitWeights"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	var args = data.(struct {
		owner              interop.PublicKey
		subnetID           int
		registry           interop.Hash160
		versionKey         int
		maxScore           int
		responseTimeWeight int
	})

	if len(args.owner) != interop.PublicKeyCompressedLen {
		panic(scoringconst.ErrInvalidOwner)
	}
	if len(args.registry) != interop.Hash160Len {
		panic(scoringconst.ErrInvalidRegistry)
	}
	if args.maxScore <= 0 || args.responseTimeWeight < 0 {
		panic(scoringconst.ErrInvalidParams)
	}

	storage.Put(ctx, ownerKey, args.owner)
	storage.Put(ctx, subnetIDKey, args.subnetID)
	storage.Put(ctx, registryKey, args.registry)
	storage.Put(ctx, versionKeyKey, args.versionKey)
	storage.Put(ctx, maxScoreKey, args.maxScore)
	storage.Put(ctx, responseTimeWeightKey, args.responseTimeWeight)

	runtime.Log("scoring contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the subnet owner.
func Update(script []byte, manifest []byte, data any) {
	ctx := storage.GetReadOnlyContext()
	common.CheckOwnerWitness(getOwner(ctx))

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("scoring contract updated")
}

// EvaluateMiners computes a score for every observed miner and submits the
// resulting weights to the weight registry on behalf of the calling
// validator.
//
// The three sequences must have equal length and hold, per miner: the
// response time (non-negative, in the subnet's time metric), whether the
// response passed independent verification, and the miner identifier. The
// score starts at maxScore, loses responseTime*responseTimeWeight/100
// points, is halved for unverified responses and is clamped into
// [0, maxScore]. The transform depends on nothing but the inputs and the
// contract parameters, so any observer can recompute it.
//
// EvaluateMiners panics with ErrInvalidInput before any external call if the
// sequences differ in length, and with ErrSubmissionFailed carrying the
// registry message if the registry rejects the batch. In both cases no
// weights are recorded. On success it returns the scores in input order.
func EvaluateMiners(responseTimes []int, verified []bool, minerIDs []int) []ScoreResult {
	if len(responseTimes) != len(minerIDs) || len(verified) != len(minerIDs) {
		panic(scoringconst.ErrInvalidInput)
	}

	ctx := storage.GetReadOnlyContext()
	maxScore := storage.Get(ctx, maxScoreKey).(int)
	weight := storage.Get(ctx, responseTimeWeightKey).(int)

	results := make([]ScoreResult, len(minerIDs))
	scores := make([]int, len(minerIDs))

	for i := 0; i < len(minerIDs); i++ {
		score := maxScore - responseTimes[i]*weight/100
		if score < 0 {
			score = 0
		}
		if !verified[i] {
			score = score / 2
		}
		if score > maxScore {
			score = maxScore
		}

		results[i] = ScoreResult{
			Score:   score,
			MinerID: minerIDs[i],
		}
		scores[i] = score
	}

	registry := storage.Get(ctx, registryKey).(interop.Hash160)
	subnetID := storage.Get(ctx, subnetIDKey).(int)
	versionKey := storage.Get(ctx, versionKeyKey).(int)

	status := contract.Call(registry, submitWeightsMethod, contract.All,
		subnetID, minerIDs, scores, waitForInclusion, waitForFinalization,
		versionKey).(SubmissionStatus)
	if !status.Success {
		panic(scoringconst.ErrSubmissionFailed + ": " + status.Message)
	}

	runtime.Notify("WeightsSubmitted", subnetID, len(scores))

	return results
}

// SetVersionKey sets the weights version key attached to every submission.
// It can be invoked only by the subnet owner.
func SetVersionKey(versionKey int) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(getOwner(ctx))

	storage.Put(ctx, versionKeyKey, versionKey)
	runtime.Log("weights version key updated")
}

// SetScoringParams sets the score bound and the response time penalty
// factor. It can be invoked only by the subnet owner.
func SetScoringParams(maxScore int, responseTimeWeight int) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(getOwner(ctx))

	if maxScore <= 0 || responseTimeWeight < 0 {
		panic(scoringconst.ErrInvalidParams)
	}

	storage.Put(ctx, maxScoreKey, maxScore)
	storage.Put(ctx, responseTimeWeightKey, responseTimeWeight)
	runtime.Log("scoring parameters updated")
}

// SetRegistry sets the address of the weight registry contract. It can be
// invoked only by the subnet owner.
func SetRegistry(registry interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(getOwner(ctx))

	if len(registry) != interop.Hash160Len {
		panic(scoringconst.ErrInvalidRegistry)
	}

	storage.Put(ctx, registryKey, registry)
	runtime.Log("weight registry address updated")
}

// Owner returns the public key of the subnet owner.
func Owner() interop.PublicKey {
	return getOwner(storage.GetReadOnlyContext())
}

// SubnetID returns the identifier of the subnet this contract scores.
func SubnetID() int {
	return storage.Get(storage.GetReadOnlyContext(), subnetIDKey).(int)
}

// VersionKey returns the current weights version key.
func VersionKey() int {
	return storage.Get(storage.GetReadOnlyContext(), versionKeyKey).(int)
}

// Registry returns the address of the weight registry contract.
func Registry() interop.Hash160 {
	return storage.Get(storage.GetReadOnlyContext(), registryKey).(interop.Hash160)
}

// MaxScore returns the upper score bound.
func MaxScore() int {
	return storage.Get(storage.GetReadOnlyContext(), maxScoreKey).(int)
}

// ResponseTimeWeight returns the response time penalty factor.
func ResponseTimeWeight() int {
	return storage.Get(storage.GetReadOnlyContext(), responseTimeWeightKey).(int)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getOwner(ctx storage.Context) interop.PublicKey {
	return storage.Get(ctx, ownerKey).(interop.PublicKey)
}
