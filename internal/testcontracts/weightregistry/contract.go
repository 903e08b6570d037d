package weightregistry

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/subnetlab/scoring-contract/common"
)

// Submission is the last weight batch accepted for a subnet.
type Submission struct {
	SubnetID   int
	MinerIDs   []int
	Weights    []int
	VersionKey int
}

// SubmissionStatus is returned by SubmitWeights.
type SubmissionStatus struct {
	Success bool
	Message string
}

const (
	submissionPrefix = 's'
	failMessageKey   = "failMessage"
)

// SubmitWeights records the weight batch for the given subnet and reports
// whether it was accepted. When a failure message is set with SetFailure,
// every submission is rejected with that message and nothing is recorded.
func SubmitWeights(subnetID int, minerIDs []int, weights []int, waitForInclusion bool, waitForFinalization bool, versionKey int) SubmissionStatus {
	ctx := storage.GetContext()

	failMsg := storage.Get(ctx, failMessageKey)
	if failMsg != nil {
		return SubmissionStatus{Success: false, Message: failMsg.(string)}
	}

	if len(minerIDs) != len(weights) {
		return SubmissionStatus{Success: false, Message: "miner and weight sequences differ in length"}
	}

	common.SetSerialized(ctx, submissionKey(subnetID), Submission{
		SubnetID:   subnetID,
		MinerIDs:   minerIDs,
		Weights:    weights,
		VersionKey: versionKey,
	})

	return SubmissionStatus{Success: true, Message: ""}
}

// LastSubmission returns the last weight batch accepted for the given subnet
// or a zero Submission if there were none.
func LastSubmission(subnetID int) Submission {
	data := storage.Get(storage.GetReadOnlyContext(), submissionKey(subnetID))
	if data == nil {
		return Submission{}
	}
	return std.Deserialize(data.([]byte)).(Submission)
}

// SetFailure makes every subsequent submission fail with the given message.
func SetFailure(message string) {
	storage.Put(storage.GetContext(), failMessageKey, message)
}

// ResetFailure makes submissions succeed again.
func ResetFailure() {
	storage.Delete(storage.GetContext(), failMessageKey)
}

func submissionKey(subnetID int) []byte {
	return append([]byte{submissionPrefix}, convert.ToBytes(subnetID)...)
}
