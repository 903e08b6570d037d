// Package scoring contains RPC wrappers for the Subnet Scoring contract.
package scoring

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// ScoringScoreResult is a contract-specific scoring.ScoreResult type used by its methods.
type ScoringScoreResult struct {
	Score   *big.Int
	MinerID *big.Int
}

// ScoringSubmissionStatus is a contract-specific scoring.SubmissionStatus type used by its methods.
type ScoringSubmissionStatus struct {
	Success bool
	Message string
}

// WeightsSubmittedEvent represents "WeightsSubmitted" event emitted by the contract.
type WeightsSubmittedEvent struct {
	SubnetID   *big.Int
	MinerCount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// MaxScore invokes `maxScore` method of contract.
func (c *ContractReader) MaxScore() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "maxScore"))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (*keys.PublicKey, error) {
	return unwrap.PublicKey(c.invoker.Call(c.hash, "owner"))
}

// Registry invokes `registry` method of contract.
func (c *ContractReader) Registry() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "registry"))
}

// ResponseTimeWeight invokes `responseTimeWeight` method of contract.
func (c *ContractReader) ResponseTimeWeight() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "responseTimeWeight"))
}

// SubnetID invokes `subnetID` method of contract.
func (c *ContractReader) SubnetID() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "subnetID"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// VersionKey invokes `versionKey` method of contract.
func (c *ContractReader) VersionKey() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "versionKey"))
}

// EvaluateMiners creates a transaction invoking `evaluateMiners` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) EvaluateMiners(responseTimes []any, verified []any, minerIDs []any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "evaluateMiners", responseTimes, verified, minerIDs)
}

// EvaluateMinersTransaction creates a transaction invoking `evaluateMiners` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) EvaluateMinersTransaction(responseTimes []any, verified []any, minerIDs []any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "evaluateMiners", responseTimes, verified, minerIDs)
}

// EvaluateMinersUnsigned creates a transaction invoking `evaluateMiners` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) EvaluateMinersUnsigned(responseTimes []any, verified []any, minerIDs []any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "evaluateMiners", nil, responseTimes, verified, minerIDs)
}

// SetRegistry creates a transaction invoking `setRegistry` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetRegistry(registry util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setRegistry", registry)
}

// SetRegistryTransaction creates a transaction invoking `setRegistry` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetRegistryTransaction(registry util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setRegistry", registry)
}

// SetRegistryUnsigned creates a transaction invoking `setRegistry` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetRegistryUnsigned(registry util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setRegistry", nil, registry)
}

// SetScoringParams creates a transaction invoking `setScoringParams` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetScoringParams(maxScore *big.Int, responseTimeWeight *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setScoringParams", maxScore, responseTimeWeight)
}

// SetScoringParamsTransaction creates a transaction invoking `setScoringParams` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetScoringParamsTransaction(maxScore *big.Int, responseTimeWeight *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setScoringParams", maxScore, responseTimeWeight)
}

// SetScoringParamsUnsigned creates a transaction invoking `setScoringParams` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetScoringParamsUnsigned(maxScore *big.Int, responseTimeWeight *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setScoringParams", nil, maxScore, responseTimeWeight)
}

// SetVersionKey creates a transaction invoking `setVersionKey` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetVersionKey(versionKey *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setVersionKey", versionKey)
}

// SetVersionKeyTransaction creates a transaction invoking `setVersionKey` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetVersionKeyTransaction(versionKey *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setVersionKey", versionKey)
}

// SetVersionKeyUnsigned creates a transaction invoking `setVersionKey` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetVersionKeyUnsigned(versionKey *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setVersionKey", nil, versionKey)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// itemToScoringScoreResult converts stack item into *ScoringScoreResult.
func itemToScoringScoreResult(item stackitem.Item, err error) (*ScoringScoreResult, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ScoringScoreResult)
	err = res.FromStackItem(item)
	return res, err
}

// ScoreResultsFromStackItem decodes an ordered sequence of score results, as
// returned by `evaluateMiners`, from the given [stackitem.Item].
func ScoreResultsFromStackItem(item stackitem.Item) ([]*ScoringScoreResult, error) {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	res := make([]*ScoringScoreResult, len(arr))
	for i := range arr {
		r, err := itemToScoringScoreResult(arr[i], nil)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		res[i] = r
	}
	return res, nil
}

// FromStackItem retrieves fields of ScoringScoreResult from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ScoringScoreResult) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Score, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Score: %w", err)
	}

	index++
	res.MinerID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MinerID: %w", err)
	}

	return nil
}

// itemToScoringSubmissionStatus converts stack item into *ScoringSubmissionStatus.
// nolint:unused
func itemToScoringSubmissionStatus(item stackitem.Item, err error) (*ScoringSubmissionStatus, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ScoringSubmissionStatus)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ScoringSubmissionStatus from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ScoringSubmissionStatus) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Success, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Success: %w", err)
	}

	index++
	res.Message, err = func(item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Message: %w", err)
	}

	return nil
}

// WeightsSubmittedEventsFromApplicationLog retrieves a set of all emitted events
// with "WeightsSubmitted" name from the provided [result.ApplicationLog].
func WeightsSubmittedEventsFromApplicationLog(log *result.ApplicationLog) ([]*WeightsSubmittedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WeightsSubmittedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "WeightsSubmitted" {
				continue
			}
			event := new(WeightsSubmittedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WeightsSubmittedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WeightsSubmittedEvent or
// returns an error if it's not possible to do to so.
func (e *WeightsSubmittedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.SubnetID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SubnetID: %w", err)
	}

	index++
	e.MinerCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MinerCount: %w", err)
	}

	return nil
}
