// Package deploy provides deployment routine of the Scoring contract.
package deploy

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the deployment of the Scoring contract.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to the
	// blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns an error with 'Unknown contract'
	// substring if the requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// ScoringPrm groups deployment parameters of the Scoring contract.
type ScoringPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest

	// Subnet owner key. Bound to the contract forever at deploy time, only
	// its holder may change contract parameters or code afterwards.
	Owner *keys.PublicKey

	// Identifier of the subnet the deployed contract will score.
	SubnetID int64

	// Address of the weight registry contract the computed weights are
	// submitted to.
	Registry util.Uint160

	// Initial weights version key.
	VersionKey int64

	// Scoring parameters, see scoringconst package for the defaults.
	MaxScore           int64
	ResponseTimeWeight int64
}

// Prm groups all parameters of the Scoring contract deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to be used.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	LocalAccount *wallet.Account

	Scoring ScoringPrm
}

// Deploy deploys the Scoring contract described by given Prm on the given Neo
// blockchain and returns its address. If the contract is already on the
// chain, Deploy does nothing and returns the address of the existing
// contract.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	if err := validatePrm(prm); err != nil {
		return util.Uint160{}, err
	}

	sender := prm.LocalAccount.ScriptHash()
	onChainAddress := state.CreateContractHash(sender, prm.Scoring.NEF.Checksum, prm.Scoring.Manifest.Name)

	stateOnChain, err := prm.Blockchain.GetContractStateByHash(onChainAddress)
	if err == nil {
		prm.Logger.Info("scoring contract is already on the chain",
			zap.Stringer("address", stateOnChain.Hash))
		return stateOnChain.Hash, nil
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	deployData := []any{
		prm.Scoring.Owner.Bytes(),
		prm.Scoring.SubnetID,
		prm.Scoring.Registry,
		prm.Scoring.VersionKey,
		prm.Scoring.MaxScore,
		prm.Scoring.ResponseTimeWeight,
	}

	prm.Logger.Info("deploying scoring contract...",
		zap.Int64("subnet", prm.Scoring.SubnetID),
		zap.Stringer("registry", prm.Scoring.Registry))

	if err := ctx.Err(); err != nil {
		return util.Uint160{}, fmt.Errorf("deployment interrupted: %w", err)
	}

	txHash, vub, err := management.New(act).Deploy(&prm.Scoring.NEF, &prm.Scoring.Manifest, deployData)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("send transaction deploying scoring contract: %w", err)
	}

	res, err := act.Wait(txHash, vub, nil)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("wait for deploy transaction %s: %w", txHash.StringLE(), err)
	}
	if res.VMState != vmstate.Halt {
		return util.Uint160{}, fmt.Errorf("deploy transaction %s failed: %s", txHash.StringLE(), res.FaultException)
	}

	prm.Logger.Info("scoring contract successfully deployed",
		zap.Stringer("address", onChainAddress))

	return onChainAddress, nil
}

func validatePrm(prm Prm) error {
	switch {
	case prm.Logger == nil:
		return errors.New("missing logger")
	case prm.Blockchain == nil:
		return errors.New("missing blockchain client")
	case prm.LocalAccount == nil:
		return errors.New("missing local account")
	case prm.Scoring.Owner == nil:
		return errors.New("missing subnet owner key")
	case prm.Scoring.Registry.Equals(util.Uint160{}):
		return errors.New("missing weight registry address")
	case prm.Scoring.MaxScore <= 0:
		return errors.New("non-positive max score")
	case prm.Scoring.ResponseTimeWeight < 0:
		return errors.New("negative response time weight")
	}

	return nil
}
