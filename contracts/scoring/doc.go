/*
Package scoring implements the Scoring contract deployed for a single subnet
of the validator network.

Validators independently gather raw observations about subnet miners
(response times and verification results) and invoke the contract to turn
them into weights. The rewards computation lives on-chain so that every
submitted weight can be recomputed from its inputs by any observer, which is
what makes copying other validators' weights detectable. Scoring and
submission happen in one transaction: the contract forwards the computed
weights to the weight registry contract chosen at deploy time and faults if
the registry rejects them, so weights are either scored and recorded together
or not at all.

The subnet owner key is fixed at deploy time. Only the owner may change the
weights version key, the scoring parameters, the registry address or the
contract code. Observations are never persisted; the contract state is
configuration only.

# Contract notifications

WeightsSubmitted notification. This notification is produced every time a
batch of weights is accepted by the weight registry.

	WeightsSubmitted:
	  - name: subnetId
	    type: Integer
	  - name: minerCount
	    type: Integer
*/
package scoring

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'owner' -> interop.PublicKey
   public key of the subnet owner, set at deploy time
 - 'subnetID' -> int
   identifier of the served subnet, set at deploy time
 - 'registry' -> interop.Hash160
   address of the weight registry contract
 - 'versionKey' -> int
   weights version key attached to every submission
 - 'maxScore' -> int
   upper score bound
 - 'responseTimeWeight' -> int
   response time penalty factor

# Configuration
Contract stores deploy-time configuration of a single subnet's scoring
mechanism. Per-invocation data (observations, scores, submissions) is not
retained.
*/
