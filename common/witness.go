package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

// ErrOwnerWitnessFailed appears when the method must be called
// by the subnet owner but was not.
var ErrOwnerWitnessFailed = "owner witness check failed"

// CheckOwnerWitness checks witness of the passed caller.
// It panics with ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(caller []byte) {
	if !runtime.CheckWitness(caller) {
		panic(ErrOwnerWitnessFailed)
	}
}
