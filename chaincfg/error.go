// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The herbsters developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of network parameter configuration error.
type ErrorCode int

// These constants are used to identify a specific RuleError.
const (
	// ErrUnknownChain indicates the requested chain name is not one of the
	// supported networks.
	ErrUnknownChain ErrorCode = iota

	// ErrGenesisBuildFailed indicates the genesis block could not be
	// assembled from the network table.
	ErrGenesisBuildFailed

	// ErrGenesisHashMismatch indicates the hash of the constructed genesis
	// block does not match the hard-coded expected value for the network.
	ErrGenesisHashMismatch

	// ErrMerkleRootMismatch indicates the merkle root of the constructed
	// genesis block does not match the hard-coded expected value for the
	// network.
	ErrMerkleRootMismatch

	// ErrGenesisBitsInvalid indicates the difficulty bits of the genesis
	// block expand to a target that is not positive or is above the proof
	// of work limit of the network.
	ErrGenesisBitsInvalid

	// ErrGenesisPowInvalid indicates the proof of work hash of the genesis
	// block header does not meet the target claimed by its difficulty bits.
	ErrGenesisPowInvalid

	// ErrCheckpointOrder indicates the checkpoints of a network are not in
	// strictly increasing height order.
	ErrCheckpointOrder

	// ErrCheckpointGenesis indicates a checkpoint at height zero does not
	// commit to the genesis block hash.
	ErrCheckpointGenesis

	// ErrDeploymentBit indicates a consensus deployment uses a version bit
	// that is out of range or already used by another deployment.
	ErrDeploymentBit

	// ErrPrefixCollision indicates two single byte address kinds of the
	// same network share a prefix byte.
	ErrPrefixCollision

	// ErrNoActiveParams indicates an operation on the active network
	// parameters was attempted before any network was selected.
	ErrNoActiveParams

	// ErrUnknownDeployment indicates a deployment index outside of the
	// defined deployments.
	ErrUnknownDeployment

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrUnknownChain:        "ErrUnknownChain",
	ErrGenesisBuildFailed:  "ErrGenesisBuildFailed",
	ErrGenesisHashMismatch: "ErrGenesisHashMismatch",
	ErrMerkleRootMismatch:  "ErrMerkleRootMismatch",
	ErrGenesisBitsInvalid:  "ErrGenesisBitsInvalid",
	ErrGenesisPowInvalid:   "ErrGenesisPowInvalid",
	ErrCheckpointOrder:     "ErrCheckpointOrder",
	ErrCheckpointGenesis:   "ErrCheckpointGenesis",
	ErrDeploymentBit:       "ErrDeploymentBit",
	ErrPrefixCollision:     "ErrPrefixCollision",
	ErrNoActiveParams:      "ErrNoActiveParams",
	ErrUnknownDeployment:   "ErrUnknownDeployment",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a defect in the network parameter tables or a misuse
// of the active parameter slot.  Every code except ErrNoActiveParams and
// ErrUnknownDeployment describes a fatal configuration error which the caller
// is expected to treat as unrecoverable.
type RuleError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// ruleError creates a RuleError given a set of arguments.
func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether or not the provided error is a RuleError with
// the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	var rerr RuleError
	if !errors.As(err, &rerr) {
		return false
	}
	return rerr.ErrorCode == c
}
