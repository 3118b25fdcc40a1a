// Copyright (c) 2026 The herbsters developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"sync/atomic"
)

// activeParams holds the parameters of the network selected at startup.  It
// is written by SelectParams, which must run before any subsystem consults
// the parameters, and replaced wholesale so a reader never observes a mix of
// two networks.
var activeParams atomic.Pointer[Params]

// SelectParams builds the parameters of the named chain and makes them the
// active set, replacing any earlier selection.  On error the active set is
// left untouched.  The error is a RuleError and callers are expected to treat
// it as fatal.
func SelectParams(chain string) error {
	params, err := CreateParams(Chain(chain))
	if err != nil {
		return err
	}

	prev := activeParams.Swap(params)
	if prev != nil && prev.Name != params.Name {
		log.Warnf("Replacing active %s network parameters with %s",
			prev.Name, params.Name)
	}
	log.Infof("Selected %s network parameters (genesis %v)", params.Name,
		params.GenesisHash)
	return nil
}

// MustSelectParams is SelectParams for callers that can not continue without
// a valid parameter set.  It panics on error.
func MustSelectParams(chain string) {
	if err := SelectParams(chain); err != nil {
		panic("failed to select network parameters: " + err.Error())
	}
}

// HaveActiveParams returns whether a network has been selected.
func HaveActiveParams() bool {
	return activeParams.Load() != nil
}

// ActiveParams returns the parameters of the selected network.  The returned
// record must be treated as read only.
//
// Calling it before SelectParams is a programming error and panics.
func ActiveParams() *Params {
	params := activeParams.Load()
	if params == nil {
		panic("chaincfg: ActiveParams called before SelectParams")
	}
	return params
}

// UpdateDeploymentParams overrides the voting window of a single deployment
// of the active network.  It exists so test harnesses can force a deployment
// to activate or never activate and is not used during normal operation.
//
// The active record is copied and the copy replaces it, so records obtained
// from ActiveParams before the call keep their original windows.  Concurrent
// overrides must be serialized by the caller.
func UpdateDeploymentParams(deployment int, startTime, expireTime uint64) error {
	params := activeParams.Load()
	if params == nil {
		return ruleError(ErrNoActiveParams, "no network parameters "+
			"have been selected")
	}
	if deployment < 0 || deployment >= DefinedDeployments {
		str := fmt.Sprintf("deployment %d is not defined", deployment)
		return ruleError(ErrUnknownDeployment, str)
	}

	updated := *params
	updated.Deployments[deployment].StartTime = startTime
	updated.Deployments[deployment].ExpireTime = expireTime
	activeParams.Store(&updated)

	log.Debugf("Deployment %s of %s now starts at %d and expires at %d",
		DeploymentName(deployment), params.Name, startTime, expireTime)
	return nil
}
