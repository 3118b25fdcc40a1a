// Copyright (c) 2026 The herbsters developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// resetActiveParams clears the active slot for the duration of a test.
func resetActiveParams(t *testing.T) {
	activeParams.Store(nil)
	t.Cleanup(func() { activeParams.Store(nil) })
}

func TestActiveParamsBeforeSelect(t *testing.T) {
	resetActiveParams(t)

	require.False(t, HaveActiveParams())
	require.Panics(t, func() { ActiveParams() })
}

func TestSelectParams(t *testing.T) {
	resetActiveParams(t)

	require.NoError(t, SelectParams("test"))
	require.True(t, HaveActiveParams())
	test := ActiveParams()
	require.Equal(t, TestChain, test.Name)
	require.Same(t, test, ActiveParams())

	// Selecting again replaces the record wholesale.
	require.NoError(t, SelectParams("regtest"))
	regtest := ActiveParams()
	require.Equal(t, RegTestChain, regtest.Name)
	require.Equal(t, TestChain, test.Name)

	// A failed selection leaves the previous one in place.
	err := SelectParams("bogus")
	require.True(t, IsErrorCode(err, ErrUnknownChain))
	require.Same(t, regtest, ActiveParams())
}

func TestMustSelectParams(t *testing.T) {
	resetActiveParams(t)

	require.Panics(t, func() { MustSelectParams("mainnet") })
	require.False(t, HaveActiveParams())

	require.NotPanics(t, func() { MustSelectParams("main") })
	require.Equal(t, MainChain, ActiveParams().Name)
}

func TestUpdateDeploymentParams(t *testing.T) {
	resetActiveParams(t)

	err := UpdateDeploymentParams(DeploymentCSV, 1, 2)
	require.True(t, IsErrorCode(err, ErrNoActiveParams))

	require.NoError(t, SelectParams("regtest"))
	before := ActiveParams()

	require.NoError(t, UpdateDeploymentParams(DeploymentCSV, 1000, 2000))
	after := ActiveParams()
	require.NotSame(t, before, after)

	// Only the targeted deployment changes.
	csv := after.Deployments[DeploymentCSV]
	require.Equal(t, uint64(1000), csv.StartTime)
	require.Equal(t, uint64(2000), csv.ExpireTime)
	require.Equal(t, before.Deployments[DeploymentCSV].BitNumber, csv.BitNumber)
	require.Equal(t, before.Deployments[DeploymentSegwit],
		after.Deployments[DeploymentSegwit])
	require.Equal(t, before.Deployments[DeploymentTestDummy],
		after.Deployments[DeploymentTestDummy])

	// Records handed out earlier keep their windows.
	require.Zero(t, before.Deployments[DeploymentCSV].StartTime)
	require.Equal(t, uint64(regTestNoTimeout),
		before.Deployments[DeploymentCSV].ExpireTime)

	// Everything else is carried over.
	require.Equal(t, before.GenesisHash, after.GenesisHash)
	require.Equal(t, before.Net, after.Net)

	for _, id := range []int{-1, DefinedDeployments} {
		err := UpdateDeploymentParams(id, 0, 0)
		require.True(t, IsErrorCode(err, ErrUnknownDeployment), id)
	}
	require.Same(t, after, ActiveParams())
}

// TestActiveParamsConcurrentReaders ensures readers always observe a
// complete record while the selection is replaced.
func TestActiveParamsConcurrentReaders(t *testing.T) {
	resetActiveParams(t)
	require.NoError(t, SelectParams("main"))

	var wg sync.WaitGroup
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				p := ActiveParams()
				if p.GenesisBlock.BlockHash() != *p.GenesisHash {
					t.Error("observed a mixed parameter record")
					return
				}
			}
		}()
	}

	for _, chain := range []string{"test", "regtest", "main"} {
		require.NoError(t, SelectParams(chain))
	}
	close(done)
	wg.Wait()
}
