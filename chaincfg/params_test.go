// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2026 The herbsters developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func TestCreateParamsAllChains(t *testing.T) {
	for _, chain := range Chains() {
		params, err := CreateParams(chain)
		require.NoError(t, err, chain)
		require.Equal(t, chain, params.Name)
		require.NotNil(t, params.GenesisBlock)
		require.Equal(t, params.GenesisBlock.BlockHash(), *params.GenesisHash)

		// Every build is a fresh record.
		again, err := CreateParams(chain)
		require.NoError(t, err, chain)
		require.Equal(t, params, again)
		require.NotSame(t, params, again)
		require.NotSame(t, params.GenesisBlock, again.GenesisBlock)
	}
}

func TestCreateParamsUnknownChain(t *testing.T) {
	for _, name := range []Chain{"", "mainnet", "testnet3", "MAIN", "signet"} {
		params, err := CreateParams(name)
		require.Nil(t, params, name)
		require.True(t, IsErrorCode(err, ErrUnknownChain), spew.Sdump(err))
	}
}

func TestRegTestParams(t *testing.T) {
	params, err := CreateParams(RegTestChain)
	require.NoError(t, err)

	require.Equal(t, "27994", params.DefaultPort)
	require.Equal(t, uint64(1000), params.PruneAfterHeight)
	require.Equal(t, uint32(0), params.GenesisBlock.Header.Nonce)
	require.Equal(t, uint32(0x207fffff), params.GenesisBlock.Header.Bits)
	require.Empty(t, params.DNSSeeds)
	require.Empty(t, params.FixedSeeds)
	require.True(t, params.NoRetargeting)
	require.True(t, params.MineBlocksOnDemand)
	require.True(t, params.ConsistencyChecks)
	require.Equal(t, uint32(108), params.RuleChangeActivationThreshold)
	require.Equal(t, uint32(144), params.MinerConfirmationWindow)
	require.Equal(t, int32(150), params.SubsidyReductionInterval)
	require.Equal(t, time.Unix(0, 0), params.ChainTxData.Time)
	require.Zero(t, params.MinimumChainWork.Sign())
	require.Equal(t, chainhash.Hash{}, params.AssumeValid)

	for id, d := range params.Deployments {
		require.Zero(t, d.StartTime, DeploymentName(id))
		require.Equal(t, uint64(regTestNoTimeout), d.ExpireTime,
			DeploymentName(id))
	}

	require.Len(t, params.Checkpoints, 1)
	require.Equal(t, int32(0), params.Checkpoints[0].Height)
	require.Equal(t, *params.GenesisHash, *params.Checkpoints[0].Hash)
}

func TestTestNetParams(t *testing.T) {
	params, err := CreateParams(TestChain)
	require.NoError(t, err)

	require.Equal(t, []byte{111}, params.Base58Prefix(PubKeyAddress))
	require.Equal(t, "17994", params.DefaultPort)
	require.True(t, params.ReduceMinDifficulty)
	require.False(t, params.NoRetargeting)
	require.Len(t, params.DNSSeeds, 3)

	require.Len(t, params.Checkpoints, 1)
	require.Equal(t, int32(2056), params.LatestCheckpointHeight())
	require.Equal(t, "17748a31ba97afdc9a4f86837a39d287e3e7c7290a08a1d816c5969c78a83289",
		params.LatestCheckpoint().Hash.String())

	require.Zero(t, big.NewInt(0x7d006a402163e).Cmp(params.MinimumChainWork))
	require.Equal(t, uint64(794057), params.ChainTxData.TxCount)
	require.Equal(t, 0.01, params.ChainTxData.TxRate)
}

func TestMainNetParams(t *testing.T) {
	params, err := CreateParams(MainChain)
	require.NoError(t, err)

	require.Equal(t, "7994", params.DefaultPort)
	require.Equal(t, uint64(100000), params.PruneAfterHeight)
	require.False(t, params.ReduceMinDifficulty)
	require.False(t, params.RelayNonStdTxs)
	require.Equal(t, int32(840000), params.SubsidyReductionInterval)
	require.Equal(t, 84*time.Hour, params.TargetTimespan)
	require.Equal(t, 150*time.Second, params.TargetTimePerBlock)
	require.Equal(t, int32(710000), params.BIP0034Height)

	// The retarget window is four target timespans of blocks.
	window := uint32(4 * params.TargetTimespan / params.TargetTimePerBlock)
	require.Equal(t, window, params.MinerConfirmationWindow)
	require.Equal(t, window*3/4, params.RuleChangeActivationThreshold)

	require.Equal(t, []DNSSeed{{"149.28.46.64", true}, {"45.77.144.188", true}},
		params.DNSSeeds)
	require.Len(t, params.FixedSeeds, 2)
	require.Equal(t, "149.28.46.64:7994", params.FixedSeeds[0].String())

	require.Len(t, params.Checkpoints, 51)
	for i, checkpoint := range params.Checkpoints {
		require.Equal(t, int32(i), checkpoint.Height)
	}
	require.Equal(t, int32(50), params.LatestCheckpointHeight())
}

func TestFixedSeedsAreCopies(t *testing.T) {
	a, err := CreateParams(MainChain)
	require.NoError(t, err)
	a.FixedSeeds[0].Port = 1

	b, err := CreateParams(MainChain)
	require.NoError(t, err)
	require.Equal(t, uint16(7994), b.FixedSeeds[0].Port)
}

func TestCheckpointsStrictlyIncreasing(t *testing.T) {
	for _, chain := range Chains() {
		params, err := CreateParams(chain)
		require.NoError(t, err)

		for i := 1; i < len(params.Checkpoints); i++ {
			require.Less(t, params.Checkpoints[i-1].Height,
				params.Checkpoints[i].Height, chain)
		}
	}
}

func TestCheckpointAt(t *testing.T) {
	params, err := CreateParams(MainChain)
	require.NoError(t, err)

	hash, ok := params.CheckpointAt(0)
	require.True(t, ok)
	require.Equal(t, params.GenesisHash, hash)

	hash, ok = params.CheckpointAt(50)
	require.True(t, ok)
	require.Equal(t, "cc786fb813d02f3ba48992076b3c141980d9c1901897166df61f52dbfd37a34a",
		hash.String())

	_, ok = params.CheckpointAt(51)
	require.False(t, ok)
	_, ok = params.CheckpointAt(-1)
	require.False(t, ok)

	test, err := CreateParams(TestChain)
	require.NoError(t, err)
	_, ok = test.CheckpointAt(2055)
	require.False(t, ok)
	_, ok = test.CheckpointAt(2056)
	require.True(t, ok)

	var empty Params
	require.Nil(t, empty.LatestCheckpoint())
	require.Zero(t, empty.LatestCheckpointHeight())
	_, ok = empty.CheckpointAt(0)
	require.False(t, ok)
}

func TestMessageStart(t *testing.T) {
	tests := []struct {
		chain Chain
		net   uint32
		start [4]byte
	}{
		{MainChain, 0xd0b4b7d7, [4]byte{0xd7, 0xb7, 0xb4, 0xd0}},
		{TestChain, 0xf1c8d2fd, [4]byte{0xfd, 0xd2, 0xc8, 0xf1}},
		{RegTestChain, 0xdab5bffa, [4]byte{0xfa, 0xbf, 0xb5, 0xda}},
	}

	seen := make(map[[4]byte]Chain)
	for _, test := range tests {
		params, err := CreateParams(test.chain)
		require.NoError(t, err)
		require.Equal(t, test.net, uint32(params.Net))
		require.Equal(t, test.start, params.MessageStart())

		_, dup := seen[test.start]
		require.False(t, dup, "message start of %s is reused", test.chain)
		seen[test.start] = test.chain
	}
}

func TestBase58Prefix(t *testing.T) {
	main, err := CreateParams(MainChain)
	require.NoError(t, err)

	tests := []struct {
		kind AddressKind
		want []byte
	}{
		{PubKeyAddress, []byte{65}},
		{ScriptAddress, []byte{70}},
		{ScriptAddress2, []byte{50}},
		{SecretKey, []byte{33}},
		{ExtPublicKey, []byte{0x90, 0x85, 0x97, 0xdc}},
		{ExtSecretKey, []byte{0x90, 0x85, 0x81, 0x91}},
		{numAddressKinds, nil},
		{-1, nil},
	}
	for _, test := range tests {
		require.Equal(t, test.want, main.Base58Prefix(test.kind), test.kind)
	}

	require.Len(t, AddressKinds(), int(numAddressKinds))
	require.Equal(t, "script-v2", ScriptAddress2.String())
	require.Equal(t, "Unknown AddressKind (42)", AddressKind(42).String())
}

func TestDeploymentNames(t *testing.T) {
	for id := 0; id < DefinedDeployments; id++ {
		got, ok := DeploymentByName(DeploymentName(id))
		require.True(t, ok)
		require.Equal(t, id, got)
	}

	id, ok := DeploymentByName("segwit")
	require.True(t, ok)
	require.Equal(t, DeploymentSegwit, id)

	_, ok = DeploymentByName("taproot")
	require.False(t, ok)
	require.Equal(t, "unknown(7)", DeploymentName(7))
}

// TestNewParamsRejectsBrokenTables ensures table defects are reported with
// the matching error code and no record.
func TestNewParamsRejectsBrokenTables(t *testing.T) {
	// A main genesis with the wrong nonce, used to reach the proof of
	// work check with a consistent hash.
	badNonce := mainNetConfig()
	badNonce.Genesis.Nonce = 1
	block, err := CreateGenesisBlock(&badNonce.Genesis)
	require.NoError(t, err)
	badNonceHash := block.BlockHash()

	tests := []struct {
		name   string
		build  func() *netConfig
		mutate func(cfg *netConfig)
		code   ErrorCode
	}{
		{
			name:  "genesis hash mismatch",
			build: mainNetConfig,
			mutate: func(cfg *netConfig) {
				cfg.GenesisHash = chainhash.Hash{0x01}
			},
			code: ErrGenesisHashMismatch,
		},
		{
			name:  "changed timestamp text",
			build: testNetConfig,
			mutate: func(cfg *netConfig) {
				cfg.Genesis.Timestamp += "!"
			},
			code: ErrGenesisHashMismatch,
		},
		{
			name:  "merkle root mismatch",
			build: regTestNetConfig,
			mutate: func(cfg *netConfig) {
				cfg.GenesisMerkleRoot = chainhash.Hash{0x02}
			},
			code: ErrMerkleRootMismatch,
		},
		{
			name:  "genesis bits above pow limit",
			build: mainNetConfig,
			mutate: func(cfg *netConfig) {
				cfg.Params.PowLimit = big.NewInt(1)
			},
			code: ErrGenesisBitsInvalid,
		},
		{
			name:  "genesis does not meet its target",
			build: mainNetConfig,
			mutate: func(cfg *netConfig) {
				cfg.Genesis.Nonce = 1
				cfg.GenesisHash = badNonceHash
				cfg.Params.Checkpoints = nil
			},
			code: ErrGenesisPowInvalid,
		},
		{
			name:  "checkpoints out of order",
			build: mainNetConfig,
			mutate: func(cfg *netConfig) {
				cp := cfg.Params.Checkpoints
				cp[3], cp[4] = cp[4], cp[3]
			},
			code: ErrCheckpointOrder,
		},
		{
			name:  "duplicate checkpoint height",
			build: mainNetConfig,
			mutate: func(cfg *netConfig) {
				cfg.Params.Checkpoints[5].Height = 4
			},
			code: ErrCheckpointOrder,
		},
		{
			name:  "checkpoint without hash",
			build: testNetConfig,
			mutate: func(cfg *netConfig) {
				cfg.Params.Checkpoints[0].Hash = nil
			},
			code: ErrCheckpointOrder,
		},
		{
			name:  "height zero checkpoint is not genesis",
			build: regTestNetConfig,
			mutate: func(cfg *netConfig) {
				cfg.Params.Checkpoints[0].Hash = &chainhash.Hash{0x03}
			},
			code: ErrCheckpointGenesis,
		},
		{
			name:  "reserved deployment bit",
			build: mainNetConfig,
			mutate: func(cfg *netConfig) {
				cfg.Params.Deployments[DeploymentTestDummy].BitNumber = 29
			},
			code: ErrDeploymentBit,
		},
		{
			name:  "shared deployment bit",
			build: testNetConfig,
			mutate: func(cfg *netConfig) {
				cfg.Params.Deployments[DeploymentSegwit].BitNumber = 0
			},
			code: ErrDeploymentBit,
		},
		{
			name:  "shared address prefix",
			build: mainNetConfig,
			mutate: func(cfg *netConfig) {
				cfg.Params.ScriptHashAddrID = cfg.Params.PubKeyHashAddrID
			},
			code: ErrPrefixCollision,
		},
		{
			name:  "shared extended key version",
			build: regTestNetConfig,
			mutate: func(cfg *netConfig) {
				cfg.Params.HDPublicKeyID = cfg.Params.HDPrivateKeyID
			},
			code: ErrPrefixCollision,
		},
	}

	for _, test := range tests {
		cfg := test.build()
		test.mutate(cfg)

		params, err := newParams(cfg)
		require.Nil(t, params, test.name)
		require.Error(t, err, test.name)

		var rerr RuleError
		require.ErrorAs(t, err, &rerr, test.name)
		require.Equal(t, test.code, rerr.ErrorCode, "%s: %v", test.name, err)
		require.NotEmpty(t, rerr.Error(), test.name)
	}
}

// TestErrorCodeStringer tests the stringized output for the ErrorCode type.
func TestErrorCodeStringer(t *testing.T) {
	tests := []struct {
		in   ErrorCode
		want string
	}{
		{ErrUnknownChain, "ErrUnknownChain"},
		{ErrGenesisBuildFailed, "ErrGenesisBuildFailed"},
		{ErrGenesisHashMismatch, "ErrGenesisHashMismatch"},
		{ErrMerkleRootMismatch, "ErrMerkleRootMismatch"},
		{ErrGenesisBitsInvalid, "ErrGenesisBitsInvalid"},
		{ErrGenesisPowInvalid, "ErrGenesisPowInvalid"},
		{ErrCheckpointOrder, "ErrCheckpointOrder"},
		{ErrCheckpointGenesis, "ErrCheckpointGenesis"},
		{ErrDeploymentBit, "ErrDeploymentBit"},
		{ErrPrefixCollision, "ErrPrefixCollision"},
		{ErrNoActiveParams, "ErrNoActiveParams"},
		{ErrUnknownDeployment, "ErrUnknownDeployment"},
		{0xffff, "Unknown ErrorCode (65535)"},
	}

	// Detect additional error codes that don't have the stringer added.
	require.Len(t, tests, int(numErrorCodes)+1,
		"It appears an error code was added without adding an "+
			"associated stringer test")

	for _, test := range tests {
		require.Equal(t, test.want, test.in.String())
	}
}

func TestIsErrorCode(t *testing.T) {
	err := ruleError(ErrCheckpointOrder, "out of order")
	require.True(t, IsErrorCode(err, ErrCheckpointOrder))
	require.False(t, IsErrorCode(err, ErrCheckpointGenesis))
	require.False(t, IsErrorCode(nil, ErrCheckpointOrder))
	require.Equal(t, "out of order", err.Error())
}
