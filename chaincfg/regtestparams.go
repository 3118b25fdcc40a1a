// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The herbsters developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
)

// regTestNoTimeout is the expire time of deployments that are always
// available for vote on the regression test network.
const regTestNoTimeout = 999999999999

// regTestNetConfig returns the parameter table for the regression test
// network.  Not to be confused with the public test network, this network is
// private to a single test harness and has no seeds.
func regTestNetConfig() *netConfig {
	return &netConfig{
		Genesis: GenesisParams{
			Timestamp:    parentGenesisTimestamp,
			OutputScript: mustPayToPubKeyScript(parentGenesisPubKey),
			Time:         time.Unix(1296688602, 0), // 2011-02-02 23:16:42 +0000 UTC
			Nonce:        0,
			Bits:         0x207fffff,
			Version:      1,
			Reward:       50 * btcutil.SatoshiPerBitcoin,
		},
		GenesisHash:       *newHashFromStr("530827f38f93b43ed12af0b3ad25a288dc02ed74d6d7857862df51fc56c416f9"),
		GenesisMerkleRoot: *newHashFromStr(parentGenesisMerkleRoot),

		Params: Params{
			Name:             RegTestChain,
			Net:              RegTestNet,
			DefaultPort:      "27994",
			PruneAfterHeight: 1000,
			DNSSeeds:         nil, // NOTE: There must NOT be any seeds.
			FixedSeeds:       fixedSeeds(RegTestChain),

			// Chain parameters
			PowLimit:                 regressionPowLimit,
			PowLimitBits:             0x207fffff,
			BIP0034Height:            100000000, // Not active - Permit ver 1 blocks
			BIP0065Height:            1351,      // Used by regression tests
			BIP0066Height:            1251,      // Used by regression tests
			SubsidyReductionInterval: 150,
			TargetTimespan:           time.Hour * 84,    // 3.5 days
			TargetTimePerBlock:       time.Second * 150, // 2.5 minutes
			ReduceMinDifficulty:      true,
			NoRetargeting:            true,

			// Checkpoints ordered from oldest to newest.
			Checkpoints: []Checkpoint{
				{0, newHashFromStr("530827f38f93b43ed12af0b3ad25a288dc02ed74d6d7857862df51fc56c416f9")},
			},

			ChainTxData: ChainTxData{
				Time: time.Unix(0, 0),
			},

			// Consensus rule change deployments.
			//
			// The miner confirmation window is shorter than normal so
			// deployments can be activated quickly in tests.
			RuleChangeActivationThreshold: 108, // 75%  of MinerConfirmationWindow
			MinerConfirmationWindow:       144,
			Deployments: [DefinedDeployments]ConsensusDeployment{
				DeploymentTestDummy: {
					BitNumber:  28,
					StartTime:  0,                // Always available for vote
					ExpireTime: regTestNoTimeout, // Never expires
				},
				DeploymentCSV: {
					BitNumber:  0,
					StartTime:  0,                // Always available for vote
					ExpireTime: regTestNoTimeout, // Never expires
				},
				DeploymentSegwit: {
					BitNumber:  1,
					StartTime:  0,                // Always available for vote
					ExpireTime: regTestNoTimeout, // Never expires
				},
			},

			MinimumChainWork: newBigFromHex("00"),

			ConsistencyChecks:  true,
			RelayNonStdTxs:     true,
			MineBlocksOnDemand: true,

			// Address encoding magics
			PubKeyHashAddrID:  111, // starts with m or n
			ScriptHashAddrID:  196, // starts with 2
			ScriptHashAddrID2: 58,  // starts with Q
			PrivateKeyID:      239, // starts with 9 (uncompressed) or c (compressed)

			// BIP32 hierarchical deterministic extended key magics
			HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
			HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
		},
	}
}
