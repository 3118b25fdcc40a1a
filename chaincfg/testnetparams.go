// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The herbsters developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
)

const (
	// parentGenesisTimestamp is the coinbase text of the chain Herbsters
	// was forked from.  The test networks kept the parent genesis
	// coinbase, so their merkle root is the parent's.
	parentGenesisTimestamp = "NY Times 05/Oct/2011 Steve Jobs, Apple\u2019s Visionary, Dies at 56"

	// parentGenesisPubKey is the public key paid by the parent genesis
	// coinbase.
	parentGenesisPubKey = "040184710fa689ad5023690c80f3a49c8f13f8d45b8c857fbcbc8bc4a8e4" +
		"d3eb4b10f4d4604fa08dce601aaf0f470216fe1b51850b4acf21b179c45070ac7b03a9"

	// parentGenesisMerkleRoot is the merkle root of every block built on
	// the parent genesis coinbase.
	parentGenesisMerkleRoot = "97ddfbbae6be97fd6cdf3e7ca13232a3afff2353e29badfab7f73011edd4ced9"
)

// testNetConfig returns the parameter table for the public test network.
func testNetConfig() *netConfig {
	return &netConfig{
		Genesis: GenesisParams{
			Timestamp:    parentGenesisTimestamp,
			OutputScript: mustPayToPubKeyScript(parentGenesisPubKey),
			Time:         time.Unix(1486949366, 0), // 2017-02-13 01:29:26 +0000 UTC
			Nonce:        293345,
			Bits:         0x1e0ffff0,
			Version:      1,
			Reward:       50 * btcutil.SatoshiPerBitcoin,
		},
		GenesisHash:       *newHashFromStr("4966625a4b2851d9fdee139e56211a0d88575f59ed816ff5e6a63deb4e3e29a0"),
		GenesisMerkleRoot: *newHashFromStr(parentGenesisMerkleRoot),

		Params: Params{
			Name:             TestChain,
			Net:              TestNet,
			DefaultPort:      "17994",
			PruneAfterHeight: 1000,

			// Nodes with support for service bits filtering should be at
			// the top.
			DNSSeeds: []DNSSeed{
				{"testnet-seed.herbsterstools.com", true},
				{"seed-b.herbsters.loshan.co.uk", true},
				{"dnsseed-testnet.thrasher.io", true},
			},
			FixedSeeds: fixedSeeds(TestChain),

			// Chain parameters
			PowLimit:                 testNetPowLimit,
			PowLimitBits:             0x1e0fffff,
			BIP0034Height:            76,
			BIP0034Hash:              *newHashFromStr("8075c771ed8b495ffd943980a95f702ab34fce3c8c54e379548bda33cc8c0573"),
			BIP0065Height:            76, // 8075c771ed8b495ffd943980a95f702ab34fce3c8c54e379548bda33cc8c0573
			BIP0066Height:            76, // 8075c771ed8b495ffd943980a95f702ab34fce3c8c54e379548bda33cc8c0573
			SubsidyReductionInterval: 840000,
			TargetTimespan:           time.Hour * 84,    // 3.5 days
			TargetTimePerBlock:       time.Second * 150, // 2.5 minutes
			ReduceMinDifficulty:      true,
			NoRetargeting:            false,

			// Checkpoints ordered from oldest to newest.
			Checkpoints: []Checkpoint{
				{2056, newHashFromStr("17748a31ba97afdc9a4f86837a39d287e3e7c7290a08a1d816c5969c78a83289")},
			},

			// Data as of block a0afbded94d4be233e191525dc2d467af5c7eab3143c852c3cd549831022aad6
			// (height 343833).
			ChainTxData: ChainTxData{
				Time:    time.Unix(1516406749, 0),
				TxCount: 794057,
				TxRate:  0.01,
			},

			// Consensus rule change deployments.
			//
			// The miner confirmation window is defined as:
			//   target proof of work timespan / target proof of work spacing
			RuleChangeActivationThreshold: 1512, // 75% of MinerConfirmationWindow
			MinerConfirmationWindow:       2016,
			Deployments: [DefinedDeployments]ConsensusDeployment{
				DeploymentTestDummy: {
					BitNumber:  28,
					StartTime:  1199145601, // January 1, 2008 UTC
					ExpireTime: 1230767999, // December 31, 2008 UTC
				},
				DeploymentCSV: {
					BitNumber:  0,
					StartTime:  1483228800, // January 1, 2017 UTC
					ExpireTime: 1517356801, // January 31, 2018 UTC
				},
				DeploymentSegwit: {
					BitNumber:  1,
					StartTime:  1483228800, // January 1, 2017 UTC
					ExpireTime: 1517356801, // January 31, 2018 UTC
				},
			},

			MinimumChainWork: newBigFromHex("7d006a402163e"),
			AssumeValid:      *newHashFromStr("a0afbded94d4be233e191525dc2d467af5c7eab3143c852c3cd549831022aad6"), // 343833

			ConsistencyChecks:  false,
			RelayNonStdTxs:     true,
			MineBlocksOnDemand: false,

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
