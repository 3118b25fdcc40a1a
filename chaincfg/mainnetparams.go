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
	// genesisTimestamp is the text committed to by the main network
	// genesis coinbase.
	genesisTimestamp = "This is Herbsters, that it is you otherb"

	// genesisPubKey is the uncompressed public key paid by the main
	// network genesis coinbase.
	genesisPubKey = "04678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0" +
		"ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6" +
		"bf11d5f"
)

// mainNetConfig returns the parameter table for the main Herbsters network.
func mainNetConfig() *netConfig {
	return &netConfig{
		Genesis: GenesisParams{
			Timestamp:    genesisTimestamp,
			OutputScript: mustPayToPubKeyScript(genesisPubKey),
			Time:         time.Unix(1580464050, 0), // 2020-01-31 09:47:30 +0000 UTC
			Nonce:        931820,
			Bits:         0x1e0ffff0,
			Version:      1,
			Reward:       50 * btcutil.SatoshiPerBitcoin,
		},
		GenesisHash:       *newHashFromStr("dc50ba9cea4e2b2afc508ebdf796849f39d6c8d012a060a025360532c91b4ed8"),
		GenesisMerkleRoot: *newHashFromStr("d1b12fb6aa246a1669ebbe7a8ba6e53a9e5f70ce1e580ab0e144fa866586fd3b"),

		Params: Params{
			Name:             MainChain,
			Net:              MainNet,
			DefaultPort:      "7994",
			PruneAfterHeight: 100000,
			DNSSeeds: []DNSSeed{
				{"149.28.46.64", true},
				{"45.77.144.188", true},
			},
			FixedSeeds: fixedSeeds(MainChain),

			// Chain parameters
			PowLimit:                 mainPowLimit,
			PowLimitBits:             0x1e0fffff,
			BIP0034Height:            710000,
			BIP0034Hash:              *newHashFromStr("fa09d204a83a768ed5a7c8d441fa62f2043abf420cff1226c7b4329aeb9d51cf"),
			BIP0065Height:            918684, // bab3041e8977e0dc3eeff63fe707b92bde1dd449d8efafb248c27c8264cc311a
			BIP0066Height:            811879, // 7aceee012833fa8952f8835d8b1b3ae233cd6ab08fdb27a771d2bd7bdc491894
			SubsidyReductionInterval: 840000,
			TargetTimespan:           time.Hour * 84,    // 3.5 days
			TargetTimePerBlock:       time.Second * 150, // 2.5 minutes
			ReduceMinDifficulty:      false,
			NoRetargeting:            false,

			// Checkpoints ordered from oldest to newest.
			Checkpoints: []Checkpoint{
				{0, newHashFromStr("dc50ba9cea4e2b2afc508ebdf796849f39d6c8d012a060a025360532c91b4ed8")},
				{1, newHashFromStr("028e9007a9f5016985059fbb6f6d2abdb77d8699df82f20fdcfbe180295d51c6")},
				{2, newHashFromStr("c22fde03c3c0c03e13c6713bec31ebe3e7ca6141ae5557b795529d4ee1d5f5e8")},
				{3, newHashFromStr("d99399becf8f63cb0983fbe322b953b43fab7572a6680bc5bb31495062136f9f")},
				{4, newHashFromStr("380fb8e4de2460e8db8cbb02c51d9ae912b328075818e4a1d4050f7b4a4051cd")},
				{5, newHashFromStr("2d30dc6b143a18a204d3e7930a1343f882531079abf9c97d47185febea5b10c1")},
				{6, newHashFromStr("f0a73320b6c02da783557115729739cb9863393d1eeac0da63fd2da964b32c2f")},
				{7, newHashFromStr("1bffb0be7c0957159ab62a8661204d11ce421d5b98e016d8e38e680bc740ab9e")},
				{8, newHashFromStr("4531b56190795e212346ec373c40fb1c91e2bead0e78e9450d851fcb9873457f")},
				{9, newHashFromStr("fb94d9c1cbcf4a5845be823eb7d5aba8101f459795342eba5d91caf292030c9e")},
				{10, newHashFromStr("efb5a83383b7ff35e4d380fe298e6810f7fe43e93fe81332b36ac7574dd4c4dc")},
				{11, newHashFromStr("ba069fd6ca8a28910265d49965bc71078387c0830e8e1e981009ffa6e77f2500")},
				{12, newHashFromStr("ff3d0c569619a316ca06aa5c1ddb31217c433bc61d0a2004f3456825e8948b6c")},
				{13, newHashFromStr("acaf8c047bddb71a430973c2d299a2390c34a05f7d737471d01ffeac911fe753")},
				{14, newHashFromStr("8e98f371356152e79754378edffa5ccf63987733ad83b2e236ffde072f02cc9f")},
				{15, newHashFromStr("b550a532b9866ad6f1114a4fa6648adfa5bb96e4e7f82593549dd053eccae452")},
				{16, newHashFromStr("dd381af8d0fcec80e9dd74b63f6be0c1dadcff3dca569fc2686ce2bb1b5f82b5")},
				{17, newHashFromStr("ebc8557d770606a34c4f5cb3663e998ccde0e3c6c8cce3432fe481e262d501ef")},
				{18, newHashFromStr("5944271119d2d6c53ce5da7a38a128a18f0af0d1574cb8381722bed1805e4c4b")},
				{19, newHashFromStr("1ddcf83e41dd526fae666fe8bae114475d05bf11236ec96b5a851b336961a7a8")},
				{20, newHashFromStr("06fb8168c1e393a387238bb666a2881d6c3817cee9cc9233cd5c663570e954ad")},
				{21, newHashFromStr("f87a6e4bb74baa1ce70d5916c3690ea2ff551c8a3b486efd1caa38c7e28ed012")},
				{22, newHashFromStr("33026a2643a28a02ed9410cd5318e70372917c78d516bc8faa42a71466715559")},
				{23, newHashFromStr("28ca6b00397fcc92cf53a9ba19a79775af7318a3b2b189b5e044715e2f390e54")},
				{24, newHashFromStr("82bdb1c6be341e086fe7b2cf5983368180614285bd891888a2811fb53d32f5ca")},
				{25, newHashFromStr("263dde0b9f5409a8e2abe12b84b3dff3f3bd4582a240836b80f5ec6fdd86ca80")},
				{26, newHashFromStr("a831a266dbc931e57556fa09f2210edc82eb959200be0fef8fa089a831c6ae61")},
				{27, newHashFromStr("54ff875f536e7f44e355f66af0d45f88b5bd8b739d8fb3c4e747db32625f6dfa")},
				{28, newHashFromStr("e6ac1dbea2d7acf96c9a5872a6be9d2eade4c9d2343a38f972cf1880c4a58ea6")},
				{29, newHashFromStr("5d6f2c9602028714cd26729ed604af46cf033da820ee4fb961ee1ad818bab8fc")},
				{30, newHashFromStr("8319de5caf72ecf3a8480c442123265e5b5495bbe1388989b5ea7ec7c11543dd")},
				{31, newHashFromStr("7a982ae11f320e1191e946e7132280c3ac2faba90822861b284249199f3562e6")},
				{32, newHashFromStr("857d65454d064e4824ef4efefaeed744ceadce41329929339353e9d572411af6")},
				{33, newHashFromStr("fbd58a26ccd8102b2503e87a15f21e55b6b19e61da31da20f5b35344d1c58e9f")},
				{34, newHashFromStr("7e0690c692e6ddf08608f9356327ae6a6bc9298426e86a6c6a300d980acd6b3d")},
				{35, newHashFromStr("b7004ab0aced698dbf82bcca4ce07f19ad6a7c041f4b92e8e5f9440db0ce37a7")},
				{36, newHashFromStr("f50f1a229ab45acd00ed3f1cba85a38a8e5a68437461360f8c34a7d8ef13af3f")},
				{37, newHashFromStr("bebb0a6e18ee25b55994dbcbc2bc9cb48364d7ef76228ea9f4f04e01999a27d8")},
				{38, newHashFromStr("c5771e854efb9a6095cab833f9cc8e2e5820c48f80f18430896bd7424c4e758d")},
				{39, newHashFromStr("1b25050dd995b463a3a31ca66c0d51bdd16ba8c03de706a31de855b91b439fd7")},
				{40, newHashFromStr("538c8171d18b27a25757f6e44852e41f52e2e87e8d2e40e745694fb33fc08987")},
				{41, newHashFromStr("e8b9a97682cf4d29415597aa1b1e4f3e38916fc37018b2afb4357bb03d05e664")},
				{42, newHashFromStr("53e3546dddc6ce9ab20779e4846a5b9196a11c050b37da9dae56e8fc9b164bb7")},
				{43, newHashFromStr("c782f3c8fc60e5c3c1e66e093a86fc1b611442b6944bdf1b03dd3b87be2a2dde")},
				{44, newHashFromStr("278a19464685620ffa5c63167a19a922b3fa9d9940058c9d2553db1be05b5fb7")},
				{45, newHashFromStr("5dfa0ac3e0be412fe02dc7cc2e0db00ed5671ad912097917e269dbf90de628d5")},
				{46, newHashFromStr("fe87a67eaaf66099a4a94cb24970c37867243d5a76c1bae53a0f73494b7df195")},
				{47, newHashFromStr("88222f57730fd89f787ac7d567c3a8977d31dcb4cab5731cd80458f6690ea476")},
				{48, newHashFromStr("7d80bbd937b256b3116549410db8b97caa4d29136ff4f7bedb5f721c8f82bb52")},
				{49, newHashFromStr("c19a70dd4ab5041742884578cbcc76b015e094aa9bb294741740bbdba4ec20f6")},
				{50, newHashFromStr("cc786fb813d02f3ba48992076b3c141980d9c1901897166df61f52dbfd37a34a")},
			},

			ChainTxData: ChainTxData{
				Time:    time.Unix(1580464050, 0),
				TxCount: 0,
				TxRate:  0,
			},

			// Consensus rule change deployments.
			//
			// The miner confirmation window is defined as:
			//   target proof of work timespan / target proof of work spacing * 4
			RuleChangeActivationThreshold: 6048, // 75% of MinerConfirmationWindow
			MinerConfirmationWindow:       8064,
			Deployments: [DefinedDeployments]ConsensusDeployment{
				DeploymentTestDummy: {
					BitNumber:  28,
					StartTime:  1199145601, // January 1, 2008 UTC
					ExpireTime: 1230767999, // December 31, 2008 UTC
				},
				DeploymentCSV: {
					BitNumber:  0,
					StartTime:  1485561600, // January 28, 2017 UTC
					ExpireTime: 1517356801, // January 31, 2018 UTC
				},
				DeploymentSegwit: {
					BitNumber:  1,
					StartTime:  1485561600, // January 28, 2017 UTC
					ExpireTime: 1517356801, // January 31, 2018 UTC
				},
			},

			MinimumChainWork: newBigFromHex("00"),
			AssumeValid:      *newHashFromStr("cf824313d239eacf4b2559738021748fb22b946ad228b6a7a5938612ff0ced1b"), // 155

			ConsistencyChecks:  false,
			RelayNonStdTxs:     false,
			MineBlocksOnDemand: false,

			// Address encoding magics
			PubKeyHashAddrID:  65, // starts with T
			ScriptHashAddrID:  70, // starts with V
			ScriptHashAddrID2: 50, // starts with M
			PrivateKeyID:      33, // starts with 2 (uncompressed) or 5/6 (compressed)

			// BIP32 hierarchical deterministic extended key magics
			HDPrivateKeyID: [4]byte{0x90, 0x85, 0x81, 0x91}, // starts with XgUC
			HDPublicKeyID:  [4]byte{0x90, 0x85, 0x97, 0xdc}, // starts with XgUS
		},
	}
}
