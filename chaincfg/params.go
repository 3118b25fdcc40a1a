// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The herbsters developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"net"
	"sort"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Chain identifies one of the supported Herbsters networks by the name used
// on the command line and in configuration files.
type Chain string

const (
	// MainChain is the name of the main network.
	MainChain Chain = "main"

	// TestChain is the name of the public test network.
	TestChain Chain = "test"

	// RegTestChain is the name of the regression test network.
	RegTestChain Chain = "regtest"
)

// Chains returns the names of all supported networks in canonical order.
func Chains() []Chain {
	return []Chain{MainChain, TestChain, RegTestChain}
}

// String returns the chain name.
func (c Chain) String() string {
	return string(c)
}

// Message start magics for each network.  They are the little endian
// interpretation of the four bytes that prefix every message on the wire, so
// the first byte sent is the least significant one.
const (
	MainNet    wire.BitcoinNet = 0xd0b4b7d7
	TestNet    wire.BitcoinNet = 0xf1c8d2fd
	RegTestNet wire.BitcoinNet = 0xdab5bffa
)

// These variables are the chain proof-of-work limit parameters for each default
// network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a Herbsters block can
	// have for the main network.  It is the value 2^236 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// testNetPowLimit is the highest proof of work value a Herbsters block
	// can have for the test network.  It is the value 2^236 - 1.
	testNetPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// regressionPowLimit is the highest proof of work value a Herbsters
	// block can have for the regression test network.  It is the value
	// 2^255 - 1.
	regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering
	// by service flags (wire.ServiceFlag).
	HasFiltering bool
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// FixedSeed is a peer address embedded in the binary that is used when DNS
// seeding is unavailable or returns nothing.
type FixedSeed struct {
	IP   net.IP
	Port uint16
}

// String returns the seed in host:port form.
func (s FixedSeed) String() string {
	return net.JoinHostPort(s.IP.String(), strconv.Itoa(int(s.Port)))
}

// ChainTxData holds advisory statistics about the transaction history as of
// the most recent checkpoint.  They are only used to estimate sync progress.
type ChainTxData struct {
	// Time is the timestamp of the last known transaction count.
	Time time.Time

	// TxCount is the total number of transactions between the genesis
	// block and Time.
	TxCount uint64

	// TxRate is the estimated number of transactions per second after
	// Time.
	TxRate float64
}

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in.  This is part of BIP0009.
type ConsensusDeployment struct {
	// BitNumber defines the specific bit number within the block version
	// this particular soft-fork deployment refers to.
	BitNumber uint8

	// StartTime is the median block time after which voting on the
	// deployment starts.
	StartTime uint64

	// ExpireTime is the median block time after which the attempted
	// deployment expires.
	ExpireTime uint64
}

// Constants that define the deployment offset in the deployments field of the
// parameters for each deployment.  This is useful to be able to get the details
// of a specific deployment by name.
const (
	// DeploymentTestDummy defines the rule change deployment ID for testing
	// purposes.
	DeploymentTestDummy = iota

	// DeploymentCSV defines the rule change deployment ID for the CSV
	// soft-fork package. The CSV package includes the deployment of BIPS
	// 68, 112, and 113.
	DeploymentCSV

	// DeploymentSegwit defines the rule change deployment ID for the
	// Segregated Witness (segwit) soft-fork package. The segwit package
	// includes the deployment of BIPS 141, 143 and 147.
	DeploymentSegwit

	// NOTE: DefinedDeployments must always come last since it is used to
	// determine how many defined deployments there currently are.

	// DefinedDeployments is the number of currently defined deployments.
	DefinedDeployments
)

// deploymentNames maps deployment IDs to the names accepted by the
// --vbparams option of the node.
var deploymentNames = [DefinedDeployments]string{
	DeploymentTestDummy: "testdummy",
	DeploymentCSV:       "csv",
	DeploymentSegwit:    "segwit",
}

// DeploymentName returns the short name of the deployment with the given ID.
func DeploymentName(id int) string {
	if id < 0 || id >= DefinedDeployments {
		return fmt.Sprintf("unknown(%d)", id)
	}
	return deploymentNames[id]
}

// DeploymentByName returns the deployment ID for the given short name.
func DeploymentByName(name string) (int, bool) {
	for id, n := range deploymentNames {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// AddressKind identifies a kind of base58 encoded identifier.
type AddressKind int

const (
	// PubKeyAddress is a pay-to-pubkey-hash address.
	PubKeyAddress AddressKind = iota

	// ScriptAddress is a pay-to-script-hash address.
	ScriptAddress

	// ScriptAddress2 is the newer pay-to-script-hash address prefix that
	// replaced the one shared with the parent chain.
	ScriptAddress2

	// SecretKey is a WIF encoded private key.
	SecretKey

	// ExtPublicKey is a BIP32 extended public key.
	ExtPublicKey

	// ExtSecretKey is a BIP32 extended private key.
	ExtSecretKey

	numAddressKinds
)

var addressKindStrings = [numAddressKinds]string{
	PubKeyAddress:  "pubkey",
	ScriptAddress:  "script",
	ScriptAddress2: "script-v2",
	SecretKey:      "secret-key",
	ExtPublicKey:   "extended-public-key",
	ExtSecretKey:   "extended-secret-key",
}

// String returns the AddressKind in human-readable form.
func (k AddressKind) String() string {
	if k < 0 || k >= numAddressKinds {
		return fmt.Sprintf("Unknown AddressKind (%d)", int(k))
	}
	return addressKindStrings[k]
}

// AddressKinds returns every address kind in prefix table order.
func AddressKinds() []AddressKind {
	kinds := make([]AddressKind, 0, numAddressKinds)
	for k := PubKeyAddress; k < numAddressKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Params defines a Herbsters network by its parameters.  These parameters may
// be used by applications to differentiate networks as well as addresses and
// keys for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name Chain

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// PruneAfterHeight is the height below which blocks are never pruned.
	PruneAfterHeight uint64

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are the embedded peer addresses used when DNS seeding
	// fails.
	FixedSeeds []FixedSeed

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// These fields define the block heights at which the specified softfork
	// BIP became active.  BIP0034Hash is the hash of the block at
	// BIP0034Height.
	BIP0034Height int32
	BIP0034Hash   chainhash.Hash
	BIP0065Height int32
	BIP0066Height int32

	// SubsidyReductionInterval is the interval of blocks before the subsidy
	// is reduced.
	SubsidyReductionInterval int32

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// ReduceMinDifficulty defines whether the network should allow blocks
	// at the minimum difficulty after a long enough period of time has
	// passed without finding a block.  This is really only useful for test
	// networks and should not be set on a main network.
	ReduceMinDifficulty bool

	// NoRetargeting disables difficulty retargeting entirely.
	NoRetargeting bool

	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// ChainTxData holds transaction statistics as of the latest
	// checkpoint.
	ChainTxData ChainTxData

	// These fields are related to voting on consensus rule changes as
	// defined by BIP0009.
	//
	// RuleChangeActivationThreshold is the number of blocks in a threshold
	// state retarget window for which a positive vote for a rule change
	// must be cast in order to lock in a rule change. It should typically
	// be 75% of the window.
	//
	// MinerConfirmationWindow is the number of blocks in each threshold
	// state retarget window.
	//
	// Deployments define the specific consensus rule changes to be voted
	// on.
	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32
	Deployments                   [DefinedDeployments]ConsensusDeployment

	// MinimumChainWork is the amount of cumulative work the best chain must
	// have before the node considers itself synced.
	MinimumChainWork *big.Int

	// AssumeValid is a block whose ancestors are assumed to carry valid
	// signatures.  The zero hash disables the optimization.
	AssumeValid chainhash.Hash

	// ConsistencyChecks enables expensive internal consistency checks.
	ConsistencyChecks bool

	// Mempool parameters
	RelayNonStdTxs bool

	// MineBlocksOnDemand allows blocks to be generated through RPC without
	// any proof of work search.
	MineBlocksOnDemand bool

	// Address encoding magics
	PubKeyHashAddrID  byte // First byte of a P2PKH address
	ScriptHashAddrID  byte // First byte of a P2SH address
	ScriptHashAddrID2 byte // First byte of a newer style P2SH address
	PrivateKeyID      byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte
}

// MessageStart returns the four bytes that prefix every peer-to-peer message
// of the network in the order they appear on the wire.
func (p *Params) MessageStart() [4]byte {
	var start [4]byte
	binary.LittleEndian.PutUint32(start[:], uint32(p.Net))
	return start
}

// Base58Prefix returns the prefix bytes used when encoding an identifier of
// the given kind.  It returns nil for an unknown kind.
func (p *Params) Base58Prefix(kind AddressKind) []byte {
	switch kind {
	case PubKeyAddress:
		return []byte{p.PubKeyHashAddrID}
	case ScriptAddress:
		return []byte{p.ScriptHashAddrID}
	case ScriptAddress2:
		return []byte{p.ScriptHashAddrID2}
	case SecretKey:
		return []byte{p.PrivateKeyID}
	case ExtPublicKey:
		return p.HDPublicKeyID[:]
	case ExtSecretKey:
		return p.HDPrivateKeyID[:]
	}
	return nil
}

// LatestCheckpoint returns the most recent checkpoint, or nil when the
// network has none.
func (p *Params) LatestCheckpoint() *Checkpoint {
	if len(p.Checkpoints) == 0 {
		return nil
	}
	return &p.Checkpoints[len(p.Checkpoints)-1]
}

// LatestCheckpointHeight is the height of the latest checkpoint block in the
// parameters.
func (p *Params) LatestCheckpointHeight() int32 {
	if len(p.Checkpoints) == 0 {
		return 0
	}
	return p.Checkpoints[len(p.Checkpoints)-1].Height
}

// CheckpointAt returns the checkpoint hash at the given height, if any.
func (p *Params) CheckpointAt(height int32) (*chainhash.Hash, bool) {
	i := sort.Search(len(p.Checkpoints), func(i int) bool {
		return p.Checkpoints[i].Height >= height
	})
	if i < len(p.Checkpoints) && p.Checkpoints[i].Height == height {
		return p.Checkpoints[i].Hash, true
	}
	return nil, false
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// The only way this can panic is if there is an error in the
		// hard-coded hashes, so it will only ever potentially panic
		// while the tables are built.
		panic(err)
	}
	return hash
}

// hexDecode decodes a hard-coded hex string and panics on error for the
// same reason as newHashFromStr.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}

// newBigFromHex parses a hard-coded big-endian hex number.
func newBigFromHex(hexStr string) *big.Int {
	n, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("invalid hard-coded big integer " + hexStr)
	}
	return n
}
