// Copyright (c) 2026 The herbsters developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/exp/slices"
)

// maxDeploymentBit is the number of version bits usable by BIP0009
// deployments.  The top three bits of the version are reserved.
const maxDeploymentBit = 29

// netConfig is the literal table of a network.  Params holds every field
// except the genesis block and its hash, which are derived from Genesis and
// checked against the expected values.
type netConfig struct {
	Params            Params
	Genesis           GenesisParams
	GenesisHash       chainhash.Hash
	GenesisMerkleRoot chainhash.Hash
}

// netConfigs maps each supported chain to the function building its table.
var netConfigs = map[Chain]func() *netConfig{
	MainChain:    mainNetConfig,
	TestChain:    testNetConfig,
	RegTestChain: regTestNetConfig,
}

// CreateParams builds and validates the parameters of the named chain.  It
// never returns a partially populated record: any error leaves the result
// nil.  All errors are RuleErrors describing a fatal configuration defect.
func CreateParams(chain Chain) (*Params, error) {
	build, ok := netConfigs[chain]
	if !ok {
		str := fmt.Sprintf("unknown chain %q", chain)
		return nil, ruleError(ErrUnknownChain, str)
	}
	return newParams(build())
}

// newParams assembles the genesis block described by cfg, checks it against
// the expected hashes and validates the remaining tables.
func newParams(cfg *netConfig) (*Params, error) {
	genesis, err := CreateGenesisBlock(&cfg.Genesis)
	if err != nil {
		str := fmt.Sprintf("%s: unable to build genesis block: %v",
			cfg.Params.Name, err)
		return nil, ruleError(ErrGenesisBuildFailed, str)
	}

	genesisHash := genesis.BlockHash()
	if genesisHash != cfg.GenesisHash {
		str := fmt.Sprintf("%s: genesis block hash %v does not match "+
			"expected %v", cfg.Params.Name, genesisHash, cfg.GenesisHash)
		return nil, ruleError(ErrGenesisHashMismatch, str)
	}
	if genesis.Header.MerkleRoot != cfg.GenesisMerkleRoot {
		str := fmt.Sprintf("%s: genesis merkle root %v does not match "+
			"expected %v", cfg.Params.Name, genesis.Header.MerkleRoot,
			cfg.GenesisMerkleRoot)
		return nil, ruleError(ErrMerkleRootMismatch, str)
	}

	params := cfg.Params
	params.GenesisBlock = genesis
	params.GenesisHash = &genesisHash

	if err := checkGenesisProofOfWork(&params); err != nil {
		return nil, err
	}
	if err := checkCheckpoints(&params); err != nil {
		return nil, err
	}
	if err := checkDeployments(&params); err != nil {
		return nil, err
	}
	if err := checkAddressPrefixes(&params); err != nil {
		return nil, err
	}

	return &params, nil
}

// checkGenesisProofOfWork ensures the genesis difficulty bits are within the
// proof of work limit and that the genesis header actually meets them.
func checkGenesisProofOfWork(p *Params) error {
	header := &p.GenesisBlock.Header
	target := blockchain.CompactToBig(header.Bits)
	if target.Sign() <= 0 || target.Cmp(p.PowLimit) > 0 {
		str := fmt.Sprintf("%s: genesis target %064x is not within the "+
			"proof of work limit %064x", p.Name, target, p.PowLimit)
		return ruleError(ErrGenesisBitsInvalid, str)
	}

	powHash, err := PowHash(header)
	if err != nil {
		str := fmt.Sprintf("%s: unable to hash genesis header: %v",
			p.Name, err)
		return ruleError(ErrGenesisPowInvalid, str)
	}
	if blockchain.HashToBig(&powHash).Cmp(target) > 0 {
		str := fmt.Sprintf("%s: genesis proof of work hash %v is higher "+
			"than target %064x", p.Name, powHash, target)
		return ruleError(ErrGenesisPowInvalid, str)
	}
	return nil
}

// checkCheckpoints ensures the checkpoints are strictly increasing in height
// and that a checkpoint at height zero names the genesis block.
func checkCheckpoints(p *Params) error {
	strictlyIncreasing := slices.IsSortedFunc(p.Checkpoints,
		func(a, b Checkpoint) bool {
			return a.Height <= b.Height
		})
	if !strictlyIncreasing {
		str := fmt.Sprintf("%s: checkpoints are not in strictly "+
			"increasing height order", p.Name)
		return ruleError(ErrCheckpointOrder, str)
	}

	for _, checkpoint := range p.Checkpoints {
		if checkpoint.Hash == nil || checkpoint.Height < 0 {
			str := fmt.Sprintf("%s: malformed checkpoint at height %d",
				p.Name, checkpoint.Height)
			return ruleError(ErrCheckpointOrder, str)
		}
		if checkpoint.Height == 0 && *checkpoint.Hash != *p.GenesisHash {
			str := fmt.Sprintf("%s: checkpoint at height 0 is %v "+
				"instead of the genesis hash %v", p.Name,
				checkpoint.Hash, p.GenesisHash)
			return ruleError(ErrCheckpointGenesis, str)
		}
	}
	return nil
}

// checkDeployments ensures every deployment uses a distinct version bit that
// is available to BIP0009.
func checkDeployments(p *Params) error {
	var used uint32
	for id, deployment := range p.Deployments {
		bit := deployment.BitNumber
		if bit >= maxDeploymentBit {
			str := fmt.Sprintf("%s: deployment %s uses reserved "+
				"version bit %d", p.Name, DeploymentName(id), bit)
			return ruleError(ErrDeploymentBit, str)
		}
		if used&(1<<bit) != 0 {
			str := fmt.Sprintf("%s: deployment %s reuses version bit "+
				"%d", p.Name, DeploymentName(id), bit)
			return ruleError(ErrDeploymentBit, str)
		}
		used |= 1 << bit
	}
	return nil
}

// checkAddressPrefixes ensures the single byte address kinds of a network
// can be told apart by their prefix.
func checkAddressPrefixes(p *Params) error {
	seen := make(map[byte]AddressKind)
	for _, kind := range []AddressKind{PubKeyAddress, ScriptAddress,
		ScriptAddress2, SecretKey} {

		id := p.Base58Prefix(kind)[0]
		if other, ok := seen[id]; ok {
			str := fmt.Sprintf("%s: %v and %v addresses share prefix "+
				"byte %d", p.Name, other, kind, id)
			return ruleError(ErrPrefixCollision, str)
		}
		seen[id] = kind
	}
	if p.HDPublicKeyID == p.HDPrivateKeyID {
		str := fmt.Sprintf("%s: extended public and private keys share "+
			"version bytes %x", p.Name, p.HDPublicKeyID)
		return ruleError(ErrPrefixCollision, str)
	}
	return nil
}
