// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The herbsters developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"golang.org/x/crypto/scrypt"
)

// genesisCoinbaseBits is the first push of every genesis coinbase signature
// script.  It is the compact difficulty of the very first bitcoin block and
// has no meaning beyond making the script unique.
const genesisCoinbaseBits = 486604799

// GenesisParams holds everything needed to build a genesis block.
type GenesisParams struct {
	// Timestamp is the text embedded in the coinbase signature script.
	Timestamp string

	// OutputScript is the public key script of the single coinbase
	// output.
	OutputScript []byte

	// Time, Nonce, Bits and Version are copied into the block header.
	Time    time.Time
	Nonce   uint32
	Bits    uint32
	Version int32

	// Reward is the value of the coinbase output.  It can never be spent
	// since the genesis coinbase is not part of the utxo set.
	Reward int64
}

// genesisSignatureScript returns the coinbase signature script
//
//	OP_DATA_4 0xffff001d OP_DATA_1 0x04 OP_DATA_n <timestamp>
//
// The middle push is a one byte data push rather than OP_4, so it is written
// as raw opcodes since the builder would canonicalize it.
func genesisSignatureScript(timestamp string) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddInt64(genesisCoinbaseBits).
		AddOps([]byte{txscript.OP_DATA_1, 0x04}).
		AddData([]byte(timestamp)).
		Script()
}

// PayToPubKeyScript returns a pay-to-pubkey script for the passed serialized
// public key.  The key must parse as a valid secp256k1 point.
func PayToPubKeyScript(serializedPubKey []byte) ([]byte, error) {
	if _, err := btcec.ParsePubKey(serializedPubKey); err != nil {
		return nil, err
	}
	return txscript.NewScriptBuilder().
		AddData(serializedPubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}

// mustPayToPubKeyScript is PayToPubKeyScript for hard-coded keys.
func mustPayToPubKeyScript(hexPubKey string) []byte {
	script, err := PayToPubKeyScript(hexDecode(hexPubKey))
	if err != nil {
		panic(err)
	}
	return script
}

// CreateGenesisBlock builds a block with a single coinbase transaction that
// carries the timestamp text as its input data and pays the reward to the
// output script.  The previous block hash is the zero hash and the merkle
// root commits to the coinbase.
//
// The coinbase output of a genesis block cannot be spent since it did not
// originally exist in the database.
func CreateGenesisBlock(gp *GenesisParams) (*wire.MsgBlock, error) {
	sigScript, err := genesisSignatureScript(gp.Timestamp)
	if err != nil {
		return nil, err
	}

	coinbase := wire.NewMsgTx(1)
	prevOut := wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex)
	coinbase.AddTxIn(wire.NewTxIn(prevOut, sigScript, nil))
	coinbase.AddTxOut(wire.NewTxOut(gp.Reward, gp.OutputScript))
	coinbase.LockTime = 0

	txns := []*btcutil.Tx{btcutil.NewTx(coinbase)}
	merkleRoot := blockchain.CalcMerkleRoot(txns, false)

	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    gp.Version,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: merkleRoot,
			Timestamp:  gp.Time,
			Bits:       gp.Bits,
			Nonce:      gp.Nonce,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}
	return block, nil
}

// PowHash returns the scrypt proof of work hash of a block header.  It is
// distinct from the block hash, which is the double sha256 of the same
// bytes.
func PowHash(header *wire.BlockHeader) (chainhash.Hash, error) {
	var buf bytes.Buffer
	buf.Grow(wire.MaxBlockHeaderPayload)
	if err := header.Serialize(&buf); err != nil {
		return chainhash.Hash{}, err
	}

	b := buf.Bytes()
	key, err := scrypt.Key(b, b, 1024, 1, 1, chainhash.HashSize)
	if err != nil {
		return chainhash.Hash{}, err
	}

	var hash chainhash.Hash
	copy(hash[:], key)
	return hash, nil
}
