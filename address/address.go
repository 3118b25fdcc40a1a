// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The herbsters developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address encodes and decodes the base58check identifiers of a
// Herbsters network: addresses, WIF private keys and extended keys.
package address

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"

	"github.com/herbsters/herbstersd/chaincfg"
)

const (
	// checksumSize is the number of double sha256 bytes appended to every
	// base58check string.
	checksumSize = 4

	// hdVersionSize is the size of the version prefix of extended keys.
	hdVersionSize = 4

	// hdPayloadSize is the size of a serialized extended key without its
	// version: depth, parent fingerprint, child number, chain code and key.
	hdPayloadSize = 1 + 4 + 4 + 32 + 33
)

var (
	// ErrUnknownPrefix describes an error where the prefix of a decoded
	// string does not belong to any address kind of the network.
	ErrUnknownPrefix = errors.New("unknown address prefix for network")

	// ErrChecksum describes an error where the checksum of a decoded
	// string does not match its contents.
	ErrChecksum = errors.New("checksum mismatch")

	// ErrInvalidLength describes an error where the payload size does not
	// fit the address kind.
	ErrInvalidLength = errors.New("invalid payload length for address kind")

	// ErrInvalidFormat describes an error where a string is not valid
	// base58.
	ErrInvalidFormat = errors.New("invalid base58 format")
)

// validPayloadLen returns whether n is an acceptable payload size for kind.
func validPayloadLen(kind chaincfg.AddressKind, n int) bool {
	switch kind {
	case chaincfg.PubKeyAddress, chaincfg.ScriptAddress,
		chaincfg.ScriptAddress2:
		return n == 20

	// A WIF key is the 32 byte scalar, optionally followed by 0x01 when
	// the matching public key is compressed.
	case chaincfg.SecretKey:
		return n == 32 || n == 33

	case chaincfg.ExtPublicKey, chaincfg.ExtSecretKey:
		return n == hdPayloadSize
	}
	return false
}

// Encode returns the base58check encoding of payload prefixed with the
// version bytes the network uses for kind.
func Encode(params *chaincfg.Params, kind chaincfg.AddressKind, payload []byte) (string, error) {
	prefix := params.Base58Prefix(kind)
	if prefix == nil {
		return "", fmt.Errorf("%w: kind %v", ErrUnknownPrefix, kind)
	}
	if !validPayloadLen(kind, len(payload)) {
		return "", fmt.Errorf("%w: %v payload of %d bytes",
			ErrInvalidLength, kind, len(payload))
	}

	if len(prefix) == 1 {
		return base58.CheckEncode(payload, prefix[0]), nil
	}

	b := make([]byte, 0, len(prefix)+len(payload)+checksumSize)
	b = append(b, prefix...)
	b = append(b, payload...)
	b = append(b, chainhash.DoubleHashB(b)[:checksumSize]...)
	return base58.Encode(b), nil
}

// Decode parses a base58check string produced by Encode for the same
// network and returns its kind and payload.
func Decode(params *chaincfg.Params, s string) (chaincfg.AddressKind, []byte, error) {
	raw := base58.Decode(s)
	if len(raw) == 0 && len(s) != 0 {
		return 0, nil, ErrInvalidFormat
	}
	if len(raw) < 1+checksumSize {
		return 0, nil, ErrInvalidFormat
	}

	body, sum := raw[:len(raw)-checksumSize], raw[len(raw)-checksumSize:]
	if !bytes.Equal(chainhash.DoubleHashB(body)[:checksumSize], sum) {
		return 0, nil, ErrChecksum
	}

	// Extended keys are recognized by their full four byte version and
	// fixed length so a single byte prefix can never shadow them.
	if len(body) == hdVersionSize+hdPayloadSize {
		for _, kind := range []chaincfg.AddressKind{
			chaincfg.ExtPublicKey, chaincfg.ExtSecretKey} {

			if bytes.Equal(body[:hdVersionSize], params.Base58Prefix(kind)) {
				return kind, body[hdVersionSize:], nil
			}
		}
	}

	version, payload := body[0], body[1:]
	for _, kind := range []chaincfg.AddressKind{chaincfg.PubKeyAddress,
		chaincfg.ScriptAddress, chaincfg.ScriptAddress2,
		chaincfg.SecretKey} {

		if params.Base58Prefix(kind)[0] != version {
			continue
		}
		if !validPayloadLen(kind, len(payload)) {
			return 0, nil, fmt.Errorf("%w: %v payload of %d bytes",
				ErrInvalidLength, kind, len(payload))
		}
		return kind, payload, nil
	}

	return 0, nil, fmt.Errorf("%w: version byte %d on %s", ErrUnknownPrefix,
		version, params.Name)
}

// PubKeyHashAddress returns the pay-to-pubkey-hash address of the serialized
// public key on the network.
func PubKeyHashAddress(params *chaincfg.Params, serializedPubKey []byte) (string, error) {
	return Encode(params, chaincfg.PubKeyAddress,
		btcutil.Hash160(serializedPubKey))
}

// ScriptHashAddress returns the pay-to-script-hash address of the script on
// the network using the newer script prefix when useV2 is set.
func ScriptHashAddress(params *chaincfg.Params, script []byte, useV2 bool) (string, error) {
	kind := chaincfg.ScriptAddress
	if useV2 {
		kind = chaincfg.ScriptAddress2
	}
	return Encode(params, kind, btcutil.Hash160(script))
}

// GenesisOutputAddress returns the pay-to-pubkey-hash address of the key
// paid by the genesis coinbase of the network.
func GenesisOutputAddress(params *chaincfg.Params) (string, error) {
	coinbase := params.GenesisBlock.Transactions[0]
	pushes, err := txscript.PushedData(coinbase.TxOut[0].PkScript)
	if err != nil {
		return "", err
	}
	if len(pushes) != 1 {
		return "", fmt.Errorf("genesis output script of %s does not pay "+
			"to a single public key", params.Name)
	}
	return PubKeyHashAddress(params, pushes[0])
}
