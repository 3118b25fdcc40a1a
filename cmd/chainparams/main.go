// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The herbsters developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command chainparams selects a Herbsters network and prints the parameters
// the node would run with.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/davecgh/go-spew/spew"

	"github.com/herbsters/herbstersd/address"
	"github.com/herbsters/herbstersd/chaincfg"
)

// printSummary writes a short human readable description of params to w.
func printSummary(w io.Writer, params *chaincfg.Params) error {
	genesisAddr, err := address.GenesisOutputAddress(params)
	if err != nil {
		return err
	}
	start := params.MessageStart()
	genesis := params.GenesisBlock
	reward := btcutil.Amount(genesis.Transactions[0].TxOut[0].Value)

	fmt.Fprintf(w, "network:            %s\n", params.Name)
	fmt.Fprintf(w, "message start:      %x\n", start[:])
	fmt.Fprintf(w, "default port:       %s\n", params.DefaultPort)
	fmt.Fprintf(w, "prune after height: %d\n", params.PruneAfterHeight)
	fmt.Fprintf(w, "genesis hash:       %v\n", params.GenesisHash)
	fmt.Fprintf(w, "genesis merkle:     %v\n", genesis.Header.MerkleRoot)
	fmt.Fprintf(w, "genesis time:       %v\n", genesis.Header.Timestamp.UTC())
	fmt.Fprintf(w, "genesis reward:     %v\n", reward)
	fmt.Fprintf(w, "genesis payee:      %s\n", genesisAddr)
	fmt.Fprintf(w, "pow limit bits:     %08x\n", params.PowLimitBits)
	fmt.Fprintf(w, "target spacing:     %v\n", params.TargetTimePerBlock)
	fmt.Fprintf(w, "checkpoints:        %d (latest %d)\n",
		len(params.Checkpoints), params.LatestCheckpointHeight())
	for _, seed := range params.DNSSeeds {
		fmt.Fprintf(w, "dns seed:           %v\n", seed)
	}
	for _, seed := range params.FixedSeeds {
		fmt.Fprintf(w, "fixed seed:         %v\n", seed)
	}
	for id, d := range params.Deployments {
		fmt.Fprintf(w, "deployment %-8s bit %d, start %d, expire %d\n",
			chaincfg.DeploymentName(id)+":", d.BitNumber, d.StartTime,
			d.ExpireTime)
	}
	for _, kind := range chaincfg.AddressKinds() {
		fmt.Fprintf(w, "prefix %-20s %x\n", kind.String()+":",
			params.Base58Prefix(kind))
	}
	return nil
}

// realMain is the real main function for chainparams.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func realMain() error {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, errHelp) {
			fmt.Fprintln(os.Stdout, err)
			return nil
		}
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		return nil
	}

	if !cfg.NoLogFile {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		defer logRotator.Close()
	}
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	if err := chaincfg.SelectParams(cfg.Chain); err != nil {
		mainLog.Criticalf("Unable to select network parameters: %v", err)
		return err
	}
	for _, vb := range cfg.vbParams {
		err := chaincfg.UpdateDeploymentParams(vb.deployment,
			vb.startTime, vb.expireTime)
		if err != nil {
			mainLog.Criticalf("Unable to override deployment %s: %v",
				chaincfg.DeploymentName(vb.deployment), err)
			return err
		}
	}

	params := chaincfg.ActiveParams()
	if cfg.Dump {
		spew.Fdump(os.Stdout, params)
		return nil
	}
	return printSummary(os.Stdout, params)
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
