// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The herbsters developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/jessevdk/go-flags"

	"github.com/herbsters/herbstersd/chaincfg"
)

const (
	defaultLogLevel    = "info"
	defaultLogDirname  = "logs"
	defaultLogFilename = "chainparams.log"
)

var (
	defaultHomeDir = btcutil.AppDataDir("herbstersd", false)
	defaultLogDir  = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for chainparams.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Chain      string   `long:"chain" description:"Network to select" choice:"main" choice:"test" choice:"regtest"`
	TestNet    bool     `long:"testnet" description:"Use the test network"`
	RegTest    bool     `long:"regtest" description:"Use the regression test network"`
	DebugLevel string   `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	LogDir     string   `long:"logdir" description:"Directory to log output"`
	NoLogFile  bool     `long:"nologfile" description:"Only log to standard output"`
	Dump       bool     `long:"dump" description:"Dump the complete parameter record"`
	VBParams   []string `long:"vbparams" description:"Override a deployment voting window on regtest as deployment:start:expire (may be repeated)"`

	vbParams []vbParam
}

// vbParam is a parsed --vbparams option.
type vbParam struct {
	deployment int
	startTime  uint64
	expireTime uint64
}

// parseVBParam parses a deployment:start:expire triple.  The deployment is
// given by its short name.
func parseVBParam(s string) (vbParam, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 3 {
		return vbParam{}, fmt.Errorf("version bits parameters %q are "+
			"not in deployment:start:expire form", s)
	}

	deployment, ok := chaincfg.DeploymentByName(fields[0])
	if !ok {
		return vbParam{}, fmt.Errorf("unknown deployment %q", fields[0])
	}
	startTime, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return vbParam{}, fmt.Errorf("invalid start time %q: %w",
			fields[1], err)
	}
	expireTime, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return vbParam{}, fmt.Errorf("invalid expire time %q: %w",
			fields[2], err)
	}
	if expireTime < startTime {
		return vbParam{}, fmt.Errorf("deployment %s expires before it "+
			"starts", fields[0])
	}

	return vbParam{
		deployment: deployment,
		startTime:  startTime,
		expireTime: expireTime,
	}, nil
}

// errHelp is returned by loadConfig when the help message was requested.
var errHelp = errors.New("help requested")

// loadConfig parses the command line arguments into a config and resolves
// the selected chain.  The chain defaults to main.  The --testnet and
// --regtest shortcuts may not contradict an explicit --chain.
func loadConfig(args []string) (*config, error) {
	cfg := config{
		DebugLevel: defaultLogLevel,
		LogDir:     defaultLogDir,
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return nil, fmt.Errorf("%w\n%s", errHelp, ferr.Message)
		}
		return nil, err
	}
	if len(remaining) != 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", remaining)
	}

	explicitChain := cfg.Chain != ""
	if !explicitChain {
		cfg.Chain = chaincfg.MainChain.String()
	}

	var shortcut chaincfg.Chain
	var shortcutFlag string
	switch {
	case cfg.TestNet && cfg.RegTest:
		return nil, errors.New("the testnet and regtest options can " +
			"not be used together")
	case cfg.TestNet:
		shortcut, shortcutFlag = chaincfg.TestChain, "testnet"
	case cfg.RegTest:
		shortcut, shortcutFlag = chaincfg.RegTestChain, "regtest"
	}
	if shortcut != "" {
		if explicitChain && cfg.Chain != shortcut.String() {
			return nil, fmt.Errorf("--chain=%s contradicts --%s",
				cfg.Chain, shortcutFlag)
		}
		cfg.Chain = shortcut.String()
	}

	for _, s := range cfg.VBParams {
		vb, err := parseVBParam(s)
		if err != nil {
			return nil, err
		}
		cfg.vbParams = append(cfg.vbParams, vb)
	}
	if len(cfg.vbParams) != 0 && cfg.Chain != chaincfg.RegTestChain.String() {
		return nil, errors.New("version bits parameters may only be " +
			"overridden on regtest")
	}

	cfg.LogDir = filepath.Join(cfg.LogDir, cfg.Chain)
	return &cfg, nil
}
