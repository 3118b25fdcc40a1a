// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The herbsters developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chaincfg defines the parameters of the Herbsters networks.

Every network (main, test and regtest) is described by a literal table from
which CreateParams builds a Params record.  The genesis block is assembled
rather than stored, and its hash and merkle root must match the hard-coded
values of the table; any mismatch is reported as a RuleError and the record
is discarded.

A process selects its network once at startup, before any other subsystem
starts:

	if err := chaincfg.SelectParams(cfg.Chain); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	params := chaincfg.ActiveParams()

The returned record is shared and must not be modified.  Subsystems should
be handed the *Params at construction instead of calling ActiveParams
themselves.  UpdateDeploymentParams is the only way to change the active
record and exists for regression test harnesses.
*/
package chaincfg
