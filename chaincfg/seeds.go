// Copyright (c) 2026 The herbsters developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"net"

	"golang.org/x/exp/slices"
)

// seedTable lists the fixed seed nodes of each network.  The entries are
// generated from the set of long running nodes seen by the DNS seeders and
// are only used when DNS seeding produces no peers.
var seedTable = map[Chain][]FixedSeed{
	MainChain: {
		{IP: net.ParseIP("149.28.46.64"), Port: 7994},
		{IP: net.ParseIP("45.77.144.188"), Port: 7994},
	},
	TestChain:    {},
	RegTestChain: {},
}

// fixedSeeds returns a copy of the fixed seed list of the given chain.
func fixedSeeds(chain Chain) []FixedSeed {
	return slices.Clone(seedTable[chain])
}
