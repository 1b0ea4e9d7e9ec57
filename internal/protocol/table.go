// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"slices"
	"strings"

	"github.com/google/gopacket/layers"
)

// Prefix is the name prefix of the operating system's protocol constants.
// It includes the separator, so a name such as "IPPROTOX" is not a protocol
// constant and stripping never leaves a leading underscore.
const Prefix = "IPPROTO_"

// constant is a single name/value pair of the operating system's network
// constant namespace.
type constant struct {
	name  string
	value int
}

// Table maps an IP protocol number to its short name.
type Table map[int]string

// BuildTable builds a fresh [Table] from the protocol constants of the
// current platform.
func BuildTable() Table {
	return buildFrom(osConstants)
}

func buildFrom(constants []constant) Table {
	table := make(Table, len(constants))
	for _, c := range constants {
		if !strings.HasPrefix(c.name, Prefix) {
			continue
		}
		table[c.value] = strings.TrimPrefix(c.name, Prefix)
	}

	return table
}

// Lookup returns the short name of protocol number n.
func (t Table) Lookup(n int) (string, bool) {
	name, ok := t[n]
	return name, ok
}

// Name returns the short name of a protocol decoded by gopacket.
func (t Table) Name(p layers.IPProtocol) (string, bool) {
	return t.Lookup(int(p))
}

// Numbers returns the protocol numbers of the table in ascending order.
func (t Table) Numbers() []int {
	numbers := make([]int, 0, len(t))
	for n := range t {
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)

	return numbers
}
