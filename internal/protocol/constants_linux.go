//go:build linux

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import "golang.org/x/sys/unix"

// osConstants lists every IPPROTO_* constant golang.org/x/sys/unix defines
// for Linux.
var osConstants = []constant{
	{"IPPROTO_AH", unix.IPPROTO_AH},
	{"IPPROTO_BEETPH", unix.IPPROTO_BEETPH},
	{"IPPROTO_COMP", unix.IPPROTO_COMP},
	{"IPPROTO_DCCP", unix.IPPROTO_DCCP},
	{"IPPROTO_DSTOPTS", unix.IPPROTO_DSTOPTS},
	{"IPPROTO_EGP", unix.IPPROTO_EGP},
	{"IPPROTO_ENCAP", unix.IPPROTO_ENCAP},
	{"IPPROTO_ESP", unix.IPPROTO_ESP},
	{"IPPROTO_ETHERNET", unix.IPPROTO_ETHERNET},
	{"IPPROTO_FRAGMENT", unix.IPPROTO_FRAGMENT},
	{"IPPROTO_GRE", unix.IPPROTO_GRE},
	{"IPPROTO_ICMP", unix.IPPROTO_ICMP},
	{"IPPROTO_ICMPV6", unix.IPPROTO_ICMPV6},
	{"IPPROTO_IDP", unix.IPPROTO_IDP},
	{"IPPROTO_IGMP", unix.IPPROTO_IGMP},
	{"IPPROTO_IPIP", unix.IPPROTO_IPIP},
	{"IPPROTO_IPV6", unix.IPPROTO_IPV6},
	{"IPPROTO_L2TP", unix.IPPROTO_L2TP},
	{"IPPROTO_MH", unix.IPPROTO_MH},
	{"IPPROTO_MPLS", unix.IPPROTO_MPLS},
	{"IPPROTO_MPTCP", unix.IPPROTO_MPTCP},
	{"IPPROTO_MTP", unix.IPPROTO_MTP},
	{"IPPROTO_NONE", unix.IPPROTO_NONE},
	{"IPPROTO_PIM", unix.IPPROTO_PIM},
	{"IPPROTO_PUP", unix.IPPROTO_PUP},
	{"IPPROTO_RAW", unix.IPPROTO_RAW},
	{"IPPROTO_ROUTING", unix.IPPROTO_ROUTING},
	{"IPPROTO_RSVP", unix.IPPROTO_RSVP},
	{"IPPROTO_SCTP", unix.IPPROTO_SCTP},
	{"IPPROTO_SMC", unix.IPPROTO_SMC},
	{"IPPROTO_TCP", unix.IPPROTO_TCP},
	{"IPPROTO_TP", unix.IPPROTO_TP},
	{"IPPROTO_UDP", unix.IPPROTO_UDP},
	{"IPPROTO_UDPLITE", unix.IPPROTO_UDPLITE},

	// numbers shared by two names; the later name is kept
	{"IPPROTO_IP", unix.IPPROTO_IP},
	{"IPPROTO_HOPOPTS", unix.IPPROTO_HOPOPTS},
}
