//go:build darwin

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import "golang.org/x/sys/unix"

// osConstants lists every IPPROTO_* constant golang.org/x/sys/unix defines
// for Darwin. IPPROTO_MAX and IPPROTO_DONE are kernel sentinels but belong
// to the namespace, so they are listed as well.
var osConstants = []constant{
	{"IPPROTO_3PC", unix.IPPROTO_3PC},
	{"IPPROTO_ADFS", unix.IPPROTO_ADFS},
	{"IPPROTO_AH", unix.IPPROTO_AH},
	{"IPPROTO_AHIP", unix.IPPROTO_AHIP},
	{"IPPROTO_APES", unix.IPPROTO_APES},
	{"IPPROTO_ARGUS", unix.IPPROTO_ARGUS},
	{"IPPROTO_AX25", unix.IPPROTO_AX25},
	{"IPPROTO_BHA", unix.IPPROTO_BHA},
	{"IPPROTO_BLT", unix.IPPROTO_BLT},
	{"IPPROTO_BRSATMON", unix.IPPROTO_BRSATMON},
	{"IPPROTO_CFTP", unix.IPPROTO_CFTP},
	{"IPPROTO_CHAOS", unix.IPPROTO_CHAOS},
	{"IPPROTO_CMTP", unix.IPPROTO_CMTP},
	{"IPPROTO_CPHB", unix.IPPROTO_CPHB},
	{"IPPROTO_CPNX", unix.IPPROTO_CPNX},
	{"IPPROTO_DDP", unix.IPPROTO_DDP},
	{"IPPROTO_DGP", unix.IPPROTO_DGP},
	{"IPPROTO_DIVERT", unix.IPPROTO_DIVERT},
	{"IPPROTO_DONE", unix.IPPROTO_DONE},
	{"IPPROTO_DSTOPTS", unix.IPPROTO_DSTOPTS},
	{"IPPROTO_EGP", unix.IPPROTO_EGP},
	{"IPPROTO_EMCON", unix.IPPROTO_EMCON},
	{"IPPROTO_ENCAP", unix.IPPROTO_ENCAP},
	{"IPPROTO_EON", unix.IPPROTO_EON},
	{"IPPROTO_ESP", unix.IPPROTO_ESP},
	{"IPPROTO_ETHERIP", unix.IPPROTO_ETHERIP},
	{"IPPROTO_FRAGMENT", unix.IPPROTO_FRAGMENT},
	{"IPPROTO_GGP", unix.IPPROTO_GGP},
	{"IPPROTO_GMTP", unix.IPPROTO_GMTP},
	{"IPPROTO_GRE", unix.IPPROTO_GRE},
	{"IPPROTO_HELLO", unix.IPPROTO_HELLO},
	{"IPPROTO_HMP", unix.IPPROTO_HMP},
	{"IPPROTO_ICMP", unix.IPPROTO_ICMP},
	{"IPPROTO_ICMPV6", unix.IPPROTO_ICMPV6},
	{"IPPROTO_IDP", unix.IPPROTO_IDP},
	{"IPPROTO_IDPR", unix.IPPROTO_IDPR},
	{"IPPROTO_IDRP", unix.IPPROTO_IDRP},
	{"IPPROTO_IGMP", unix.IPPROTO_IGMP},
	{"IPPROTO_IGP", unix.IPPROTO_IGP},
	{"IPPROTO_IGRP", unix.IPPROTO_IGRP},
	{"IPPROTO_IL", unix.IPPROTO_IL},
	{"IPPROTO_INP", unix.IPPROTO_INP},
	{"IPPROTO_IPCOMP", unix.IPPROTO_IPCOMP},
	{"IPPROTO_IPCV", unix.IPPROTO_IPCV},
	{"IPPROTO_IPEIP", unix.IPPROTO_IPEIP},
	{"IPPROTO_IPPC", unix.IPPROTO_IPPC},
	{"IPPROTO_IPV6", unix.IPPROTO_IPV6},
	{"IPPROTO_IRTP", unix.IPPROTO_IRTP},
	{"IPPROTO_KRYPTOLAN", unix.IPPROTO_KRYPTOLAN},
	{"IPPROTO_LARP", unix.IPPROTO_LARP},
	{"IPPROTO_LEAF1", unix.IPPROTO_LEAF1},
	{"IPPROTO_LEAF2", unix.IPPROTO_LEAF2},
	{"IPPROTO_MAX", unix.IPPROTO_MAX},
	{"IPPROTO_MEAS", unix.IPPROTO_MEAS},
	{"IPPROTO_MHRP", unix.IPPROTO_MHRP},
	{"IPPROTO_MICP", unix.IPPROTO_MICP},
	{"IPPROTO_MTP", unix.IPPROTO_MTP},
	{"IPPROTO_MUX", unix.IPPROTO_MUX},
	{"IPPROTO_ND", unix.IPPROTO_ND},
	{"IPPROTO_NHRP", unix.IPPROTO_NHRP},
	{"IPPROTO_NONE", unix.IPPROTO_NONE},
	{"IPPROTO_NSP", unix.IPPROTO_NSP},
	{"IPPROTO_NVPII", unix.IPPROTO_NVPII},
	{"IPPROTO_OSPFIGP", unix.IPPROTO_OSPFIGP},
	{"IPPROTO_PGM", unix.IPPROTO_PGM},
	{"IPPROTO_PIGP", unix.IPPROTO_PIGP},
	{"IPPROTO_PIM", unix.IPPROTO_PIM},
	{"IPPROTO_PRM", unix.IPPROTO_PRM},
	{"IPPROTO_PUP", unix.IPPROTO_PUP},
	{"IPPROTO_PVP", unix.IPPROTO_PVP},
	{"IPPROTO_RAW", unix.IPPROTO_RAW},
	{"IPPROTO_RCCMON", unix.IPPROTO_RCCMON},
	{"IPPROTO_RDP", unix.IPPROTO_RDP},
	{"IPPROTO_ROUTING", unix.IPPROTO_ROUTING},
	{"IPPROTO_RSVP", unix.IPPROTO_RSVP},
	{"IPPROTO_RVD", unix.IPPROTO_RVD},
	{"IPPROTO_SATEXPAK", unix.IPPROTO_SATEXPAK},
	{"IPPROTO_SATMON", unix.IPPROTO_SATMON},
	{"IPPROTO_SCCSP", unix.IPPROTO_SCCSP},
	{"IPPROTO_SCTP", unix.IPPROTO_SCTP},
	{"IPPROTO_SDRP", unix.IPPROTO_SDRP},
	{"IPPROTO_SEP", unix.IPPROTO_SEP},
	{"IPPROTO_SRPC", unix.IPPROTO_SRPC},
	{"IPPROTO_ST", unix.IPPROTO_ST},
	{"IPPROTO_SVMTP", unix.IPPROTO_SVMTP},
	{"IPPROTO_SWIPE", unix.IPPROTO_SWIPE},
	{"IPPROTO_TCF", unix.IPPROTO_TCF},
	{"IPPROTO_TCP", unix.IPPROTO_TCP},
	{"IPPROTO_TP", unix.IPPROTO_TP},
	{"IPPROTO_TPXX", unix.IPPROTO_TPXX},
	{"IPPROTO_TRUNK1", unix.IPPROTO_TRUNK1},
	{"IPPROTO_TRUNK2", unix.IPPROTO_TRUNK2},
	{"IPPROTO_TTP", unix.IPPROTO_TTP},
	{"IPPROTO_UDP", unix.IPPROTO_UDP},
	{"IPPROTO_VINES", unix.IPPROTO_VINES},
	{"IPPROTO_VISA", unix.IPPROTO_VISA},
	{"IPPROTO_VMTP", unix.IPPROTO_VMTP},
	{"IPPROTO_WBEXPAK", unix.IPPROTO_WBEXPAK},
	{"IPPROTO_WBMON", unix.IPPROTO_WBMON},
	{"IPPROTO_WSN", unix.IPPROTO_WSN},
	{"IPPROTO_XNET", unix.IPPROTO_XNET},
	{"IPPROTO_XTP", unix.IPPROTO_XTP},

	// numbers shared by two names; the later name is kept
	{"IPPROTO_IP", unix.IPPROTO_IP},
	{"IPPROTO_HOPOPTS", unix.IPPROTO_HOPOPTS},
	{"IPPROTO_IPV4", unix.IPPROTO_IPV4},
	{"IPPROTO_IPIP", unix.IPPROTO_IPIP},
	{"IPPROTO_MAXID", unix.IPPROTO_MAXID},
	{"IPPROTO_INLSP", unix.IPPROTO_INLSP},
}
