// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app bootstraps the process-wide values of ohpconfig and wires the
// configuration service on top of them.
//
// All Msg* constants are human-readable message strings written into log
// entries. Keeping them in one place ensures consistent wording.
package app

const (
	// MsgResolvingHostAddress is logged before the blocking hostname lookup.
	MsgResolvingHostAddress = "resolving real machine address"

	// MsgHostAddressResolved is logged once the host address is known.
	MsgHostAddressResolved = "real machine address resolved"

	// MsgHostAddressFailed is logged when the host address cannot be
	// determined. No configuration can be produced without it.
	MsgHostAddressFailed = "error resolving real machine address"

	// MsgProtocolTableBuilt is logged once the protocol table is derived.
	MsgProtocolTableBuilt = "protocol table built"

	// MsgProtocolTableEmpty is logged when the platform exposes no protocol
	// constants.
	MsgProtocolTableEmpty = "platform exposes no protocol constants"
)
