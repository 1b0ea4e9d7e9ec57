// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// NetworkConfig holds the settings consumed by the packet-capture engine.
type NetworkConfig struct {
	// StoreNetworkCapturedFiles keeps the pcap files after processing.
	StoreNetworkCapturedFiles bool `json:"store_network_captured_files" yaml:"store_network_captured_files"`

	// RealMachineIPAddress is the resolved address of the host machine.
	RealMachineIPAddress string `json:"real_machine_ip_address" yaml:"real_machine_ip_address"`

	// IgnoreRealMachineIPAddress drops traffic of the host machine. Set it to
	// false to simulate attacks from the local network.
	IgnoreRealMachineIPAddress bool `json:"ignore_real_machine_ip_address" yaml:"ignore_real_machine_ip_address"`

	// IgnoreVirtualMachineIPAddresses drops traffic of the honeypot
	// containers themselves.
	IgnoreVirtualMachineIPAddresses bool `json:"ignore_virtual_machine_ip_addresses" yaml:"ignore_virtual_machine_ip_addresses"`

	// RealMachineIdentifierName is a free-form label for the host machine,
	// e.g. its address or a server name.
	RealMachineIdentifierName string `json:"real_machine_identifier_name" yaml:"real_machine_identifier_name"`

	// IgnoreRealMachineIPAddresses is the set of addresses excluded from
	// capture. Order carries no meaning.
	IgnoreRealMachineIPAddresses []string `json:"ignore_real_machine_ip_addresses" yaml:"ignore_real_machine_ip_addresses"`

	// IgnoreRealMachinePorts lists ports excluded from capture, e.g. [22, 80, 5000].
	IgnoreRealMachinePorts []int `json:"ignore_real_machine_ports" yaml:"ignore_real_machine_ports"`

	// SplitPcapFileTimeout is the pcap file rotation interval in seconds.
	SplitPcapFileTimeout int `json:"split_pcap_file_timeout" yaml:"split_pcap_file_timeout"`
}

// IsIgnoredAddress reports whether ip is in the capture exclusion set.
func (c NetworkConfig) IsIgnoredAddress(ip string) bool {
	return slices.Contains(c.IgnoreRealMachineIPAddresses, ip)
}

// IsIgnoredPort reports whether port is excluded from capture.
func (c NetworkConfig) IsIgnoredPort(port int) bool {
	return slices.Contains(c.IgnoreRealMachinePorts, port)
}
