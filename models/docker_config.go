// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NeverReset is the reset interval, in seconds, that disables periodic
// container resets. It equals one negative hour.
const NeverReset = -3600

// DockerConfig holds the lifecycle limits of the honeypot containers.
type DockerConfig struct {
	// VirtualMachineStorageLimit is the per-container storage limit in gigabytes.
	VirtualMachineStorageLimit float64 `json:"virtual_machine_storage_limit" yaml:"virtual_machine_storage_limit"`

	// VirtualMachineContainerResetFactoryTimeSeconds is the interval after
	// which containers are reset to their factory image. [NeverReset]
	// disables resets.
	VirtualMachineContainerResetFactoryTimeSeconds int `json:"virtual_machine_container_reset_factory_time_seconds" yaml:"virtual_machine_container_reset_factory_time_seconds"`
}

// ResetDisabled reports whether the reset interval is the [NeverReset]
// sentinel. Other non-positive values are not treated as disabled.
func (c DockerConfig) ResetDisabled() bool {
	return c.VirtualMachineContainerResetFactoryTimeSeconds == NeverReset
}
