// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Configuration bundles the four configuration domains into one document.
type Configuration struct {
	API     APIConfig     `json:"api" yaml:"api"`
	Network NetworkConfig `json:"network" yaml:"network"`
	Docker  DockerConfig  `json:"docker" yaml:"docker"`
	User    UserConfig    `json:"user" yaml:"user"`
}
