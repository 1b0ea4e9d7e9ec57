// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AllModules is the module selection that enables every module.
const AllModules = "all"

// UserConfig holds user-facing defaults of the honeypot.
type UserConfig struct {
	Language      string `json:"language" yaml:"language"`
	EventsLogFile string `json:"events_log_file" yaml:"events_log_file"`

	// DefaultSelectedModules is either [AllModules] or a comma separated
	// list of module names (e.g. "ftp/strong_password,ssh/strong_password").
	DefaultSelectedModules string `json:"default_selected_modules" yaml:"default_selected_modules"`

	// DefaultExcludedModules is a comma separated list of module names, or
	// nil when nothing is excluded.
	DefaultExcludedModules *string `json:"default_excluded_modules" yaml:"default_excluded_modules"`
}

// SelectsAllModules reports whether the selection is the [AllModules] sentinel.
func (c UserConfig) SelectsAllModules() bool {
	return strings.TrimSpace(c.DefaultSelectedModules) == AllModules
}

// SelectedModules returns the selected module names. It returns nil when
// every module is selected.
func (c UserConfig) SelectedModules() []string {
	if c.SelectsAllModules() {
		return nil
	}

	return splitModules(c.DefaultSelectedModules)
}

// ExcludedModules returns the excluded module names, or nil when none are.
func (c UserConfig) ExcludedModules() []string {
	if c.DefaultExcludedModules == nil {
		return nil
	}

	return splitModules(*c.DefaultExcludedModules)
}

func splitModules(list string) []string {
	var modules []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			modules = append(modules, name)
		}
	}

	return modules
}
