// SPDX-License-Identifier: MPL-2.0

// Package config handles langbench configuration using Viper with CUE as the file format.
//
// Configuration is read from the file named by --config when given; otherwise from
// <user config dir>/langbench/config.cue, then ./config.cue. A missing file is not an
// error: defaults apply. Files are validated against the embedded #Config schema
// (config_schema.cue) before their values are merged over the defaults.
//
// Only presentation settings live here. Workload sizes are fixed and not configurable.
package config
