// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates CUE documents against an embedded schema definition and
// turns CUE errors into path-qualified messages ("config.cue: ui.verbose: ...").
package cueutil
