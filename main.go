// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/langbench/langbench/cmd/langbench"

func main() {
	cmd.Execute()
}
