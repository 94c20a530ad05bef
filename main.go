// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.
package main

import (
	"github.com/speedtest-community/speedtest-exporter/cmd"
)

func main() {
	cmd.Execute()
}
