package main

import (
	"os"

	"wms/cmd/wmsctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
