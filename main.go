package main

import (
	"os"

	"github.com/rie622skt/InfiniteDrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
