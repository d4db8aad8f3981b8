package main

import (
	"os"

	"github.com/spiderkit/spider/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
