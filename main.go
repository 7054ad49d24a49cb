// Package main is the entry point for the boorusan application.
package main

import (
	"github.com/boorusan-cli/boorusan/cmd"
	"github.com/boorusan-cli/boorusan/config"
	"github.com/boorusan-cli/boorusan/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
