// Package main is the entry point for curtain.
package main

import (
	"github.com/curtain-cli/curtain/cmd"
	"github.com/curtain-cli/curtain/config"
	"github.com/curtain-cli/curtain/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
