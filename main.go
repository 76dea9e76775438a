// Package main is the entry point for the vgrab application.
package main

import (
	"github.com/samber/lo"
	"github.com/vgrab-cli/vgrab/cmd"
	"github.com/vgrab-cli/vgrab/config"
	"github.com/vgrab-cli/vgrab/internal/cache"
	"github.com/vgrab-cli/vgrab/log"

	_ "github.com/vgrab-cli/vgrab/provider/ytdlp"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Prune expired catalog cache entries in the background.
	go cache.CollectGarbage()

	cmd.Execute()
}
