package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/wolfeidau/taskseed/cmd/taskseed/internal/commands"
)

var (
	version = "dev"
	cli     struct {
		Generate commands.GenerateCmd `cmd:"" help:"Generate a dataset and publish it to a store"`
		Validate commands.ValidateCmd `cmd:"" help:"Validate a published dataset"`
		Debug    bool                 `help:"Enable debug mode."`
		Version  kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version})
	cmd.FatalIfErrorf(err)
}
