package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "dots-wallpaper"
	app.Usage = "Compose one wallpaper out of angled strips of source images"
	app.ArgsUsage = "<output_path> <width>x<height> <angle_degrees> [image_path ...]"
	app.HideHelpCommand = true
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Optional TOML config `FILE`",
		},
	}
	app.Action = composeAction

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
