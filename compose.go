package main

import (
	"io"
	"log"
	"os"

	lib "github.com/dotstack/dots-wallpaper/lib"
	"github.com/urfave/cli/v2"
)

func composeAction(c *cli.Context) error {
	args := c.Args()
	if args.Len() < 3 {
		_ = cli.ShowAppHelp(c)
		return cli.Exit(
			"Error: expected <output_path> <width>x<height> <angle_degrees> [image_path ...]", 1)
	}

	conf, err := lib.LoadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err = setupLogging(conf); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	cs, err := lib.ParseCanvasSpec(args.Get(1), args.Get(2))
	if err != nil {
		return cli.Exit("Error: "+err.Error(), 1)
	}

	opts := lib.Options{
		OutputPath: args.Get(0),
		Canvas:     cs,
		Paths:      args.Slice()[3:],
		Config:     conf,
	}
	if err = lib.Compose(opts); err != nil {
		return cli.Exit("Error: "+err.Error(), 1)
	}
	return nil
}

// Progress logging stays off stderr so the only output there during a
// normally-succeeding run is the per-input warnings.
func setupLogging(conf *lib.Config) error {
	if conf.LogFile == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(conf.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	return nil
}
