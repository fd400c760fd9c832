package main

import (
	"fmt"
	"io"
	"os"

	"github.com/TomTonic/p0gen"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	app := newApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Error("generation failed")
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	app := cli.NewApp()

	app.Name = "p0gen"
	app.Usage = "print the round constants and rotation schedules of the p0 permutation"
	app.Writer = out

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "log,l",
			Usage: "log level: debug,info,warning,error",
			Value: "info",
		},
	}

	app.Before = func(c *cli.Context) error {
		lv, err := logrus.ParseLevel(c.String("log"))
		if err != nil {
			return err
		}
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(lv)
		return nil
	}

	constantsSeed := cli.StringFlag{
		Name:  "seed, s",
		Usage: "text absorbed by the sponge, must be 128 bytes",
		Value: p0gen.DefaultConstantsSeed,
	}
	scheduleSeed := cli.StringFlag{
		Name:  "seed, s",
		Usage: "seed string of the rotation generator",
		Value: p0gen.DefaultScheduleSeed,
	}

	app.Commands = []cli.Command{
		{
			Name:  "constants",
			Usage: "derive the 16 round constants",
			Flags: []cli.Flag{constantsSeed},
			Action: func(c *cli.Context) error {
				return runConstants(out, c.String("seed"))
			},
		},
		{
			Name:  "rotations",
			Usage: "generate the four rotation schedules",
			Flags: []cli.Flag{scheduleSeed},
			Action: func(c *cli.Context) error {
				return runRotations(out, c.String("seed"))
			},
		},
	}

	app.Action = func(c *cli.Context) error {
		if err := runConstants(out, p0gen.DefaultConstantsSeed); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
		return runRotations(out, p0gen.DefaultScheduleSeed)
	}
	return app
}

func runConstants(out io.Writer, seed string) error {
	logrus.WithField("seed_bytes", len(seed)).Debug("deriving constants")
	c, err := p0gen.DeriveConstants(seed)
	if err != nil {
		return err
	}
	return p0gen.WriteConstants(out, c)
}

func runRotations(out io.Writer, seed string) error {
	logrus.WithField("seed", seed).Debug("generating rotation schedules")
	schedules := p0gen.GenerateSchedules(seed)
	for i, s := range schedules {
		if p0gen.HasDuplicates(s) {
			logrus.WithField("schedule", i+1).Warn("schedule contains duplicate rotations")
		}
	}
	return p0gen.WriteSchedules(out, schedules[:])
}
