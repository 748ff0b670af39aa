package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/ppmview"
	"github.com/bodgit/ppmview/terminal"
	"github.com/urfave/cli/v2"
)

const defaultDB = "ppmview.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func picturesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(home, "Pictures")
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}
	return home
}

func newViewer(c *cli.Context) (*ppmview.Viewer, error) {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	return ppmview.New(c.String("db"), logger)
}

func view(c *cli.Context) error {
	v, err := newViewer(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer v.Close()

	t, err := terminal.Open()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer t.Close()

	ctx := context.Background()

	file := c.Args().First()
	if file == "" {
		sel := <-terminal.NewPicker(t, c.String("dir")).Pick(ctx)
		if sel.Err != nil {
			return exitError(sel.Err)
		}
		file = sel.Path
	}

	if err := v.View(ctx, file, terminal.NewDisplay(t)); err != nil {
		return exitError(err)
	}

	return nil
}

func info(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	v, err := newViewer(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer v.Close()

	e, err := v.Info(c.Args().First())
	if err != nil {
		return exitError(err)
	}

	fmt.Fprintf(c.App.Writer, "%s %d %d %d %d\n", e.Format.Magic(), e.Width, e.Height, e.MaxColor, e.Scale)

	return nil
}

func scan(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	v, err := newViewer(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer v.Close()

	if err := v.Scan(c.Args().First(), c.Int("workers")); err != nil {
		return exitError(err)
	}

	return nil
}

func list(c *cli.Context) error {
	v, err := newViewer(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer v.Close()

	entries, err := v.Catalog().List()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	for _, e := range entries {
		fmt.Fprintf(c.App.Writer, "%s %s %dx%d %d %s\n", e.Format.Magic(), e.SHA1, e.Width, e.Height, e.MaxColor, e.Path)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "ppmview"
	app.Usage = "Portable bitmap and pixmap viewer"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"PPMVIEW_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to catalog database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "view",
			Usage:       "Display an image in the terminal",
			Description: "Without FILE a file picker is shown first.",
			ArgsUsage:   "[FILE]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "dir",
					EnvVars: []string{"PPMVIEW_DIR"},
					Value:   picturesDir(),
					Usage:   "directory the file picker starts in",
				},
			},
			Action: view,
		},
		{
			Name:      "info",
			Usage:     "Print the header of an image",
			ArgsUsage: "FILE",
			Action:    info,
		},
		{
			Name:      "scan",
			Usage:     "Scan filesystem and record images in the catalog",
			ArgsUsage: "DIRECTORY",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "workers",
					Value: ppmview.DefaultWorkers,
					Usage: "number of files read concurrently",
				},
			},
			Action: scan,
		},
		{
			Name:   "list",
			Usage:  "List images recorded in the catalog",
			Action: list,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
