// Package scan implements the 'legacyscan scan' command.
package scan

import (
	"context"
	"fmt"
	"io"

	"github.com/legacyscan/legacyscan/pkg/cli/flag"
	"github.com/legacyscan/legacyscan/pkg/config"
	"github.com/legacyscan/legacyscan/pkg/controller/scan"
	"github.com/legacyscan/legacyscan/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const usage = "Usage: legacyscan scan <ROOT_DIR>"

// Flags holds the command line flags for the scan command.
type Flags struct {
	Output         string
	Format         string
	Parallelism    int
	StrictDecoding bool
	Quiet          bool
	Args           []string
}

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
	stdout      io.Writer
	stderr      io.Writer
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags, stdout, stderr io.Writer) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
		stdout:      stdout,
		stderr:      stderr,
	}
	return r.Command()
}

func (r *runner) Command() *cli.Command { //nolint:funlen
	flags := &Flags{}
	return &cli.Command{
		Name:  "scan",
		Usage: "Scan a Java project for legacy frameworks and write a risk report",
		Description: `Walk ROOT_DIR and report EJB, JPA and deployment descriptor usage.

$ legacyscan scan ./my-app

The report is written to modernization_report.md by default.
Findings are also printed to stderr unless --quiet is set.

$ legacyscan scan --format sarif ./my-app
`,
		Action: func(ctx context.Context, c *cli.Command) error {
			return r.action(ctx, c, flags)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "report file path",
				Destination: &flags.Output,
			},
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "report format. markdown or sarif",
				Destination: &flags.Format,
			},
			&cli.IntFlag{
				Name:        "parallelism",
				Aliases:     []string{"p"},
				Usage:       "number of files scanned concurrently",
				Destination: &flags.Parallelism,
			},
			&cli.BoolFlag{
				Name:        "strict-decoding",
				Usage:       "skip files that aren't valid UTF-8 instead of replacing invalid bytes",
				Destination: &flags.StrictDecoding,
			},
			&cli.BoolFlag{
				Name:        "quiet",
				Aliases:     []string{"q"},
				Usage:       "don't print findings to stderr",
				Destination: &flags.Quiet,
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArgs{
				Name:        "root",
				Max:         -1,
				Destination: &flags.Args,
			},
		},
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command, flags *Flags) error {
	log.SetLevel(r.globalFlags.LogLevel, r.logE)
	if len(flags.Args) != 1 {
		fmt.Fprintln(r.stdout, usage)
		return nil
	}
	fs := afero.NewOsFs()
	cfg, err := readConfig(fs, r.globalFlags.Config)
	if err != nil {
		return err
	}
	applyFlags(cfg, c, flags)
	if err := cfg.Init(); err != nil {
		return fmt.Errorf("initialize the configuration: %w", err)
	}
	ctrl := scan.New(fs, cfg, &scan.ParamScan{
		Root:   flags.Args[0],
		Quiet:  flags.Quiet,
		Stdout: r.stdout,
		Stderr: r.stderr,
	})
	return ctrl.Run(ctx, r.logE) //nolint:wrapcheck
}

// applyFlags overrides the configuration file with flags set explicitly.
func applyFlags(cfg *config.Config, c *cli.Command, flags *Flags) {
	if c.IsSet("output") {
		cfg.Report = flags.Output
	}
	if c.IsSet("format") {
		cfg.Format = flags.Format
	}
	if c.IsSet("parallelism") {
		cfg.Parallelism = flags.Parallelism
	}
	if c.IsSet("strict-decoding") {
		cfg.StrictDecoding = flags.StrictDecoding
	}
}

func readConfig(fs afero.Fs, configFilePath string) (*config.Config, error) {
	cfgPath, err := config.NewFinder(fs).Find(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("find configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := config.NewReader(fs).Read(cfg, cfgPath); err != nil {
		return nil, fmt.Errorf("read configuration file: %w", err)
	}
	return cfg, nil
}
