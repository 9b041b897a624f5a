package cli

import (
	"context"
	"io"

	"github.com/legacyscan/legacyscan/pkg/cli/annotate"
	"github.com/legacyscan/legacyscan/pkg/cli/extract"
	"github.com/legacyscan/legacyscan/pkg/cli/flag"
	"github.com/legacyscan/legacyscan/pkg/cli/initcmd"
	"github.com/legacyscan/legacyscan/pkg/cli/scan"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

type Runner struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	LDFlags *LDFlags
	LogE    *logrus.Entry
}

type LDFlags struct {
	Version string
	Commit  string
	Date    string
}

func (f *LDFlags) String() string {
	if f.Version == "" {
		return "dev"
	}
	if f.Commit == "" {
		return f.Version
	}
	return f.Version + " (" + f.Commit + ")"
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	globalFlags := &flag.GlobalFlags{}
	cmd := &cli.Command{
		Name:                  "legacyscan",
		Usage:                 "Find legacy Java EE usage and outline Java sources. https://github.com/legacyscan/legacyscan",
		Version:               r.LDFlags.String(),
		Flags:                 globalFlags.Flags(),
		Writer:                r.Stdout,
		ErrWriter:             r.Stderr,
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			scan.New(r.LogE, globalFlags, r.Stdout, r.Stderr),
			extract.New(r.LogE, globalFlags, r.Stdout),
			annotate.New(r.LogE, globalFlags, r.Stdout),
			initcmd.New(r.LogE, globalFlags),
			newVersionCommand(),
		},
	}
	return cmd.Run(ctx, args) //nolint:wrapcheck
}
