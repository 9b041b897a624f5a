// Package extract implements the 'legacyscan extract' command.
package extract

import (
	"context"
	"errors"
	"io"

	"github.com/legacyscan/legacyscan/pkg/cli/flag"
	"github.com/legacyscan/legacyscan/pkg/controller/extract"
	"github.com/legacyscan/legacyscan/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

var errNoFile = errors.New("a Java file is required")

type Flags struct {
	Output         string
	StrictDecoding bool
	Args           []string
}

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
	stdout      io.Writer
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags, stdout io.Writer) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
		stdout:      stdout,
	}
	return r.Command()
}

func (r *runner) Command() *cli.Command {
	flags := &Flags{}
	return &cli.Command{
		Name:  "extract",
		Usage: "Output the classes, fields and methods of Java files as Markdown",
		Description: `Parse Java files and output their structure.

$ legacyscan extract src/main/java/com/example/OrderBean.java

Write the structure to a file. Parent directories are created.

$ legacyscan extract -o docs/OrderBean.md src/main/java/com/example/OrderBean.java
`,
		Action: func(ctx context.Context, _ *cli.Command) error {
			return r.action(ctx, flags)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output file path",
				Destination: &flags.Output,
			},
			&cli.BoolFlag{
				Name:        "strict-decoding",
				Usage:       "fail on files that aren't valid UTF-8",
				Destination: &flags.StrictDecoding,
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArgs{
				Name:        "files",
				Max:         -1,
				Destination: &flags.Args,
			},
		},
	}
}

func (r *runner) action(ctx context.Context, flags *Flags) error {
	log.SetLevel(r.globalFlags.LogLevel, r.logE)
	if len(flags.Args) == 0 {
		return errNoFile
	}
	ctrl := extract.New(afero.NewOsFs(), flags.StrictDecoding, r.stdout)
	return ctrl.Run(ctx, r.logE, &extract.Param{ //nolint:wrapcheck
		JavaFilePaths: flags.Args,
		OutputPath:    flags.Output,
	})
}
