// Package annotate implements the 'legacyscan annotate' command.
package annotate

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/legacyscan/legacyscan/pkg/cli/flag"
	"github.com/legacyscan/legacyscan/pkg/controller/annotate"
	"github.com/legacyscan/legacyscan/pkg/llm"
	"github.com/legacyscan/legacyscan/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

var errExactlyOneFile = errors.New("exactly one Java file is required")

type Flags struct {
	Output string
	Mode   string
	Model  string
	Args   []string
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
		Name:  "annotate",
		Usage: "Comment or modernize a Java file with Gemini",
		Description: `Send a Java file to Gemini and save the commented or rewritten code.
GOOGLE_API_KEY (or GEMINI_API_KEY) is required. A .env file in the current directory is loaded.

$ legacyscan annotate OrderBean.java
Annotated code saved to OrderBean_commented.java

$ legacyscan annotate -m modernize OrderBean.java
Annotated code saved to OrderBean_modernized.java
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
			&cli.StringFlag{
				Name:        "mode",
				Aliases:     []string{"m"},
				Usage:       "comment or modernize",
				Value:       string(annotate.ModeComment),
				Destination: &flags.Mode,
			},
			&cli.StringFlag{
				Name:        "model",
				Usage:       "Gemini model name",
				Value:       llm.DefaultModel,
				Destination: &flags.Model,
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArgs{
				Name:        "file",
				Max:         -1,
				Destination: &flags.Args,
			},
		},
	}
}

func (r *runner) action(ctx context.Context, flags *Flags) error {
	log.SetLevel(r.globalFlags.LogLevel, r.logE)
	_ = godotenv.Load()
	if len(flags.Args) != 1 {
		return errExactlyOneFile
	}
	mode, err := annotate.ParseMode(flags.Mode)
	if err != nil {
		return err //nolint:wrapcheck
	}
	gen, err := llm.NewGemini(ctx, llm.APIKeyFromEnv(os.Getenv), flags.Model)
	if err != nil {
		return err //nolint:wrapcheck
	}
	ctrl := annotate.New(afero.NewOsFs(), gen, r.stdout)
	return ctrl.Run(ctx, r.logE, &annotate.Param{ //nolint:wrapcheck
		InputPath:  flags.Args[0],
		OutputPath: flags.Output,
		Mode:       mode,
	})
}
