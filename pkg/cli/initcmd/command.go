// Package initcmd implements the 'legacyscan init' command.
// It writes a commented .legacyscan.yaml so that users can start from the
// available settings instead of an empty file.
package initcmd

import (
	"context"

	"github.com/legacyscan/legacyscan/pkg/cli/flag"
	"github.com/legacyscan/legacyscan/pkg/controller/initcmd"
	"github.com/legacyscan/legacyscan/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const defaultConfigPath = ".legacyscan.yaml"

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
	}
	return r.Command()
}

func (r *runner) Command() *cli.Command {
	args := []string{}
	return &cli.Command{
		Name:  "init",
		Usage: "Create .legacyscan.yaml if it doesn't exist",
		Description: `Create .legacyscan.yaml if it doesn't exist

$ legacyscan init

You can also pass configuration file path.

e.g.

$ legacyscan init config/legacyscan.yaml
`,
		Action: func(_ context.Context, _ *cli.Command) error {
			return r.action(args)
		},
		Arguments: []cli.Argument{
			&cli.StringArgs{
				Name:        "config",
				Max:         1,
				Destination: &args,
			},
		},
	}
}

func (r *runner) action(args []string) error {
	log.SetLevel(r.globalFlags.LogLevel, r.logE)
	configFilePath := ""
	if len(args) > 0 {
		configFilePath = args[0]
	}
	if configFilePath == "" {
		configFilePath = r.globalFlags.Config
	}
	if configFilePath == "" {
		configFilePath = defaultConfigPath
	}
	return initcmd.New(afero.NewOsFs()).Init(configFilePath) //nolint:wrapcheck
}
