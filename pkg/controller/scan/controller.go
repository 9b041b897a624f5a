// Package scan implements the legacy risk scan of a Java source tree.
// The controller walks the tree, matches Java lines and XML file names
// against the rule table, renders the findings and writes the report.
// Files are matched independently; when several workers are configured the
// findings are put back into walk order before rendering.
package scan

import (
	"io"

	"github.com/legacyscan/legacyscan/pkg/config"
	"github.com/legacyscan/legacyscan/pkg/rule"
	"github.com/legacyscan/legacyscan/pkg/source"
	"github.com/spf13/afero"
)

type Controller struct {
	fs     afero.Fs
	cfg    *config.Config
	param  *ParamScan
	rules  *rule.Table
	reader *source.Reader
	walker *Walker
	logger *Logger
}

type ParamScan struct {
	Root   string
	Quiet  bool
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a controller. cfg must be initialized.
func New(fs afero.Fs, cfg *config.Config, param *ParamScan) *Controller {
	return &Controller{
		fs:     fs,
		cfg:    cfg,
		param:  param,
		rules:  rule.Default(),
		reader: source.NewReader(fs, cfg.StrictDecoding),
		walker: NewWalker(fs, cfg.XMLMarker, cfg),
		logger: NewLogger(param.Stderr),
	}
}
