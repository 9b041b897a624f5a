// Package annotate asks a text generator to comment or modernize a Java file.
package annotate

import (
	"context"
	"io"

	"github.com/legacyscan/legacyscan/pkg/source"
	"github.com/spf13/afero"
)

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Controller struct {
	fs        afero.Fs
	reader    *source.Reader
	generator Generator
	stdout    io.Writer
}

func New(fs afero.Fs, generator Generator, stdout io.Writer) *Controller {
	return &Controller{
		fs:        fs,
		reader:    source.NewReader(fs, false),
		generator: generator,
		stdout:    stdout,
	}
}
