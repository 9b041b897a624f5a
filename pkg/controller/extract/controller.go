// Package extract builds the class outline of Java files.
// Parse errors are returned as failed results, never as errors, so one
// malformed file doesn't affect the others.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/legacyscan/legacyscan/pkg/javaparse"
	"github.com/legacyscan/legacyscan/pkg/report"
	"github.com/legacyscan/legacyscan/pkg/source"
	"github.com/legacyscan/legacyscan/pkg/structure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

const (
	filePermission os.FileMode = 0o644
	dirPermission  os.FileMode = 0o755
)

type Controller struct {
	fs     afero.Fs
	reader *source.Reader
	stdout io.Writer
}

type Param struct {
	JavaFilePaths []string
	OutputPath    string
}

func New(fs afero.Fs, strictDecoding bool, stdout io.Writer) *Controller {
	return &Controller{
		fs:     fs,
		reader: source.NewReader(fs, strictDecoding),
		stdout: stdout,
	}
}

// Extract reads and parses one Java file.
// An error is returned only if the file can't be read.
func (c *Controller) Extract(ctx context.Context, p string) (*structure.Result, error) {
	content, err := c.reader.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read a Java file: %w", logerr.WithFields(err, logrus.Fields{
			"java_file": p,
		}))
	}
	cu, err := javaparse.Parse(ctx, []byte(content))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, fmt.Errorf("parse a Java file: %w", err)
		}
		return structure.Failure(p, fmt.Sprintf("Failed to parse %s: %s", p, err)), nil
	}
	return structure.Success(p, Classes(cu)), nil
}

// ExtractAll extracts every file independently, keeping the input order.
// A file that can't be read becomes a failed result.
func (c *Controller) ExtractAll(ctx context.Context, logE *logrus.Entry, paths []string) []*structure.Result {
	results := make([]*structure.Result, 0, len(paths))
	for _, p := range paths {
		r, err := c.Extract(ctx, p)
		if err != nil {
			logerr.WithError(logE.WithField("java_file", p), err).Warn("extract the structure")
			r = structure.Failure(p, fmt.Sprintf("Failed to read %s: %s", p, err))
		}
		results = append(results, r)
	}
	return results
}

// Run renders the structure of the given files and prints it or writes it
// to the output path.
func (c *Controller) Run(ctx context.Context, logE *logrus.Entry, param *Param) error {
	var doc []byte
	if len(param.JavaFilePaths) == 1 {
		r, err := c.Extract(ctx, param.JavaFilePaths[0])
		if err != nil {
			return err
		}
		doc = report.RenderResult(r)
	} else {
		for _, r := range c.ExtractAll(ctx, logE, param.JavaFilePaths) {
			doc = append(doc, report.RenderResult(r)...)
		}
	}
	if param.OutputPath == "" {
		if _, err := c.stdout.Write(doc); err != nil {
			return fmt.Errorf("output the structure: %w", err)
		}
		return nil
	}
	if err := c.write(param.OutputPath, doc); err != nil {
		return fmt.Errorf("write the structure: %w", logerr.WithFields(err, logrus.Fields{
			"output": param.OutputPath,
		}))
	}
	fmt.Fprintf(c.stdout, "Structure saved to %s\n", param.OutputPath)
	return nil
}

func (c *Controller) write(p string, doc []byte) error {
	if dir := filepath.Dir(p); dir != "." {
		if err := c.fs.MkdirAll(dir, dirPermission); err != nil {
			return fmt.Errorf("create a parent directory: %w", err)
		}
	}
	if err := afero.WriteFile(c.fs, p, doc, filePermission); err != nil {
		return fmt.Errorf("write a file: %w", err)
	}
	return nil
}
