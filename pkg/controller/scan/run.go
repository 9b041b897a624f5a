package scan

import (
	"context"
	"fmt"

	"github.com/legacyscan/legacyscan/pkg/config"
	"github.com/legacyscan/legacyscan/pkg/finding"
	"github.com/legacyscan/legacyscan/pkg/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"golang.org/x/sync/errgroup"
)

const filePermission = 0o644

// Run scans the root directory, writes the report and prints a completion message.
func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	findings, err := c.Scan(ctx, logE)
	if err != nil {
		return err
	}
	if !c.param.Quiet {
		for _, f := range findings {
			c.logger.Output(f)
		}
	}
	doc, err := c.render(findings)
	if err != nil {
		return err
	}
	if err := c.writeReport(c.cfg.Report, doc); err != nil {
		return fmt.Errorf("write the report: %w", logerr.WithFields(err, logrus.Fields{
			"report": c.cfg.Report,
		}))
	}
	logE.WithFields(logrus.Fields{
		"report":   c.cfg.Report,
		"findings": len(findings),
	}).Debug("wrote the report")
	fmt.Fprintf(c.param.Stdout, "✅ Scan complete. See '%s'\n", c.cfg.Report)
	return nil
}

type fileResult struct {
	findings []finding.Finding
}

// Scan returns the findings in walk order, then line order within a file.
func (c *Controller) Scan(ctx context.Context, logE *logrus.Entry) ([]finding.Finding, error) {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(c.cfg.Parallelism)
	results := []*fileResult{}
	walkErr := c.walker.Walk(logE, c.param.Root, func(e Entry) error {
		if err := ctx.Err(); err != nil {
			return err //nolint:wrapcheck
		}
		result := &fileResult{}
		results = append(results, result)
		eg.Go(func() error {
			result.findings = c.scanEntry(logE, e)
			return nil
		})
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("scan files: %w", err)
	}
	if walkErr != nil {
		return nil, fmt.Errorf("walk the directory: %w", logerr.WithFields(walkErr, logrus.Fields{
			"root": c.param.Root,
		}))
	}
	findings := []finding.Finding{}
	for _, result := range results {
		findings = append(findings, result.findings...)
	}
	return findings, nil
}

func (c *Controller) scanEntry(logE *logrus.Entry, e Entry) []finding.Finding {
	switch e.Kind {
	case KindJava:
		content, err := c.reader.ReadFile(e.Path)
		if err != nil {
			logerr.WithError(logE.WithField("file", e.Path), err).Warn("skip a file that can't be read")
			return nil
		}
		return matchJava(c.rules, e.Path, content)
	case KindXML:
		return matchXML(c.rules, e.Path)
	default:
		return nil
	}
}

func (c *Controller) render(findings []finding.Finding) ([]byte, error) {
	if c.cfg.Format == config.FormatSARIF {
		b, err := report.RenderSARIF(findings, c.rules.Rules())
		if err != nil {
			return nil, fmt.Errorf("render a SARIF report: %w", err)
		}
		return b, nil
	}
	return report.RenderFindings(findings), nil
}

// writeReport writes the whole document to a temporary file and renames it,
// so a failed write never leaves a truncated report behind.
func (c *Controller) writeReport(p string, doc []byte) error {
	tmp := p + ".tmp"
	if err := afero.WriteFile(c.fs, tmp, doc, filePermission); err != nil {
		_ = c.fs.Remove(tmp)
		return fmt.Errorf("write a temporary file: %w", err)
	}
	if err := c.fs.Rename(tmp, p); err != nil {
		_ = c.fs.Remove(tmp)
		return fmt.Errorf("rename a temporary file: %w", err)
	}
	return nil
}
