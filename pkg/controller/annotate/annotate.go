package annotate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

type Mode string

const (
	ModeComment   Mode = "comment"
	ModeModernize Mode = "modernize"

	filePermission os.FileMode = 0o644
)

var ErrUnknownMode = errors.New("mode must be comment or modernize")

const commentPrompt = `You are a senior Java engineer helping a team modernize an old code base.
Return the Java source file below with a "//" comment added to every line that describes what the line does.
When a line relies on an outdated or deprecated API or practice, add a short suggestion for a modern replacement to its comment.
Reply with plain source code only. Don't wrap it in Markdown.

Code:
`

const modernizePrompt = `You are a software architect migrating legacy Java EE applications.
Rewrite the Java source file below using current frameworks and practices, for example Spring Boot annotations instead of EJB, constructor based dependency injection and REST controllers.
Explain each section of the rewritten code with inline comments.
Reply with plain source code only. Don't wrap it in Markdown.

Code:
`

type Param struct {
	InputPath  string
	OutputPath string
	Mode       Mode
}

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeComment, ModeModernize:
		return m, nil
	case "":
		return ModeComment, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownMode, s)
	}
}

// Prompt returns the instruction for the mode followed by the code.
func Prompt(mode Mode, code string) (string, error) {
	switch mode {
	case ModeComment:
		return commentPrompt + code, nil
	case ModeModernize:
		return modernizePrompt + code, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}

// DefaultOutputPath inserts a mode specific suffix before the extension.
//
//	Foo.java comment   => Foo_commented.java
//	Foo.java modernize => Foo_modernized.java
func DefaultOutputPath(p string, mode Mode) string {
	suffix := "_commented"
	if mode == ModeModernize {
		suffix = "_modernized"
	}
	ext := filepath.Ext(p)
	return strings.TrimSuffix(p, ext) + suffix + ext
}

// Run writes the generated text to the output path.
// Nothing is written if the generator fails.
func (c *Controller) Run(ctx context.Context, logE *logrus.Entry, param *Param) error {
	code, err := c.reader.ReadFile(param.InputPath)
	if err != nil {
		return fmt.Errorf("read a Java file: %w", logerr.WithFields(err, logrus.Fields{
			"java_file": param.InputPath,
		}))
	}
	prompt, err := Prompt(param.Mode, code)
	if err != nil {
		return err
	}
	output := param.OutputPath
	if output == "" {
		output = DefaultOutputPath(param.InputPath, param.Mode)
	}
	logE.WithFields(logrus.Fields{
		"java_file": param.InputPath,
		"mode":      param.Mode,
	}).Debug("generate annotated code")
	text, err := c.generator.Generate(ctx, prompt)
	if err != nil {
		return fmt.Errorf("generate annotated code: %w", err)
	}
	if err := afero.WriteFile(c.fs, output, []byte(text), filePermission); err != nil {
		return fmt.Errorf("write annotated code: %w", logerr.WithFields(err, logrus.Fields{
			"output": output,
		}))
	}
	fmt.Fprintf(c.stdout, "Annotated code saved to %s\n", output)
	return nil
}
