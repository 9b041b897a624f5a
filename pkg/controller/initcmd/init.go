package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/legacyscan/legacyscan/refs/heads/main/json-schema/legacyscan.json
# legacyscan - https://github.com/legacyscan/legacyscan
version: 1
# report: modernization_report.md
# format: markdown # markdown or sarif
# parallelism: 1
# strict_decoding: false
# xml_marker: .xml

ignore_paths:
# - pattern: target
# - pattern: build
# - pattern: "**/*Test.java"
# - pattern: .*/generated/.*
#   pattern_format: regexp
`
	filePermission os.FileMode = 0o644
)

// Init creates a configuration file from the template.
// An existing file is left untouched.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
