package config

import (
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	DefaultXMLMarker     = ".xml"
	DefaultMarkdownPath  = "modernization_report.md"
	DefaultSARIFPath     = "modernization_report.sarif"
	FormatMarkdown       = "markdown"
	FormatSARIF          = "sarif"
	defaultParallelism   = 1
	maxParallelism       = 64
	patternFormatDefault = formatGlob
	schemaVersion        = 1
)

type Config struct {
	Version        int           `json:"version,omitempty" jsonschema:"enum=1"`
	IgnorePaths    []*IgnorePath `json:"ignore_paths,omitempty" yaml:"ignore_paths" jsonschema:"description=Files and directories that the scanner skips. Paths are relative to the scanned root"`
	XMLMarker      string        `json:"xml_marker,omitempty" yaml:"xml_marker" jsonschema:"description=File name suffix that marks a file as an XML descriptor. The default is .xml"`
	Parallelism    int           `json:"parallelism,omitempty" jsonschema:"description=Number of files scanned concurrently. The default is 1"`
	StrictDecoding bool          `json:"strict_decoding,omitempty" yaml:"strict_decoding" jsonschema:"description=Reject files that aren't valid UTF-8 instead of replacing invalid bytes"`
	Report         string        `json:"report,omitempty" jsonschema:"description=Path of the scan report"`
	Format         string        `json:"format,omitempty" jsonschema:"enum=markdown,enum=sarif"`
}

type IgnorePath struct {
	Pattern       string `json:"pattern" jsonschema:"description=A path pattern relative to the scanned root"`
	PatternFormat string `json:"pattern_format,omitempty" yaml:"pattern_format" jsonschema:"enum=fixed_string,enum=glob,enum=regexp"`
	patternRegexp *regexp.Regexp
}

const (
	formatFixedString = "fixed_string"
	formatGlob        = "glob"
	formatRegexp      = "regexp"
)

func initFormat(value, format string) (*regexp.Regexp, error) {
	switch format {
	case formatFixedString:
		return nil, nil //nolint:nilnil
	case formatGlob:
		if _, err := path.Match(value, "a"); err != nil {
			return nil, fmt.Errorf("parse as a glob: %w", err)
		}
		return nil, nil //nolint:nilnil
	case formatRegexp:
		r, err := regexp.Compile(value)
		if err != nil {
			return nil, fmt.Errorf("compile as a regular expression: %w", err)
		}
		return r, nil
	default:
		return nil, errors.New("pattern_format must be fixed_string, glob, or regexp")
	}
}

func (ip *IgnorePath) Init() error {
	if ip.Pattern == "" {
		return errors.New("pattern is required")
	}
	if ip.PatternFormat == "" {
		ip.PatternFormat = patternFormatDefault
	}
	r, err := initFormat(ip.Pattern, ip.PatternFormat)
	if err != nil {
		return err
	}
	ip.patternRegexp = r
	return nil
}

// Match reports whether the slash separated relative path p is ignored.
func (ip *IgnorePath) Match(p string) (bool, error) {
	p = filepath.ToSlash(p)
	switch ip.PatternFormat {
	case formatFixedString:
		return p == ip.Pattern, nil
	case formatGlob, "":
		f, err := path.Match(ip.Pattern, p)
		if err != nil {
			return false, fmt.Errorf("match as a glob: %w", err)
		}
		return f, nil
	case formatRegexp:
		if ip.patternRegexp == nil {
			return false, errors.New("the ignore path isn't initialized")
		}
		return ip.patternRegexp.MatchString(p), nil
	default:
		return false, errors.New("unexpected format: " + ip.PatternFormat)
	}
}

// validateSchemaVersion accepts an unset version for configuration files
// written before the field existed.
func validateSchemaVersion(v int) error {
	switch v {
	case 0, schemaVersion:
		return nil
	default:
		return fmt.Errorf("unsupported configuration version %d; the supported version is %d", v, schemaVersion)
	}
}

// Init validates the configuration and fills in defaults.
func (c *Config) Init() error {
	if err := validateSchemaVersion(c.Version); err != nil {
		return err
	}
	for _, ip := range c.IgnorePaths {
		if err := ip.Init(); err != nil {
			return fmt.Errorf("initialize ignore_path: %w", err)
		}
	}
	if c.XMLMarker == "" {
		c.XMLMarker = DefaultXMLMarker
	}
	if c.Parallelism <= 0 {
		c.Parallelism = defaultParallelism
	}
	if c.Parallelism > maxParallelism {
		return fmt.Errorf("parallelism must be at most %d", maxParallelism)
	}
	switch c.Format {
	case "":
		c.Format = FormatMarkdown
	case FormatMarkdown, FormatSARIF:
	default:
		return errors.New("format must be markdown or sarif")
	}
	if c.Report == "" {
		c.Report = DefaultMarkdownPath
		if c.Format == FormatSARIF {
			c.Report = DefaultSARIFPath
		}
	}
	return nil
}

// Ignored reports whether any ignore_paths entry matches p.
func (c *Config) Ignored(p string) (bool, error) {
	for _, ip := range c.IgnorePaths {
		f, err := ip.Match(p)
		if err != nil {
			return false, err
		}
		if f {
			return true, nil
		}
	}
	return false, nil
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".legacyscan.yaml", ".legacyscan.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	p, err := getConfigPath(f.fs)
	if err != nil {
		return "", err
	}
	return p, nil
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// Read decodes the configuration file into cfg.
// If configFilePath is empty, cfg is left as is.
func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// empty file
			return nil
		}
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	return nil
}
