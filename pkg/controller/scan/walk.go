package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

type Kind int

const (
	KindIgnored Kind = iota
	KindJava
	KindXML
)

const javaSuffix = ".java"

var ErrNotDirectory = errors.New("the scan root isn't a directory")

// Entry is a file found by the walker.
type Entry struct {
	Path string
	Kind Kind
}

// Classify classifies a file by its base name.
func Classify(name, xmlMarker string) Kind {
	switch {
	case strings.HasSuffix(name, javaSuffix):
		return KindJava
	case strings.HasSuffix(name, xmlMarker):
		return KindXML
	default:
		return KindIgnored
	}
}

type Ignorer interface {
	Ignored(p string) (bool, error)
}

type Walker struct {
	fs        afero.Fs
	xmlMarker string
	ignorer   Ignorer
}

func NewWalker(fs afero.Fs, xmlMarker string, ignorer Ignorer) *Walker {
	return &Walker{
		fs:        fs,
		xmlMarker: xmlMarker,
		ignorer:   ignorer,
	}
}

// Walk calls fn for every Java or XML file under root in lexical order.
// Unreadable directories are skipped. Symbolic links are not followed when
// the filesystem supports Lstat.
func (w *Walker) Walk(logE *logrus.Entry, root string, fn func(Entry) error) error {
	info, err := w.fs.Stat(root)
	if err != nil {
		return fmt.Errorf("get the scan root: %w", err)
	}
	if !info.IsDir() {
		return ErrNotDirectory
	}
	return afero.Walk(w.fs, root, func(p string, info os.FileInfo, e error) error { //nolint:wrapcheck
		if e != nil {
			logE.WithField("path", p).WithError(e).Debug("skip an unreadable path")
			return nil
		}
		ignored, err := w.ignored(root, p)
		if err != nil {
			return err
		}
		if info.IsDir() {
			if ignored {
				logE.WithField("path", p).Debug("skip an ignored directory")
				return filepath.SkipDir
			}
			return nil
		}
		kind := Classify(info.Name(), w.xmlMarker)
		if kind == KindIgnored || ignored {
			return nil
		}
		return fn(Entry{Path: p, Kind: kind})
	})
}

func (w *Walker) ignored(root, p string) (bool, error) {
	if w.ignorer == nil {
		return false, nil
	}
	rel, err := filepath.Rel(root, p)
	if err != nil || rel == "." {
		return false, nil //nolint:nilerr
	}
	f, err := w.ignorer.Ignored(rel)
	if err != nil {
		return false, fmt.Errorf("check if a path is ignored: %w", err)
	}
	return f, nil
}
