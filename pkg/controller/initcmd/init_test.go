package initcmd_test

import (
	"testing"

	"github.com/legacyscan/legacyscan/pkg/config"
	"github.com/legacyscan/legacyscan/pkg/controller/initcmd"
	"github.com/spf13/afero"
)

func TestController_Init(t *testing.T) {
	t.Parallel()
	t.Run("create", func(t *testing.T) {
		t.Parallel()
		fs := afero.NewMemMapFs()
		if err := initcmd.New(fs).Init(".legacyscan.yaml"); err != nil {
			t.Fatal(err)
		}
		cfg := &config.Config{}
		if err := config.NewReader(fs).Read(cfg, ".legacyscan.yaml"); err != nil {
			t.Fatal(err)
		}
		if err := cfg.Init(); err != nil {
			t.Fatal(err)
		}
		if cfg.Version != 1 {
			t.Errorf("wanted version 1, got %d", cfg.Version)
		}
		if cfg.Report != config.DefaultMarkdownPath {
			t.Errorf("unexpected report path: %s", cfg.Report)
		}
	})
	t.Run("keep an existing file", func(t *testing.T) {
		t.Parallel()
		fs := afero.NewMemMapFs()
		if err := afero.WriteFile(fs, ".legacyscan.yaml", []byte("version: 1\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := initcmd.New(fs).Init(".legacyscan.yaml"); err != nil {
			t.Fatal(err)
		}
		b, err := afero.ReadFile(fs, ".legacyscan.yaml")
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != "version: 1\n" {
			t.Errorf("the file shouldn't be overwritten: %s", b)
		}
	})
}
