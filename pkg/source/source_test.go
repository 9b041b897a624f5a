package source_test

import (
	"errors"
	"testing"

	"github.com/legacyscan/legacyscan/pkg/source"
	"github.com/spf13/afero"
)

func TestReader_ReadFile(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		content []byte
		strict  bool
		exp     string
		isErr   bool
	}{
		{
			name:    "valid utf-8",
			content: []byte("@Stateless\npublic class Foo {}\n"),
			exp:     "@Stateless\npublic class Foo {}\n",
		},
		{
			name:    "lenient replaces invalid bytes",
			content: []byte("a\xffb"),
			exp:     "a�b",
		},
		{
			name:    "lenient drops a BOM",
			content: []byte("\xef\xbb\xbf@Entity"),
			exp:     "@Entity",
		},
		{
			name:    "strict rejects invalid bytes",
			content: []byte("a\xffb"),
			strict:  true,
			isErr:   true,
		},
		{
			name:    "strict accepts valid input",
			content: []byte("class A {}"),
			strict:  true,
			exp:     "class A {}",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if err := afero.WriteFile(fs, "/src/A.java", d.content, 0o644); err != nil {
				t.Fatal(err)
			}
			r := source.NewReader(fs, d.strict)
			s, err := r.ReadFile("/src/A.java")
			if d.isErr {
				if !errors.Is(err, source.ErrInvalidEncoding) {
					t.Fatalf("expected ErrInvalidEncoding, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if s != d.exp {
				t.Fatalf("wanted %q, got %q", d.exp, s)
			}
		})
	}
}

func TestReader_ReadFile_notFound(t *testing.T) {
	t.Parallel()
	r := source.NewReader(afero.NewMemMapFs(), false)
	if _, err := r.ReadFile("/missing.java"); err == nil {
		t.Fatal("an error should be returned")
	}
}
