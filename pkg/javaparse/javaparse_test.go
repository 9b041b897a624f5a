package javaparse_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/legacyscan/legacyscan/pkg/javaparse"
)

func TestParse(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name string
		src  string
		exp  *javaparse.CompilationUnit
	}{
		{
			name: "fields with several declarators",
			src:  `class A { int x, y; void m(String s) {} }`,
			exp: &javaparse.CompilationUnit{
				Types: []*javaparse.TypeDeclaration{
					{
						Kind: javaparse.KindClass,
						Name: "A",
						Fields: []*javaparse.FieldDeclaration{
							{
								Type: "int",
								Declarators: []*javaparse.Declarator{
									{Name: "x"},
									{Name: "y"},
								},
							},
						},
						Methods: []*javaparse.MethodDeclaration{
							{
								Name: "m",
								Parameters: []*javaparse.Parameter{
									{Type: "String", Name: "s"},
								},
							},
						},
					},
				},
			},
		},
		{
			name: "package, generics, arrays and varargs",
			src: `package com.example.legacy;

import java.util.List;

@Stateless
public class OrderService {
    private List<String> names;
    private int codes[];

    public OrderService() {}

    public void place(final Map<String, Integer> items, long[] ids, String... tags) {}
}

interface Marker {
    int LIMIT = 1;
    void mark();
}
`,
			exp: &javaparse.CompilationUnit{
				Types: []*javaparse.TypeDeclaration{
					{
						Kind: javaparse.KindClass,
						Name: "OrderService",
						Fields: []*javaparse.FieldDeclaration{
							{
								Type:        "List<String>",
								Declarators: []*javaparse.Declarator{{Name: "names"}},
							},
							{
								Type:        "int",
								Declarators: []*javaparse.Declarator{{Name: "codes", Dimensions: "[]"}},
							},
						},
						Methods: []*javaparse.MethodDeclaration{
							{
								Name: "place",
								Parameters: []*javaparse.Parameter{
									{Type: "Map<String, Integer>", Name: "items"},
									{Type: "long[]", Name: "ids"},
									{Type: "String", Name: "tags", Varargs: true},
								},
							},
						},
					},
					{
						Kind: javaparse.KindInterface,
						Name: "Marker",
						Fields: []*javaparse.FieldDeclaration{
							{
								Type:        "int",
								Declarators: []*javaparse.Declarator{{Name: "LIMIT"}},
							},
						},
						Methods: []*javaparse.MethodDeclaration{
							{Name: "mark"},
						},
					},
				},
			},
		},
		{
			name: "no types",
			src:  "// nothing here\n",
			exp:  &javaparse.CompilationUnit{},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			cu, err := javaparse.Parse(context.Background(), []byte(d.src))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(d.exp, cu); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestParse_syntaxError(t *testing.T) {
	t.Parallel()
	data := []struct {
		name string
		src  string
	}{
		{name: "unterminated class", src: "class A { int x"},
		{name: "garbage", src: "class { ] ]"},
		{name: "bare statement", src: "int x = 1;"},
		{name: "statement before a class", src: "System.out.println(\"hi\");\nclass A {}"},
		{name: "bare method", src: "void m() {}"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			_, err := javaparse.Parse(context.Background(), []byte(d.src))
			var syntaxErr *javaparse.SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("expected *SyntaxError, got %v", err)
			}
			if syntaxErr.Line < 1 || syntaxErr.Column < 1 {
				t.Fatalf("invalid position: %+v", syntaxErr)
			}
		})
	}
}

func TestParse_topLevelStatement(t *testing.T) {
	t.Parallel()
	src := "package p;\n\nclass A {}\nSystem.out.println(\"hi\");\n"
	_, err := javaparse.Parse(context.Background(), []byte(src))
	var syntaxErr *javaparse.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if syntaxErr.Line != 4 || syntaxErr.Column != 1 {
		t.Errorf("wanted line 4, column 1, got %+v", syntaxErr)
	}
	if !strings.HasPrefix(syntaxErr.Message, "unexpected ") {
		t.Errorf("unexpected message: %s", syntaxErr.Message)
	}
}
