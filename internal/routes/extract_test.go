package routes

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// generatedManifest mimics the shape of a real routeTree.gen.ts.
const generatedManifest = `/* prettier-ignore-start */

/* eslint-disable */

// @ts-nocheck

// noinspection JSUnusedGlobalSymbols

// This file is auto-generated by TanStack Router

export interface FileRoutesByFullPath {
  '/': typeof IndexRoute
  '/about': typeof AboutRoute
  '/blog/post-1': typeof BlogPost1Route
  '/api/users': typeof ApiUsersRoute
}

export interface FileRouteTypes {
  fileRoutesByFullPath: FileRoutesByFullPath
  fullPaths: '/' | '/about' | '/blog/post-1' | '/api/users'
  fileRoutesByTo: FileRoutesByTo
  to: '/' | '/about' | '/blog/post-1' | '/api/users'
}
`

func newTestExtractor() (*Extractor, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return New(logger), &buf
}

func TestExtractUnionType(t *testing.T) {
	e, _ := newTestExtractor()
	paths, strategy := e.Extract(generatedManifest)
	if strategy != StrategyUnion {
		t.Fatalf("strategy = %q, want %q", strategy, StrategyUnion)
	}
	want := []string{"/", "/about", "/blog/post-1", "/api/users"}
	assertPaths(t, paths, want)
}

func TestExtractUnionPreservesDuplicates(t *testing.T) {
	e, _ := newTestExtractor()
	paths, strategy := e.Extract(`fullPaths: '/' | '/about' | '/about'`)
	if strategy != StrategyUnion {
		t.Fatalf("strategy = %q, want %q", strategy, StrategyUnion)
	}
	// Deduplication is the generator's responsibility, not the extractor's.
	assertPaths(t, paths, []string{"/", "/about", "/about"})
}

func TestExtractUnionMixedQuotes(t *testing.T) {
	e, _ := newTestExtractor()
	paths, _ := e.Extract("fullPaths: \"/\" | `/kebab-case-route` | '/a/b-c'")
	assertPaths(t, paths, []string{"/", "/kebab-case-route", "/a/b-c"})
}

func TestExtractSingleLiteralAtEndOfContent(t *testing.T) {
	// Shaped so the union strategy cannot match: the literal sits on
	// the line after the declaration, at the very end of the content.
	e, _ := newTestExtractor()
	paths, strategy := e.Extract("export interface FileRouteTypes {\n  fullPaths:\n    '/about'")
	if strategy != StrategySingle {
		t.Fatalf("strategy = %q, want %q", strategy, StrategySingle)
	}
	assertPaths(t, paths, []string{"/about"})
}

func TestExtractInterfaceKeys(t *testing.T) {
	e, _ := newTestExtractor()
	content := `export interface FileRoutesByFullPath {
  '/': typeof IndexRoute
  '/docs/intro': typeof DocsIntroRoute
  '/contact': typeof ContactRoute
}`
	paths, strategy := e.Extract(content)
	if strategy != StrategyInterface {
		t.Fatalf("strategy = %q, want %q", strategy, StrategyInterface)
	}
	assertPaths(t, paths, []string{"/", "/docs/intro", "/contact"})
}

func TestExtractFallback(t *testing.T) {
	e, buf := newTestExtractor()
	for _, content := range []string{"", "const x = 42", "fullPaths: 42"} {
		paths, strategy := e.Extract(content)
		if strategy != StrategyFallback {
			t.Errorf("content %q: strategy = %q, want %q", content, strategy, StrategyFallback)
		}
		assertPaths(t, paths, []string{"/"})
	}
	if buf.Len() == 0 {
		t.Errorf("expected fallback diagnostics to be logged")
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "routeTree.gen.ts")
	if err := os.WriteFile(path, []byte(generatedManifest), 0o644); err != nil {
		t.Fatal(err)
	}

	e, _ := newTestExtractor()
	paths, strategy := e.FromFile(path)
	if strategy != StrategyUnion {
		t.Fatalf("strategy = %q, want %q", strategy, StrategyUnion)
	}
	assertPaths(t, paths, []string{"/", "/about", "/blog/post-1", "/api/users"})
}

func TestFromFileMissing(t *testing.T) {
	e, buf := newTestExtractor()
	paths, strategy := e.FromFile(filepath.Join(t.TempDir(), "nope.gen.ts"))
	if strategy != StrategyFallback {
		t.Fatalf("strategy = %q, want %q", strategy, StrategyFallback)
	}
	assertPaths(t, paths, []string{"/"})
	if buf.Len() == 0 {
		t.Errorf("expected a diagnostic for the missing manifest")
	}
}

func TestFromFileUnreadable(t *testing.T) {
	// Reading a directory as a file fails with a non-IsNotExist error.
	e, buf := newTestExtractor()
	paths, strategy := e.FromFile(t.TempDir())
	if strategy != StrategyFallback {
		t.Fatalf("strategy = %q, want %q", strategy, StrategyFallback)
	}
	assertPaths(t, paths, []string{"/"})
	if buf.Len() == 0 {
		t.Errorf("expected a diagnostic for the unreadable manifest")
	}
}

func assertPaths(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d paths %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("path %d = %q, want %q", i, got[i], want[i])
		}
	}
}
