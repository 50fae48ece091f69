package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/NickyBoy89/sigfind/classfile"
	"github.com/NickyBoy89/sigfind/criteria"
	"github.com/NickyBoy89/sigfind/parsing"
	"github.com/NickyBoy89/sigfind/symbol"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// query is one criterion together with the signature it was built from
type query struct {
	criterion criteria.Criterion
	signature string
}

// Finding is a declaration satisfying one of the queries
type Finding struct {
	File   string
	Line   int
	Column int
	Kind   criteria.Kind
	Target string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s:%d:%d %s %s", f.File, f.Line, f.Column, f.Kind, f.Target)
}

// loader turns one file into a symbol table
type loader func(ctx context.Context, path string) (*symbol.FileScope, error)

// Scanner evaluates a fixed set of queries against many files
type Scanner struct {
	session *criteria.Session
	queries []query
	jobs    int
}

// NewScanner builds a criterion for every signature. Malformed signatures are
// an error, unless skipInvalid is set, in which case they are logged and left
// out.
func NewScanner(session *criteria.Session, targets, returnTypes []string, jobs int, skipInvalid bool) (*Scanner, error) {
	s := &Scanner{session: session, jobs: jobs}

	add := func(signature string, build func(string) (criteria.Criterion, error)) error {
		c, err := build(signature)
		if err != nil {
			if skipInvalid {
				session.Logger.WithError(err).WithField("target", signature).Warn("Skipping malformed target")
				return nil
			}
			return err
		}
		s.queries = append(s.queries, query{criterion: c, signature: signature})
		return nil
	}

	for _, signature := range targets {
		if err := add(signature, func(sig string) (criteria.Criterion, error) {
			return session.IsSigMethod(sig)
		}); err != nil {
			return nil, err
		}
	}
	for _, signature := range returnTypes {
		if err := add(signature, func(sig string) (criteria.Criterion, error) {
			return session.ReturnType(sig)
		}); err != nil {
			return nil, err
		}
	}

	if len(s.queries) == 0 {
		return nil, fmt.Errorf("no usable target signatures")
	}
	return s, nil
}

// Scan loads every file with load and evaluates the queries against each of
// its declarations. Findings are returned in file order, then source order.
func (s *Scanner) Scan(ctx context.Context, files []string, load loader) ([]Finding, error) {
	results := make([][]Finding, len(files))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(s.jobs)
	for i, path := range files {
		group.Go(func() error {
			unit, err := load(ctx, path)
			if err != nil {
				return err
			}
			results[i] = s.evaluate(unit)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var findings []Finding
	for _, found := range results {
		findings = append(findings, found...)
	}
	return findings, nil
}

func (s *Scanner) evaluate(unit *symbol.FileScope) []Finding {
	var findings []Finding
	for _, path := range criteria.PathsOf(unit) {
		for _, q := range s.queries {
			if !q.criterion.IsSatisfiedBy(path) {
				continue
			}
			findings = append(findings, Finding{
				File:   unit.Name,
				Line:   path.Leaf.Line,
				Column: path.Leaf.Column,
				Kind:   q.criterion.Kind(),
				Target: q.signature,
			})
		}
	}
	s.session.Logger.WithFields(log.Fields{
		"file":     unit.Name,
		"findings": len(findings),
	}).Debug("Scanned file")
	return findings
}

// loadSource parses a Java source file
func loadSource(ctx context.Context, path string) (*symbol.FileScope, error) {
	file, err := parsing.ReadSourceFile(path)
	if err != nil {
		return nil, err
	}
	if err := file.ParseASTCtx(ctx); err != nil {
		return nil, err
	}
	defer file.Close()
	return file.ParseSymbols(), nil
}

// loadClass reads a compiled class file. Its declarations have no position.
func loadClass(_ context.Context, path string) (*symbol.FileScope, error) {
	cf, err := classfile.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	unit, err := symbol.FromClassFile(cf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	unit.Name = path
	return unit, nil
}

// collectFiles expands directories in roots into every file below them with
// the given extension. Files named directly are kept whatever their extension.
func collectFiles(roots []string, ext string) ([]string, error) {
	var files []string
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if path == root || strings.EqualFold(filepath.Ext(path), ext) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func printFindings(w io.Writer, findings []Finding) error {
	for _, f := range findings {
		if _, err := fmt.Fprintln(w, f); err != nil {
			return err
		}
	}
	return nil
}
