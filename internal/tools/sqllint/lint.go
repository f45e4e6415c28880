package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"strconv"
	"strings"
)

var (
	statementPattern  = regexp.MustCompile(`(?is)^(select\s.+\bfrom\b|select\s+\d|insert\s+into\s|update\s+\S+\s+set\s|delete\s+from\s|with\s+\w+\s+as\s*\(|create\s+(unique\s+)?(table|index)\s|alter\s+table\s|drop\s+(table|index)\s)`)
	uuidMarkerPattern = regexp.MustCompile(`^--sql [0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

type violation struct {
	file    string
	line    int
	message string
}

// linter checks every string literal that holds a SQL statement. The first
// line must be a "--sql <uuid>" marker and markers must be unique.
type linter struct {
	seen       map[string]token.Position
	violations []violation
}

func newLinter() *linter {
	return &linter{seen: map[string]token.Position{}}
}

// lintSource parses src (a string, []byte or nil to read path) and records violations.
func (l *linter) lintSource(path string, src any) error {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, 0)
	if err != nil {
		return err
	}
	ast.Inspect(file, func(n ast.Node) bool {
		bl, ok := n.(*ast.BasicLit)
		if !ok || bl.Kind != token.STRING {
			return true
		}
		raw, err := unquote(bl.Value)
		if err != nil {
			return true
		}
		l.check(fset.Position(bl.Pos()), raw)
		return true
	})
	return nil
}

func (l *linter) check(pos token.Position, raw string) {
	first, rest := splitFirstLine(raw)
	if strings.TrimSpace(rest) == "" && !statementPattern.MatchString(strings.TrimSpace(raw)) {
		return
	}
	if !strings.HasPrefix(first, "--sql") {
		if statementPattern.MatchString(strings.TrimSpace(raw)) {
			l.add(pos, "SQL statement without --sql <uuid> marker")
		}
		return
	}
	if !uuidMarkerPattern.MatchString(first) {
		l.add(pos, "invalid --sql marker "+strconv.Quote(first))
		return
	}
	if !statementPattern.MatchString(strings.TrimSpace(rest)) {
		l.add(pos, "marker is not followed by a SQL statement")
		return
	}
	if prev, dup := l.seen[first]; dup {
		l.add(pos, "duplicate marker, first used at "+prev.String())
		return
	}
	l.seen[first] = pos
}

func (l *linter) add(pos token.Position, msg string) {
	l.violations = append(l.violations, violation{file: pos.Filename, line: pos.Line, message: msg})
}

func splitFirstLine(s string) (string, string) {
	s = strings.TrimLeft(s, "\n\r \t")
	if idx := strings.IndexAny(s, "\n\r"); idx >= 0 {
		return strings.TrimSpace(s[:idx]), s[idx+1:]
	}
	return strings.TrimSpace(s), ""
}

func unquote(v string) (string, error) {
	if len(v) >= 2 && v[0] == '`' {
		return v[1 : len(v)-1], nil
	}
	return strconv.Unquote(v)
}
