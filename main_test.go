package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NickyBoy89/sigfind/criteria"
	"github.com/NickyBoy89/sigfind/match"
	"github.com/NickyBoy89/sigfind/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shapesSource = `package shapes;

import java.util.List;

public class Polygon {
    public Polygon(Point... points) {}

    static Polygon of(List<Point> points, boolean closed) {
        return null;
    }

    int size() { return 0; }
}
`

const drawingSource = `package shapes;

import java.util.*;

class Drawing {
    void add(List<Polygon> shapes, int layer) {}
    void add(Map<String, Polygon> shapes, int layer) {}
}
`

func writeFile(t *testing.T, dir, name string, contents []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, contents, 0o644))
	return path
}

// runCommand executes sigfind with args and returns what it printed
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runCommandWithLogs(t, args...)
	return out, err
}

// runCommandWithLogs is runCommand that also returns the log output
func runCommandWithLogs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("SIGFIND_LOG_LEVEL", "")
	t.Setenv("SIGFIND_JOBS", "")

	var out, logs bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&logs)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func TestFindCommand(t *testing.T) {
	dir := t.TempDir()
	polygon := writeFile(t, dir, "shapes/Polygon.java", []byte(shapesSource))
	drawing := writeFile(t, dir, "shapes/Drawing.java", []byte(drawingSource))
	writeFile(t, dir, "shapes/README.md", []byte("not java"))

	out, err := runCommand(t, "find", "--jobs", "2",
		"-m", "add(Ljava/util/List;I)",
		"-m", "<init>([Lshapes/Point;)V",
		"-r", "size()I",
		dir,
	)
	require.NoError(t, err)

	assert.Equal(t, []string{
		drawing + ":6:5 sig-method add(Ljava/util/List;I)",
		polygon + ":6:5 sig-method <init>([Lshapes/Point;)V",
		polygon + ":12:5 return-type size()I",
	}, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestFindCommand_MalformedTarget(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Polygon.java", []byte(shapesSource))

	_, err := runCommand(t, "find", "-m", "size(int)", "-m", "size()", dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, match.ErrMalformedTargetSignature))

	out, logs, err := runCommandWithLogs(t, "find", "--skip-invalid", "-m", "size(int)", "-m", "size()", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "sig-method size()")
	assert.Contains(t, logs, "Skipping malformed target")
	assert.Contains(t, logs, "session=")
}

func TestFindCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	polygon := writeFile(t, dir, "Polygon.java", []byte(shapesSource))
	cfg := writeFile(t, dir, "sigfind.yaml", []byte("targets:\n  - of(Ljava/util/List;Z)\njobs: 1\n"))
	metrics := filepath.Join(dir, "metrics.prom")

	out, err := runCommand(t, "find", "--config", cfg, "--metrics-file", metrics, polygon)
	require.NoError(t, err)
	assert.Equal(t, polygon+":8:5 sig-method of(Ljava/util/List;Z)\n", out)

	written, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(written), `sigfind_criteria_evaluations_total{kind="sig-method",result="match"} 1`)

	// Flags take precedence over the file
	out, err = runCommand(t, "find", "--config", cfg, "-m", "size()", polygon)
	require.NoError(t, err)
	assert.Equal(t, polygon+":12:5 sig-method size()\n", out)
}

func TestFindCommand_NoTargets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Polygon.java", []byte(shapesSource))

	_, err := runCommand(t, "find", dir)
	assert.Error(t, err)
}

// classBytes assembles a class file declaring the given methods, each a
// name and descriptor pair
func classBytes(className string, methods [][2]string) []byte {
	var pool bytes.Buffer
	count := uint16(1)
	utf8 := func(s string) uint16 {
		pool.WriteByte(1)
		binary.Write(&pool, binary.BigEndian, uint16(len(s)))
		pool.WriteString(s)
		count++
		return count - 1
	}
	class := func(name string) uint16 {
		nameIndex := utf8(name)
		pool.WriteByte(7)
		binary.Write(&pool, binary.BigEndian, nameIndex)
		count++
		return count - 1
	}

	this := class(className)
	super := class("java/lang/Object")
	indices := make([][2]uint16, len(methods))
	for i, m := range methods {
		indices[i] = [2]uint16{utf8(m[0]), utf8(m[1])}
	}

	var out bytes.Buffer
	w := func(v any) { binary.Write(&out, binary.BigEndian, v) }
	w(uint32(0xCAFEBABE))
	w(uint16(0))
	w(uint16(61))
	w(count)
	out.Write(pool.Bytes())
	w(uint16(0x0001))
	w(this)
	w(super)
	w(uint16(0)) // interfaces
	w(uint16(0)) // fields
	w(uint16(len(methods)))
	for _, idx := range indices {
		w(uint16(0x0001))
		w(idx[0])
		w(idx[1])
		w(uint16(0))
	}
	w(uint16(0)) // attributes
	return out.Bytes()
}

func TestClassesCommand(t *testing.T) {
	dir := t.TempDir()
	registry := writeFile(t, dir, "com/example/Registry.class", classBytes("com/example/Registry", [][2]string{
		{"<init>", "()V"},
		{"lookup", "(Ljava/util/Map;[Lcom/example/Registry$Entry;J)Ljava/lang/Object;"},
		{"lookup", "(Ljava/lang/String;)Ljava/lang/Object;"},
	}))

	out, err := runCommand(t, "classes",
		"-m", "lookup(Ljava/util/Map;[Lcom/example/Registry$Entry;J)",
		"-m", "<init>()V",
		dir,
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		registry + ":0:0 sig-method <init>()V",
		registry + ":0:0 sig-method lookup(Ljava/util/Map;[Lcom/example/Registry$Entry;J)",
	}, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestClassesCommand_BadClassFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Broken.class", []byte("not a class"))

	_, err := runCommand(t, "classes", "-m", "foo()", dir)
	assert.Error(t, err)
}

func TestScanner_SharesContextsAcrossJobs(t *testing.T) {
	session := criteria.NewSession()
	scanner, err := NewScanner(session, []string{"run(Ljava/lang/Runnable;)"}, nil, 4, false)
	require.NoError(t, err)

	unit := &symbol.FileScope{
		Name:    "Pool.java",
		Package: "p",
		TopLevelClasses: []*symbol.ClassScope{{
			Class: &symbol.Definition{Name: "Pool", Kind: symbol.KindClass, Line: 1, Column: 1},
			Methods: []*symbol.Definition{{
				Name:       "run",
				Kind:       symbol.KindMethod,
				Parameters: []*symbol.Definition{{Type: "Runnable"}},
				Line:       2,
				Column:     5,
			}},
		}},
	}
	// Every file loads as the same unit, so one context serves all of them
	load := func(context.Context, string) (*symbol.FileScope, error) {
		return unit, nil
	}

	findings, err := scanner.Scan(context.Background(), []string{"a", "b", "c", "d", "e", "f"}, load)
	require.NoError(t, err)
	assert.Len(t, findings, 6)
	assert.Equal(t, "Pool.java:2:5 sig-method run(Ljava/lang/Runnable;)", findings[0].String())
	assert.Equal(t, 1, session.CachedContexts())
}
