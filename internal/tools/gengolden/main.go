//go:build tools
// +build tools

package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/conn-castle/depgraph/internal/graph"
	"github.com/conn-castle/depgraph/internal/report"
	"github.com/conn-castle/depgraph/internal/script"
)

const (
	scriptExt   = ".txt"
	expectedExt = ".expected"
)

func main() {
	dir := flag.String("dir", "", "directory holding *.txt scripts")
	check := flag.Bool("check", false, "report stale transcripts instead of rewriting them")
	cycleGuard := flag.Bool("cycle-guard", false, "run scripts with the cycle guard enabled")
	flag.Parse()

	if strings.TrimSpace(*dir) == "" {
		fatalf("--dir is required")
	}
	scripts, err := collectScripts(*dir)
	if err != nil {
		fatalf("collect scripts: %v", err)
	}
	if len(scripts) == 0 {
		fatalf("no %s scripts under %s", scriptExt, *dir)
	}

	stale := 0
	for _, path := range scripts {
		transcript, err := render(path, *cycleGuard)
		if err != nil {
			fatalf("%s: %v", path, err)
		}
		out := strings.TrimSuffix(path, scriptExt) + expectedExt
		if *check {
			existing, err := os.ReadFile(out)
			if err != nil || !bytes.Equal(existing, transcript) {
				_, _ = fmt.Fprintf(os.Stderr, "stale: %s\n", out)
				stale++
			}
			continue
		}
		if err := os.WriteFile(out, transcript, 0o644); err != nil {
			fatalf("write %s: %v", out, err)
		}
	}
	if stale > 0 {
		os.Exit(1)
	}
}

func collectScripts(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+scriptExt))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

// render runs the script at path with echo on and color off.
func render(path string, cycleGuard bool) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var out bytes.Buffer
	in, err := script.New(graph.New(graph.Options{CycleGuard: cycleGuard}), report.NewPrinter(&out, report.Options{}), script.Options{Echo: true})
	if err != nil {
		return nil, err
	}
	if err := in.Run(f); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
