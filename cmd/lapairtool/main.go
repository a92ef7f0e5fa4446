// Command lapairtool loads one or more function descriptions and prints
// the results of running the four dataflow analyses over each.
//
// Usage:
//
//	lapairtool -file diamond.yaml
//	lapairtool -dir ./programs
//
// There is no language frontend wired in (spec.md puts that out of
// scope): function descriptions are YAML, not any real source language.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/lapair-go/lapair/internal/diag"
	"github.com/lapair-go/lapair/ir"
)

func main() {
	file := flag.String("file", "", "path to a single function YAML file")
	dir := flag.String("dir", "", "path to a directory of function YAML files, processed concurrently")
	flag.Parse()

	logger := diag.Default()

	if *file == "" && *dir == "" {
		logger.Warning("usage: lapairtool -file x.yaml | -dir ./programs")
		os.Exit(2)
	}

	var paths []string
	if *file != "" {
		paths = append(paths, *file)
	}
	if *dir != "" {
		entries, err := os.ReadDir(*dir)
		if err != nil {
			logger.Warning("reading %s: %v", *dir, err)
			os.Exit(1)
		}
		for _, e := range entries {
			if !e.IsDir() && (filepath.Ext(e.Name()) == ".yaml" || filepath.Ext(e.Name()) == ".yml") {
				paths = append(paths, filepath.Join(*dir, e.Name()))
			}
		}
	}

	reports := make([]string, len(paths))
	g := new(errgroup.Group)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			logger.Progress("processing %s", path)
			text, err := processFile(path)
			if err != nil {
				return err
			}
			reports[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Warning("%v", err)
		os.Exit(1)
	}

	for _, text := range reports {
		os.Stdout.WriteString(text)
	}
}

// processFile loads a single function description and renders its
// analysis report. It is safe to call concurrently: each call owns its
// own TypeSystem and Function.
func processFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var spec ProgramSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return "", err
	}

	ts := ir.NewTypeSystem()
	fn, err := buildFunction(ts, spec)
	if err != nil {
		return "", err
	}

	return report(fn), nil
}
