// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/datablock"
)

func main() {
	app := &cli.App{
		Name:  "blockcat",
		Usage: "Load parameter files into typed data blocks and inspect them",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "dump",
				Usage:     "Print the typed contents of each parameter file",
				ArgsUsage: "FILE...",
				Action:    dumpCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of files to load concurrently",
						Value: defaultWorkers(),
					},
				},
			},
			{
				Name:      "fingerprint",
				Usage:     "Print a content digest of each parameter file's block",
				ArgsUsage: "FILE...",
				Action:    fingerprintCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of files to load concurrently",
						Value: defaultWorkers(),
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func defaultWorkers() int {
	n := runtime.NumCPU() / 2
	if n < 1 {
		n = 1
	}
	return n
}

// loadResult is one file's loaded block, or the failure that prevented it.
type loadResult struct {
	path  string
	block *datablock.DataBlock
	err   error
}

// loadAll loads each file into its own DataBlock. Blocks are independent per
// file, so the pool workers never share a handle; that is the supported
// concurrency model for blocks.
func loadAll(paths []string, workers int) ([]loadResult, error) {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	results := make([]loadResult, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			block, loadErr := LoadFile(path)
			results[i] = loadResult{path: path, block: block, err: loadErr}
		}); err != nil {
			wg.Done()
			results[i] = loadResult{path: path, err: err}
		}
	}
	wg.Wait()

	return results, nil
}

func runOverFiles(c *cli.Context, emit func(res loadResult) error) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("no parameter files given")
	}

	results, err := loadAll(paths, c.Int("workers"))
	if err != nil {
		return err
	}
	return emitAll(results, emit)
}

// emitAll runs emit over each successfully loaded block and closes every
// block before returning, including when emit fails partway through.
func emitAll(results []loadResult, emit func(res loadResult) error) error {
	defer func() {
		for _, res := range results {
			res.block.Close()
		}
	}()

	var failed bool
	for _, res := range results {
		if res.err != nil {
			failed = true
			slog.Error("loading parameter file", "path", res.path, "error", res.err)
			continue
		}
		if err := emit(res); err != nil {
			return err
		}
	}
	if failed {
		return fmt.Errorf("some parameter files failed to load")
	}
	return nil
}

func dumpCommand(c *cli.Context) error {
	multiple := c.Args().Len() > 1
	return runOverFiles(c, func(res loadResult) error {
		if multiple {
			fmt.Printf("# %s\n", res.path)
		}
		text, err := renderBlock(res.block)
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	})
}

func fingerprintCommand(c *cli.Context) error {
	return runOverFiles(c, func(res loadResult) error {
		digest, err := fingerprintBlock(res.block)
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s\n", digest, res.path)
		return nil
	})
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
