// Command langdetect prints the language of text read from args or stdin
//
//	langdetect -profiles ./profiles "Bonjour tout le monde"
//	echo "Hallo Welt" | langdetect -probs -seed 42
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"langdetect/internal/core/detector"
	"langdetect/internal/core/registry"
	"langdetect/internal/platform/config"
	"langdetect/internal/platform/logger"
	profilesmod "langdetect/internal/services/profiles/module"
	"langdetect/internal/services/profiles/repo"
	"langdetect/internal/services/profiles/service"
)

func main() {
	logger.Init(logger.FromEnv())
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	opts := profilesmod.FromConfig(config.New())

	fs := flag.NewFlagSet("langdetect", flag.ContinueOnError)
	var (
		dir   = fs.String("profiles", opts.Dir, "directory of <lang>.json profiles")
		seed  = fs.String("seed", "", "fix the random stream (uint64)")
		probs = fs.Bool("probs", false, "print the ranked list instead of the best language")
		langs = fs.Bool("langs", false, "list the loaded languages and exit")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := opts.Detector
	if *seed != "" {
		v, err := strconv.ParseUint(*seed, 10, 64)
		if err != nil {
			return fmt.Errorf("bad -seed: %w", err)
		}
		cfg = cfg.WithSeed(v)
	}

	reg, err := service.LoadRegistry(ctx, repo.NewDir(*dir), registry.WithPruneFloor(opts.PruneFloor))
	if err != nil {
		return err
	}
	f, err := detector.NewFactory(reg, cfg)
	if err != nil {
		return err
	}

	if *langs {
		for _, l := range f.Languages() {
			if _, err := fmt.Fprintln(stdout, l); err != nil {
				return err
			}
		}
		return nil
	}

	text := strings.Join(fs.Args(), " ")
	if text == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		text = string(b)
	}

	d := f.Create()
	d.Append(text)
	if *probs {
		ranked, err := d.Probabilities()
		if err != nil {
			return err
		}
		parts := make([]string, len(ranked))
		for i, l := range ranked {
			parts[i] = l.String()
		}
		_, err = fmt.Fprintf(stdout, "[%s]\n", strings.Join(parts, ", "))
		return err
	}
	lang, err := d.Detect()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, lang)
	return err
}
