// Command staticassert-gen generates the fallback-tier assertion
// declarations for source files carrying //buildcheck:assert directives.
//
// It is designed to sit behind go:generate:
//
//	//go:generate staticassert-gen layout.go
//
// Configuration comes from .buildcheck.yml when present, overridden by
// flags. Without -w the generated source is printed to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/LerianStudio/lib-buildcheck/buildcheck/staticassert/gen"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "staticassert-gen:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("staticassert-gen", flag.ContinueOnError)

	configPath := flags.String("config", ".buildcheck.yml", "configuration file; defaults apply when absent")
	mode := flags.String("mode", "", "identifier mode: counter or line (overrides config)")
	suffix := flags.String("suffix", "", "generated file suffix (overrides config)")
	write := flags.Bool("w", false, "write generated files beside their sources instead of stdout")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if flags.NArg() == 0 {
		return fmt.Errorf("no source files given")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	if *mode != "" {
		cfg.Mode = gen.Mode(*mode)
	}

	if *suffix != "" {
		cfg.Suffix = *suffix
	}

	for _, filename := range flags.Args() {
		result, err := gen.Process(filename, cfg)
		if err != nil {
			return err
		}

		if result == nil {
			continue
		}

		if *write {
			if err := result.Write(); err != nil {
				return err
			}

			continue
		}

		fmt.Printf("// %s\n%s", result.OutputPath, result.Source)
	}

	return nil
}

// loadConfig treats a missing default config file as defaults, but a
// missing explicitly-passed file as an error.
func loadConfig(path string) (gen.Config, error) {
	cfg, err := gen.LoadConfig(path)
	if err != nil && errors.Is(err, os.ErrNotExist) && path == ".buildcheck.yml" {
		return gen.DefaultConfig(), nil
	}

	return cfg, err
}
