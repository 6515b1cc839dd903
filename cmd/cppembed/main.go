// Package main provides the entry point for the cppembed generator.
// It parses command-line arguments, loads the optional manifest, and
// orchestrates discovery, encoding and document generation.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/isseis/go-cpp-embed/internal/cmdcommon"
	"github.com/isseis/go-cpp-embed/internal/config"
	"github.com/isseis/go-cpp-embed/internal/discovery"
	"github.com/isseis/go-cpp-embed/internal/encoding"
	"github.com/isseis/go-cpp-embed/internal/generator"
	"github.com/isseis/go-cpp-embed/internal/logging"
)

// File permissions for created output directories
const outputDirPerm = 0o755

var (
	outputDir   = flag.String("d", "", "directory where to save the generated files (default: current directory)")
	baseName    = flag.String("o", cmdcommon.DefaultOutputBase, "base name for the generated .h/.cpp files")
	namespace   = flag.String("ns", "", "namespace to wrap the generated code in")
	styleName   = flag.String("style", encoding.StyleStringLiteral.String(), "literal style: string or array")
	rowWidth    = flag.Int("row-width", encoding.DefaultRowWidth, "byte constants per row for the array style")
	strictNames = flag.Bool("strict-names", false, "fail when two inputs share a file name")
	verify      = flag.Bool("verify", false, "decode every literal after encoding as a self check")
	configPath  = flag.String("config", "", "path to TOML manifest")
	logLevel    = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	showVersion = flag.Bool("version", false, "print version and exit")
)

func main() {
	runID := logging.GenerateRunID()
	if err := run(runID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(runID string) error {
	if len(os.Args) == 1 {
		cmdcommon.PrintUsage(os.Stdout)
		return nil
	}

	flag.Usage = func() { cmdcommon.PrintUsage(os.Stderr) }
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", cmdcommon.Name, cmdcommon.Version)
		return nil
	}

	if err := logging.Setup(*logLevel, os.Stderr); err != nil {
		return err
	}
	slog.Info("starting generation", "run_id", runID, "version", cmdcommon.Version)

	var manifest *config.Manifest
	if *configPath != "" {
		var err error
		manifest, err = config.NewLoader().Load(*configPath)
		if err != nil {
			return err
		}
	}

	s, err := resolveSettings(manifest, setFlags(), flag.Args())
	if err != nil {
		return err
	}

	files, err := discovery.New().Discover(s.inputs)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		slog.Warn("no input file to process, will generate empty output")
	} else {
		slog.Info("ready to process", "files", len(files))
	}

	if s.outputDir == "" {
		s.outputDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine output directory: %w", err)
		}
		slog.Info("using current directory as output dir", "dir", s.outputDir)
	} else if err := os.MkdirAll(s.outputDir, outputDirPerm); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", s.outputDir, err)
	}

	assembler := generator.New(generator.Options{
		OutputDir:   s.outputDir,
		BaseName:    s.baseName,
		Namespace:   s.namespace,
		Style:       s.style,
		RowWidth:    s.rowWidth,
		StrictNames: s.strictNames,
		Verify:      s.verify,
	})

	reg, err := assembler.BuildRegistry(files)
	if err != nil {
		return err
	}
	if err := assembler.Generate(reg); err != nil {
		return err
	}

	slog.Info("generation complete",
		"run_id", runID,
		"files", reg.Len(),
		"header", assembler.HeaderPath(),
		"body", assembler.BodyPath())
	return nil
}

// setFlags returns the names of flags explicitly set on the command
// line, used to decide flag-vs-manifest precedence.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// settings is the fully resolved configuration of one run.
type settings struct {
	outputDir   string
	baseName    string
	namespace   string
	style       encoding.Style
	rowWidth    int
	strictNames bool
	verify      bool
	inputs      []string
}

// resolveSettings merges flag values over the manifest. Explicitly set
// flags win; otherwise a non-zero manifest value wins over the flag
// default.
func resolveSettings(manifest *config.Manifest, set map[string]bool, args []string) (settings, error) {
	s := settings{
		outputDir:   *outputDir,
		baseName:    *baseName,
		namespace:   *namespace,
		rowWidth:    *rowWidth,
		strictNames: *strictNames,
		verify:      *verify,
		inputs:      args,
	}
	styleValue := *styleName

	if manifest != nil {
		if !set["d"] && manifest.Output.Dir != "" {
			s.outputDir = manifest.Output.Dir
		}
		if !set["o"] && manifest.Output.BaseName != "" {
			s.baseName = manifest.Output.BaseName
		}
		if !set["ns"] && manifest.Output.Namespace != "" {
			s.namespace = manifest.Output.Namespace
		}
		if !set["style"] && manifest.Output.Style != "" {
			styleValue = manifest.Output.Style
		}
		if !set["row-width"] && manifest.Output.RowWidth != 0 {
			s.rowWidth = manifest.Output.RowWidth
		}
		if !set["strict-names"] {
			s.strictNames = manifest.StrictNames
		}
		if !set["verify"] {
			s.verify = manifest.Verify
		}
		if len(args) == 0 {
			s.inputs = manifest.Inputs
		}
	}

	style, err := encoding.ParseStyle(styleValue)
	if err != nil {
		return settings{}, err
	}
	s.style = style
	return s, nil
}
