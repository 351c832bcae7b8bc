// Command homotopy decomposes a world document into homotopy regions and
// prints the result.
//
// Usage:
//
//	homotopy [flags] world.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/mlrrts/homotopy/homotopy"
	"github.com/mlrrts/homotopy/worldfile"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetPrefix("homotopy: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg := defaultConfig()
	fs := flag.NewFlagSet("homotopy", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file applied before flags")
	seed := fs.Int64("seed", cfg.Seed, "random seed for key points and base point search")
	attempts := fs.Int("base-attempts", cfg.MaxBasePointAttempts, "maximum base point candidates")
	keyAttempts := fs.Int("key-attempts", cfg.KeyPointAttempts, "maximum key point samples per obstacle")
	parallel := fs.Int("parallel", cfg.Parallelism, "rays subdivided concurrently")
	output := fs.String("o", "", "write the result to this file instead of stdout")
	format := fs.String("format", cfg.Format, "output format: yaml or json")
	metadata := fs.Bool("metadata", false, "only export the workspace size")
	verbose := fs.Bool("v", false, "log decomposition progress")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected one world document, got %d arguments", fs.NArg())
	}

	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath, cfg); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "base-attempts":
			cfg.MaxBasePointAttempts = *attempts
		case "key-attempts":
			cfg.KeyPointAttempts = *keyAttempts
		case "parallel":
			cfg.Parallelism = *parallel
		case "o":
			cfg.Output = *output
		case "format":
			cfg.Format = *format
		case "v":
			cfg.Verbose = *verbose
		}
	})

	var outFormat worldfile.Format
	switch cfg.Format {
	case "yaml", "yml":
		outFormat = worldfile.YAML
	case "json":
		outFormat = worldfile.JSON
	default:
		return fmt.Errorf("unknown output format %q", cfg.Format)
	}

	world, err := worldfile.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	ws, err := world.Workspace()
	if err != nil {
		return err
	}

	if *metadata {
		return writeOutput(cfg.Output, stdout, func(out io.Writer) error {
			return worldfile.ExportMetadata(out, ws)
		})
	}

	opts := cfg.options()
	opts.BasePoint = world.Base()
	if cfg.Verbose {
		opts.Logger = log.Default()
	}
	d, err := homotopy.Decompose(ctx, ws, world.Polygons(), opts)
	if err != nil {
		return err
	}
	log.Printf("%s: %d region(s) around (%g, %g)", fs.Arg(0), len(d.Regions), d.BasePoint.X, d.BasePoint.Y)
	result := worldfile.NewResult(world.ID, d)
	return writeOutput(cfg.Output, stdout, func(out io.Writer) error {
		return result.Encode(out, outFormat)
	})
}

// writeOutput runs write against path, or stdout when path is empty. The
// file is only created once there is something to write.
func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
