package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jcorbin/yafi/internal/logio"
)

func main() {
	var log logio.Logger
	log.SetOutput(os.Stderr)
	log.ErrorIf(runMain(context.Background(), os.Args[1:], os.Stdin, os.Stdout, &log))
	os.Exit(log.ExitCode())
}

func runMain(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, log *logio.Logger) error {
	flags := flag.NewFlagSet("yafi", flag.ContinueOnError)

	var (
		cfg        = defaultConfig()
		flagCfg    = defaultConfig()
		configPath string
		timeout    time.Duration
		noStdin    bool
		inspect    string
	)
	flags.StringVar(&configPath, "config", "", "read configuration from a TOML file")
	flags.IntVar(&flagCfg.StackSize, "stack", flagCfg.StackSize, "data stack capacity in cells")
	flags.IntVar(&flagCfg.ReturnStackSize, "rstack", flagCfg.ReturnStackSize, "return stack capacity in cells")
	flags.IntVar(&flagCfg.MemoryCells, "mem", flagCfg.MemoryCells, "main memory size in cells")
	flags.BoolVar(&flagCfg.Trace, "trace", false, "enable trace logging")
	flags.BoolVar(&flagCfg.Quiet, "quiet", false, "no banner, prompt, or stack echo")
	flags.StringVar(&flagCfg.CoreFile, "core", "", "write a core file here after a fatal error")
	flags.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flags.BoolVar(&noStdin, "no-stdin", false, "do not read standard input after any files")
	flags.StringVar(&inspect, "inspect", "", "dump a core file and exit")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if inspect != "" {
		return inspectCoreFile(inspect, stdout)
	}

	if configPath != "" {
		if err := loadConfig(configPath, &cfg); err != nil {
			return err
		}
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "stack":
			cfg.StackSize = flagCfg.StackSize
		case "rstack":
			cfg.ReturnStackSize = flagCfg.ReturnStackSize
		case "mem":
			cfg.MemoryCells = flagCfg.MemoryCells
		case "trace":
			cfg.Trace = flagCfg.Trace
		case "quiet":
			cfg.Quiet = flagCfg.Quiet
		case "core":
			cfg.CoreFile = flagCfg.CoreFile
		}
	})
	if err := cfg.validate(); err != nil {
		return err
	}

	opts := []VMOption{
		cfg.options(),
		WithOutput(stdout),
	}
	if cfg.Trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	var files []*os.File
	for _, name := range append(cfg.Files, flags.Args()...) {
		f, err := os.Open(name)
		if err != nil {
			for _, f := range files {
				f.Close()
			}
			return err
		}
		files = append(files, f)
		opts = append(opts, WithInput(f))
	}
	if !noStdin {
		opts = append(opts, WithInput(NamedReader("<stdin>", stdin)))
	}

	vm := New(opts...)
	defer vm.Close()

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := vm.Run(ctx); err != nil {
		return fmt.Errorf("fatal: %w", err)
	}
	return nil
}
