// Command pageroutes serves a directory of html/template pages, one route per
// file under ./pages/, with a Home route at "/".
//
//	pageroutes -dir ./site            # serve
//	pageroutes -dir ./site -print     # list the route table
//	pageroutes -dir ./site -check     # validate and exit
//	pageroutes -dir ./site -suffix .templ -gen routes_gen.go -gen-import example.com/site/pages
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackielii/pageroutes"
	"github.com/jackielii/pageroutes/internal/config"
	"github.com/jackielii/pageroutes/internal/gen"
	"github.com/jackielii/pageroutes/internal/logging"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "pageroutes:", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	print      bool
	check      bool
	genOut     string
	genPackage string
	genImport  string
}

func parseFlags(args []string, stderr io.Writer) (*options, *config.Config, error) {
	fset := flag.NewFlagSet("pageroutes", flag.ContinueOnError)
	fset.SetOutput(stderr)
	var (
		opts     options
		override config.Config
	)
	fset.StringVar(&opts.configPath, "config", config.BaseConfigFile, "Configuration file")
	fset.StringVar(&override.Server.Addr, "addr", "", "Address to listen on")
	fset.StringVar(&override.Server.Router, "router", "", "Router implementation: std or chi")
	fset.StringVar(&override.Pages.Dir, "dir", "", "Site directory containing pages/")
	fset.StringVar(&override.Pages.Suffix, "suffix", "", "Page file extension")
	fset.StringVar(&override.Pages.History, "history", "", "History mode: web or hash")
	lenient := fset.Bool("lenient", false, "Keep non-conforming pages as the empty route")
	fset.StringVar((*string)(&override.Logging.Level), "log-level", "", "Log level: debug, info, warn or error")
	fset.StringVar((*string)(&override.Logging.Format), "log-format", "", "Log format: text or json")
	fset.BoolVar(&opts.print, "print", false, "Print the route table and exit")
	fset.BoolVar(&opts.check, "check", false, "Validate the route table and exit")
	fset.StringVar(&opts.genOut, "gen", "", "Write a Go page registry to this file and exit")
	fset.StringVar(&opts.genPackage, "gen-package", "main", "Package name of the generated registry")
	fset.StringVar(&opts.genImport, "gen-import", "", "Import path of the templ pages package")
	if err := fset.Parse(args); err != nil {
		return nil, nil, err
	}
	// only an explicit -lenient overrides the file, so -lenient=false works
	fset.Visit(func(f *flag.Flag) {
		if f.Name == "lenient" {
			override.Pages.Lenient = lenient
		}
	})

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Finalize(); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	// flags win over the file and the environment
	cfg.Merge(&override)
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("flags: %w", err)
	}
	return &opts, cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	logger := logging.New(stderr, &cfg.Logging)
	site := os.DirFS(cfg.Pages.Dir)

	if opts.genOut != "" {
		return generate(site, cfg, opts)
	}

	table, err := buildTable(site, cfg)
	if err != nil {
		return err
	}
	switch {
	case opts.print:
		_, err := io.WriteString(stdout, pageroutes.PrintRoutes(table, cfg.Pages.HistoryMode()))
		return err
	case opts.check:
		fmt.Fprintf(stdout, "ok: %d routes\n", table.Len())
		return nil
	}

	handler, err := newHandler(table, cfg, logger)
	if err != nil {
		return err
	}
	return serve(ctx, handler, cfg, logger)
}

func generate(site fs.FS, cfg *config.Config, opts *options) error {
	f, err := os.Create(opts.genOut)
	if err != nil {
		return err
	}
	err = gen.Generate(f, site, gen.Options{
		Package:     opts.genPackage,
		PagesImport: opts.genImport,
		Convention:  cfg.Pages.Convention(),
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(opts.genOut)
	}
	return err
}

func serve(ctx context.Context, handler http.Handler, cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: handler}
	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Server.Addr, "router", cfg.Server.Router, "history", cfg.Pages.History)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
