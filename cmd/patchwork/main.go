// patchwork CLI - serves a patchable runtime and drives a running one
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/chazu/patchwork/config"
	"github.com/chazu/patchwork/demo"
	"github.com/chazu/patchwork/host"
	"github.com/chazu/patchwork/server"
	"github.com/chazu/patchwork/telemetry"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: patchwork <command> [options] [args...]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  serve                         Run the demo runtime with the patch service\n")
	fmt.Fprintf(w, "  bundles                       List bundles with patches\n")
	fmt.Fprintf(w, "  list [bundle]                 List patches\n")
	fmt.Fprintf(w, "  show <key>                    Show one patch\n")
	fmt.Fprintf(w, "  return <key> <value>          Patch a return value\n")
	fmt.Fprintf(w, "  args <key> <index=value>...   Patch arguments\n")
	fmt.Fprintf(w, "  unpatch <key>                 Remove a patch\n")
	fmt.Fprintf(w, "  enable <bundle>               Enable a bundle's patches\n")
	fmt.Fprintf(w, "  disable <bundle>              Disable a bundle's patches\n")
	fmt.Fprintf(w, "  clear                         Remove every patch\n")
	fmt.Fprintf(w, "  export [bundle]               Print the patch document\n")
	fmt.Fprintf(w, "  apply <file|->                Apply a patch document\n")
	fmt.Fprintf(w, "  watch                         Print patch change events\n")
	fmt.Fprintf(w, "\nValues are JSON; anything that is not valid JSON is sent as a string.\n")
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  patchwork serve\n")
	fmt.Fprintf(w, "  patchwork return '-[Cart isEmpty]' false\n")
	fmt.Fprintf(w, "  patchwork args '-[Cart applyDiscount:]' 0=0.25\n")
	fmt.Fprintf(w, "  patchwork export com.example.shop > shop.json\n")
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return flag.ErrHelp
	}
	cmd, rest := args[0], args[1:]

	flags := flag.NewFlagSet("patchwork "+cmd, flag.ContinueOnError)
	flags.SetOutput(stderr)
	configDir := flags.String("config", "", "Directory holding patchwork.toml (default: search upward from the working directory)")
	addr := flags.String("addr", "", "Patch service address (default from config)")
	replace := flags.Bool("replace", false, "Replace an existing patch on the method")
	noDemo := flags.Bool("no-demo", false, "Serve an empty runtime")
	timeout := flags.Duration("timeout", 10*time.Second, "Timeout for client calls")

	switch cmd {
	case "-h", "--help", "help":
		usage(stdout)
		return nil
	}
	flagArgs, positional := splitAtMethodKey(rest)
	if err := flags.Parse(flagArgs); err != nil {
		return err
	}
	positional = append(append([]string{}, flags.Args()...), positional...)

	cfg, err := loadConfig(*configDir)
	if err != nil {
		return err
	}
	cfg.ConfigureLogging()
	if *addr == "" {
		*addr = cfg.Server.Addr
	}

	shutdownTracing, err := telemetry.Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			fmt.Fprintf(stderr, "flush traces: %v\n", err)
		}
	}()

	if cmd == "serve" {
		return serve(cfg, *addr, !*noDemo, stdout)
	}

	ctx := context.Background()
	if cmd != "watch" {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}
	c := server.NewClient(nil, baseURL(*addr))
	return runClient(ctx, c, cmd, positional, *replace, stdout)
}

// splitAtMethodKey cuts args before the first method key, since keys such
// as -[Cart total] would otherwise parse as flags.
func splitAtMethodKey(args []string) ([]string, []string) {
	for i, a := range args {
		if strings.HasPrefix(a, "-[") || strings.HasPrefix(a, "+[") {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

func loadConfig(dir string) (*config.Config, error) {
	if dir != "" {
		return config.Load(dir)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working dir: %w", err)
	}
	return config.FindAndLoad(wd)
}

// serve runs the host and patch service until SIGINT or SIGTERM.
func serve(cfg *config.Config, addr string, withDemo bool, stdout io.Writer) error {
	h := host.New(cfg, nil)
	if withDemo {
		demo.Register(h.Runtime())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := h.Start(ctx); err != nil {
		h.Close()
		return err
	}
	defer h.Close()

	if withDemo {
		lines, err := demo.Describe(h.Runtime())
		if err == nil {
			for _, l := range lines {
				fmt.Fprintln(stdout, l)
			}
		}
	}

	srv := server.New(h.Manager())
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe(addr) }()
	fmt.Fprintf(stdout, "patchwork serving on %s\n", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Stop(shutdown)
}
