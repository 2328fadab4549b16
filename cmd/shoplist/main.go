package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/idilsaglam/shoplist/internal/cli"
	"github.com/idilsaglam/shoplist/internal/config"
	"github.com/idilsaglam/shoplist/internal/liststore"
	"github.com/idilsaglam/shoplist/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Root flags (apply to every subcommand)
	var c config.Config
	flag.BoolVar(&c.Group, "group", false, "group ls output by to-buy/purchased")
	flag.StringVar(&c.Backend, "store", "", "storage backend: json, sqlite, mysql or mem")
	flag.StringVar(&c.DataDir, "data-dir", "", "directory for json/sqlite storage (default ~/.shoplist)")
	flag.StringVar(&c.DSN, "dsn", "", "MySQL DSN for -store mysql")
	flag.StringVar(&c.Theme, "theme", "", "classic, neon or mono")
	flag.Usage = cli.PrintHelp
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		return 2
	}

	c, err := config.Resolve(c)
	if err != nil {
		ui.Fail("config: " + err.Error())
		return 2
	}
	ui.SetTheme(c.Theme)

	kv, closeKV, err := cli.OpenKV(c)
	if err != nil {
		ui.Fail("open store: " + err.Error())
		return 1
	}
	defer closeKV()

	// The terminal going away counts as a pause: the tui exits and the list is saved.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	code := cli.Run(ctx, liststore.New(kv), args, cli.Options{Group: c.Group})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	return code
}
