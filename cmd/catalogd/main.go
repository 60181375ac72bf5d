package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/talkincode/productcatalog/config"
	"github.com/talkincode/productcatalog/internal/api"
	"github.com/talkincode/productcatalog/internal/app"
	"github.com/talkincode/productcatalog/internal/webserver"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	version  = "develop"
	h        = flag.Bool("h", false, "help usage")
	showVer  = flag.Bool("v", false, "show version")
	conffile = flag.String("c", "", "config yaml file")
	initdb   = flag.Bool("initdb", false, "drop and recreate the productos table, then seed it (destroys data)")
)

// @title Products API
// @version 1.0.0
// @description API for managing products
// @BasePath /
func main() {
	flag.Parse()

	if *showVer {
		fmt.Println(version)
		return
	}
	if *h {
		flag.Usage()
		return
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run starts the service; main owns the exit code
func run() error {
	cfg, err := config.LoadConfig(*conffile)
	if err != nil {
		return err
	}
	if cfg.Logger.FileEnable || strings.EqualFold(cfg.Database.Type, "sqlite") {
		if err := cfg.InitDirs(); err != nil {
			return err
		}
	}

	application := app.NewApplication(cfg)
	defer application.Release()
	if err := application.Init(cfg); err != nil {
		zap.L().Error("error initializing application", zap.Error(err))
		return err
	}

	if *initdb {
		if err := application.InitDb(); err != nil {
			zap.L().Error("database reset failed", zap.Error(err))
			return err
		}
		if err := application.SeedProducts(); err != nil {
			zap.L().Error("database seed failed", zap.Error(err))
			return err
		}
		return nil
	}

	// the schema must be ready before the port is bound
	if err := application.InitSchema(); err != nil {
		zap.L().Error("error initializing database", zap.Error(err))
		return err
	}

	server := webserver.NewWebServer(application)
	api.Register(server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		zap.L().Info("shutting down web server")
		return server.Shutdown(context.Background())
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("server stopped with error", zap.Error(err))
		return err
	}
	return nil
}
