package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-user-lists/internal/adapter"
	"github.com/MKhiriev/go-user-lists/internal/client"
	"github.com/MKhiriev/go-user-lists/internal/config"
	"github.com/MKhiriev/go-user-lists/internal/logger"
	"github.com/MKhiriev/go-user-lists/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	flag.CommandLine.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <command>\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), client.Usage)
	}
	verbose := flag.Bool("v", false, "Verbose logging")
	version := flag.Bool("version", false, "Print build info and exit")

	cfg, args, err := config.GetClientConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *version {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := logger.NewClientLogger(os.Stderr, level)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app := client.NewApp(serverAdapter, *cfg, os.Stdout, log)
	if err = app.Run(context.Background(), args); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
