// Package main runs the sable browser automation server: an MCP server over
// stdio that drives the system default browser through its scripting
// interface.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sable-dev/sable/pkg/browser"
	"github.com/sable-dev/sable/pkg/config"
	"github.com/sable-dev/sable/pkg/logging"
	"github.com/sable-dev/sable/pkg/osa"
	toolsbrowser "github.com/sable-dev/sable/pkg/tools/browser"
)

const (
	serverName = "sable"
	version    = "0.1.0"
)

func main() {
	configPath := flag.String("config", "", "path to the config file (default ~/.config/sable/config.yaml)")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s v%s\n", serverName, version)
		return
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serverName, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	if configPath == "" {
		if p, err := config.DefaultPath(); err == nil {
			configPath = p
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, logErr := logging.New("server")
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serverName, logErr)
	}
	defer log.Close()
	log.Infof("starting %s v%s (log: %s)", serverName, version, log.Path())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Infof("shutting down")
		cancel()
	}()

	channel := osa.NewChannel(osa.ExecCommander{})
	browserLog, _ := logging.New("browser")
	defer browserLog.Close()
	session := browser.NewSession(channel, cfg, browserLog)

	// Best effort: leave no orphaned window behind on shutdown.
	defer func() {
		if session.Active() {
			if err := session.Close(context.Background()); err != nil {
				log.Warnf("closing session on shutdown: %v", err)
			}
		}
	}()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, nil)
	toolsLog, _ := logging.New("tools")
	defer toolsLog.Close()
	toolsbrowser.New(session, toolsLog).Register(server)

	log.Infof("ready, serving on stdio")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
