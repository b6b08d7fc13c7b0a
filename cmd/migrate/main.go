package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vfg2006/campaign-performance-api/internal/config"
	"github.com/vfg2006/campaign-performance-api/pkg/log"
)

func main() {
	cfg, notes, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro ao carregar configuração: %v\n", err)
		os.Exit(1)
	}

	logger, closer := log.New(cfg.Log.LoggerOptions())
	for _, note := range notes {
		logger.Debug(note)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := NewCLIApp(logger, connectPostgres(cfg))
	err = app.Execute(ctx, os.Args[1:])

	stop()
	_ = closer.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}
