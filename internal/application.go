package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	botService := service.NewBotService(logger)
	roundManager := usecase.NewRoundManager(logger, botService, conf.Console.FirstTurn)

	var outputOpts []termenv.OutputOption
	if conf.Console.NoColor {
		outputOpts = append(outputOpts, termenv.WithProfile(termenv.Ascii))
	}

	// run console game
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console game", "firstTurn", conf.Console.FirstTurn)
		consoleServer := console.New(logger, roundManager, os.Stdin, os.Stdout, outputOpts...)
		consoleErrCh <- consoleServer.Start(ctx)
	}()

	select {
	case err := <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console game error: %w", err)
		}
		log.Info("Console game finished")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
