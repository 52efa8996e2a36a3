package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"ascend/internal/config"
	"ascend/internal/i18n"
	"ascend/internal/logger"
)

type appState struct {
	cfg    *config.Config
	logger *zap.Logger
}

func state(c *cli.Context) *appState {
	return c.App.Metadata["state"].(*appState)
}

func lang(c *cli.Context) i18n.Language {
	return i18n.ParseLanguage(state(c).cfg.Lang)
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "ascend",
		HelpName: "ascend",
		Usage:    "periodized strength training programs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "file with ASCEND_* settings, .env in the working directory by default",
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "output language (ru, en)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn, error",
			},
		},
		Commands: []*cli.Command{
			generateCommand(),
			compareCommand(),
			estimateCommand(),
			watchCommand(),
			botCommand(),
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			if rt, ok := c.App.Metadata["state"].(*appState); ok {
				rt.logger.Error(c.App.Name, zap.Error(err))
				return
			}
			_, _ = c.App.ErrWriter.Write([]byte(err.Error() + "\n"))
		},
		Before: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if c.IsSet("lang") {
				cfg.Lang = string(i18n.ParseLanguage(c.String("lang")))
			}
			if c.IsSet("log-level") {
				cfg.LogLevel = c.String("log-level")
			}
			if err := i18n.Check(); err != nil {
				return err
			}

			log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			if c.App.Metadata == nil {
				c.App.Metadata = make(map[string]interface{})
			}
			c.App.Metadata["state"] = &appState{cfg: cfg, logger: log}
			return nil
		},
		After: func(c *cli.Context) error {
			if rt, ok := c.App.Metadata["state"].(*appState); ok {
				_ = rt.logger.Sync()
			}
			return nil
		},
	}
}

// loadConfig читает .env из рабочего каталога, если файл не указан явно.
// Явно указанный файл обязан существовать.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if !c.IsSet("env-file") {
		return config.Load()
	}
	path := c.String("env-file")
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("--env-file: %w", err)
	}
	return config.LoadFile(path)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		stop()
		os.Exit(1)
	}
}
