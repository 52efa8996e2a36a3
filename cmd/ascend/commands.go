package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"ascend/internal/bot"
	"ascend/internal/excel"
	"ascend/internal/formatter"
	"ascend/internal/input"
	"ascend/internal/models"
	"ascend/internal/training"
	"ascend/internal/watcher"
)

func requestFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "YAML/JSON request file; without it the chat format is read from stdin",
		},
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   "periodization type (linear, wave, block), overrides the request",
		},
		&cli.IntFlag{
			Name:    "weeks",
			Aliases: []string{"w"},
			Usage:   "number of weeks, overrides the request",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output file, stdout by default",
		},
	}
}

// loadRequest читает запрос из файла или stdin и применяет флаги
func loadRequest(c *cli.Context) (*models.ProgramRequest, error) {
	formula := training.Formula(state(c).cfg.OneRMFormula)

	var (
		req *models.ProgramRequest
		err error
	)
	if path := c.String("input"); path != "" {
		req, err = input.Load(path, formula)
	} else {
		var data []byte
		data, err = io.ReadAll(c.App.Reader)
		if err != nil {
			return nil, fmt.Errorf("чтение stdin: %w", err)
		}
		req, err = training.Parse(string(data), formula)
	}
	if err != nil {
		return nil, err
	}

	if c.IsSet("type") {
		// Неизвестный тип отклонит генератор
		req.Type, _ = models.ParsePeriodizationType(c.String("type"))
	}
	if c.IsSet("weeks") {
		req.Weeks = c.Int("weeks")
	}
	return req, nil
}

func writeOutput(c *cli.Context, data []byte) error {
	if path := c.String("output"); path != "" {
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("ошибка записи %s: %w", path, err)
		}
		state(c).logger.Info("результат записан", zap.String("path", path))
		return nil
	}
	_, err := c.App.Writer.Write(data)
	return err
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "build a program",
		Flags: append(requestFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "text, json or xlsx",
			},
		),
		Action: func(c *cli.Context) error {
			rt := state(c)
			req, err := loadRequest(c)
			if err != nil {
				return err
			}
			program, err := training.GenerateRequest(req)
			if err != nil {
				return err
			}
			rt.logger.Debug("программа составлена",
				zap.String("type", string(program.Type)),
				zap.Int("weeks", program.TotalWeeks),
				zap.Int("days", len(req.SelectedDays)),
			)

			switch c.String("format") {
			case "text":
				text := formatter.NewTextFormatter(lang(c)).FormatProgram(program, req.SelectedDays)
				return writeOutput(c, []byte(text))
			case "json":
				data, err := json.MarshalIndent(program, "", "  ")
				if err != nil {
					return err
				}
				return writeOutput(c, append(data, '\n'))
			case "xlsx":
				exporter := excel.NewExporter(rt.cfg.OutputDir, lang(c))
				var path string
				if out := c.String("output"); out != "" {
					path, err = exporter.SaveAs(out, program, req.SelectedDays)
				} else {
					path, err = exporter.Save(program, req.SelectedDays)
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(c.App.Writer, path)
				return nil
			default:
				return fmt.Errorf("неизвестный формат %q: ожидается text, json или xlsx", c.String("format"))
			}
		},
	}
}

func compareCommand() *cli.Command {
	return &cli.Command{
		Name:  "compare",
		Usage: "build the program with every periodization type and summarize intensities",
		Flags: requestFlags(),
		Action: func(c *cli.Context) error {
			req, err := loadRequest(c)
			if err != nil {
				return err
			}
			programs, err := training.GenerateAll(c.Context, req.Weeks, req.ExercisesByDay, req.SelectedDays)
			if err != nil {
				return err
			}
			return writeOutput(c, []byte(formatter.NewTextFormatter(lang(c)).FormatComparison(programs)))
		},
	}
}

func estimateCommand() *cli.Command {
	return &cli.Command{
		Name:  "estimate",
		Usage: "estimate a one-rep max from a set",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:     "weight",
				Required: true,
				Usage:    "weight lifted, kg",
			},
			&cli.IntFlag{
				Name:     "reps",
				Required: true,
				Usage:    "repetitions performed",
			},
			&cli.StringFlag{
				Name:  "formula",
				Usage: "brzycki, epley or average; all of them by default",
			},
		},
		Action: func(c *cli.Context) error {
			weight, reps := c.Float64("weight"), c.Int("reps")
			if weight <= 0 || reps <= 0 {
				return fmt.Errorf("вес и повторы должны быть положительными")
			}

			formulas := []training.Formula{training.FormulaBrzycki, training.FormulaEpley, training.FormulaAverage}
			if c.IsSet("formula") {
				f, err := training.ParseFormula(c.String("formula"))
				if err != nil {
					return err
				}
				formulas = []training.Formula{f}
			}

			var sb strings.Builder
			for _, f := range formulas {
				fmt.Fprintf(&sb, "%s: %s кг\n", training.FormulaName(f), training.FormatOneRepMax(training.Estimate1PM(weight, reps, f)))
			}
			_, err := io.WriteString(c.App.Writer, sb.String())
			return err
		},
	}
}

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "rebuild outputs whenever the request file changes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Required: true,
				Usage:    "YAML/JSON request file",
			},
			&cli.StringFlag{
				Name:  "text-out",
				Usage: "text output file",
			},
			&cli.StringFlag{
				Name:  "xlsx-out",
				Usage: "xlsx output file",
			},
			&cli.DurationFlag{
				Name:  "debounce",
				Usage: "quiet period before rebuilding, ASCEND_WATCH_DEBOUNCE by default",
			},
		},
		Action: func(c *cli.Context) error {
			rt := state(c)
			p := &watcher.Pipeline{
				InputPath: c.String("input"),
				TextPath:  c.String("text-out"),
				XLSXPath:  c.String("xlsx-out"),
				Formula:   training.Formula(rt.cfg.OneRMFormula),
				Lang:      lang(c),
			}
			if p.TextPath == "" && p.XLSXPath == "" {
				base := strings.TrimSuffix(filepath.Base(p.InputPath), filepath.Ext(p.InputPath))
				p.TextPath = filepath.Join(rt.cfg.OutputDir, base+".txt")
				p.XLSXPath = filepath.Join(rt.cfg.OutputDir, base+".xlsx")
			}

			debounce := rt.cfg.WatchDebounce
			if c.IsSet("debounce") {
				debounce = c.Duration("debounce")
			}
			return watcher.New(p.InputPath, debounce, p.Regenerate, rt.logger).Run(c.Context)
		},
	}
}

func botCommand() *cli.Command {
	return &cli.Command{
		Name:  "bot",
		Usage: "run the Telegram bot",
		Action: func(c *cli.Context) error {
			rt := state(c)
			if err := rt.cfg.RequireBotToken(); err != nil {
				return err
			}

			api, err := tgbotapi.NewBotAPI(rt.cfg.BotToken)
			if err != nil {
				return fmt.Errorf("ошибка подключения к Telegram: %w", err)
			}
			api.Debug = rt.cfg.LogLevel == "debug"
			rt.logger.Info("бот запущен", zap.String("account", api.Self.UserName))

			b, err := bot.New(api, rt.cfg, rt.logger)
			if err != nil {
				return err
			}

			u := tgbotapi.NewUpdate(0)
			u.Timeout = 30
			updates := api.GetUpdatesChan(u)
			go func() {
				<-c.Context.Done()
				api.StopReceivingUpdates()
			}()

			b.Run(c.Context, updates)
			return nil
		},
	}
}
