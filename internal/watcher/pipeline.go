package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"ascend/internal/excel"
	"ascend/internal/formatter"
	"ascend/internal/i18n"
	"ascend/internal/input"
	"ascend/internal/training"
)

// Pipeline читает файл запроса, строит программу и переписывает результаты.
// Пустой путь результата означает, что этот формат не пишется.
type Pipeline struct {
	InputPath string
	TextPath  string
	XLSXPath  string
	Formula   training.Formula
	Lang      i18n.Language
}

// Regenerate выполняет один проход. Перед каждой записью проверяется ctx,
// чтобы отменённая сборка не затёрла результат более новой.
func (p *Pipeline) Regenerate(ctx context.Context) error {
	req, err := input.Load(p.InputPath, p.Formula)
	if err != nil {
		return err
	}
	program, err := training.GenerateRequest(req)
	if err != nil {
		return err
	}

	if p.TextPath != "" {
		if err := ctx.Err(); err != nil {
			return err
		}
		text := formatter.NewTextFormatter(p.Lang).FormatProgram(program, req.SelectedDays)
		if err := writeFileAtomic(p.TextPath, []byte(text)); err != nil {
			return err
		}
	}

	if p.XLSXPath != "" {
		if err := ctx.Err(); err != nil {
			return err
		}
		exporter := excel.NewExporter(filepath.Dir(p.XLSXPath), p.Lang)
		if _, err := exporter.SaveAs(p.XLSXPath, program, req.SelectedDays); err != nil {
			return err
		}
	}

	return nil
}

// writeFileAtomic пишет во временный файл рядом и переименовывает его
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("ошибка создания директории: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".ascend-*")
	if err != nil {
		return fmt.Errorf("ошибка создания временного файла: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("ошибка записи %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("ошибка записи %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("ошибка записи %s: %w", path, err)
	}
	return nil
}
