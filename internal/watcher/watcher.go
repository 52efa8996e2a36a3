// Package watcher regenerates a program whenever its request file changes.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RegenerateFunc пересобирает результаты. Контекст отменяется, как только
// приходит более новое изменение файла.
type RegenerateFunc func(ctx context.Context) error

// Watcher следит за файлом запроса
type Watcher struct {
	path       string
	debounce   time.Duration
	regenerate RegenerateFunc
	logger     *zap.Logger
}

// New создаёт наблюдатель за файлом path
func New(path string, debounce time.Duration, regenerate RegenerateFunc, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		path:       filepath.Clean(path),
		debounce:   debounce,
		regenerate: regenerate,
		logger:     logger,
	}
}

// Run собирает программу сразу, затем после каждой серии изменений файла.
// Блокируется до отмены ctx. Ошибки пересборки логируются и не прерывают
// наблюдение.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("ошибка создания наблюдателя: %w", err)
	}
	defer fw.Close()

	// Следим за каталогом: редакторы часто заменяют файл целиком
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("ошибка добавления %s в наблюдатель: %w", w.path, err)
	}

	// done закрывается, когда завершилась последняя запущенная сборка
	done := make(chan struct{})
	close(done)

	var (
		g       errgroup.Group
		cancel  context.CancelFunc = func() {}
		seq     int
		timer   = time.NewTimer(0)
		pending = true
	)
	defer func() {
		timer.Stop()
		cancel()
		_ = g.Wait()
	}()

	w.logger.Info("наблюдение запущено", zap.String("path", w.path), zap.Duration("debounce", w.debounce))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.logger.Debug("файл изменён", zap.String("op", event.Op.String()))
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.debounce)
			pending = true

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("ошибка наблюдателя", zap.Error(err))

		case <-timer.C:
			pending = false
			// Последнее изменение побеждает: незавершённая сборка отменяется
			cancel()
			var runCtx context.Context
			runCtx, cancel = context.WithCancel(ctx)
			seq++
			n := seq
			prev, next := done, make(chan struct{})
			done = next
			g.Go(func() error {
				defer close(next)
				// Сборки не пересекаются: отменённая должна дописать или бросить
				// свои файлы раньше, чем начнёт писать новая
				<-prev
				if runCtx.Err() != nil {
					w.logger.Debug("сборка отменена до запуска", zap.Int("run", n))
					return nil
				}
				w.run(runCtx, n)
				return nil
			})
		}
	}
}

func (w *Watcher) run(ctx context.Context, n int) {
	start := time.Now()
	err := w.regenerate(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		w.logger.Debug("сборка отменена более новым изменением", zap.Int("run", n))
	case err != nil:
		w.logger.Error("ошибка сборки программы", zap.Int("run", n), zap.Error(err))
	default:
		w.logger.Info("программа пересобрана", zap.Int("run", n), zap.Duration("took", time.Since(start)))
	}
}
