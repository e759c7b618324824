package render

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"hstin/wxcmap/colormap"
	"hstin/wxcmap/internal/config"
	"hstin/wxcmap/internal/db"
)

// Generate writes every selected palette and its LUT strip to a fresh
// catalog at cfg.OutputFile.
func Generate(cfg *config.Config) error {
	startTime := time.Now()

	names := cfg.Palettes
	if len(names) == 0 {
		names = colormap.Names()
	}
	known := colormap.Names()
	if missing := lo.Without(names, known...); len(missing) > 0 {
		return fmt.Errorf("%v: %w", missing, colormap.ErrUnknownPalette)
	}
	names = lo.Uniq(names)

	outputDir := filepath.Dir(cfg.OutputFile)
	if outputDir != "." && outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	log.WithField("file", cfg.OutputFile).Debug("initializing catalog database")
	database, err := db.InitDB(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	written := generateStrips(database, cfg, names)

	if err := db.UpdateMetadata(database, written); err != nil {
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	log.Debug("optimizing database")
	if _, err := database.Exec("VACUUM"); err != nil {
		log.WithError(err).Warn("vacuum failed")
	}

	log.WithFields(log.Fields{
		"palettes": written,
		"elapsed":  time.Since(startTime).Round(time.Millisecond),
	}).Info("catalog export complete")

	if written < len(names) {
		return fmt.Errorf("%d of %d palettes failed", len(names)-written, len(names))
	}
	return nil
}

func generateStrips(database *sql.DB, cfg *config.Config, names []string) int {
	var wg sync.WaitGroup
	jobQueue := make(chan StripJob, len(names))
	resultQueue := make(chan StripResult, cfg.NumWorkers)

	for i := 0; i < cfg.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobQueue {
				p, err := colormap.Get(job.Name, colormap.Options{})
				if err != nil {
					log.WithError(err).WithField("palette", job.Name).Error("failed to build palette")
					continue
				}

				data, err := EncodeStrip(p, cfg)
				if err != nil {
					log.WithError(err).WithField("palette", job.Name).Error("failed to encode strip")
					continue
				}

				resultQueue <- StripResult{Palette: p, Data: data}
			}
		}()
	}

	total := int64(len(names))
	log.WithFields(log.Fields{
		"palettes": total,
		"workers":  cfg.NumWorkers,
	}).Info("exporting palettes")

	var completed int64
	startTime := time.Now()

	ticker := time.NewTicker(2 * time.Second)
	done := make(chan bool)

	go func() {
		defer ticker.Stop()
		lastCompleted := int64(0)

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				current := atomic.LoadInt64(&completed)
				if current == lastCompleted && current > 0 {
					continue
				}

				log.WithFields(log.Fields{
					"done":    current,
					"total":   total,
					"percent": int(float64(current) / float64(total) * 100),
					"elapsed": time.Since(startTime).Round(time.Second),
				}).Info("progress")

				lastCompleted = current
			}
		}
	}()

	var dbWg sync.WaitGroup
	dbWg.Add(1)
	go func() {
		defer dbWg.Done()

		for result := range resultQueue {
			if err := db.InsertPalette(database, result.Palette, result.Data); err != nil {
				log.WithError(err).Error("error inserting palette")
				continue
			}
			log.WithFields(log.Fields{
				"palette": result.Palette.Name,
				"bins":    len(result.Palette.Colors),
				"bytes":   len(result.Data),
			}).Debug("palette written")

			atomic.AddInt64(&completed, 1)
		}
	}()

	for _, name := range names {
		jobQueue <- StripJob{Name: name}
	}

	close(jobQueue)
	wg.Wait()

	close(resultQueue)
	dbWg.Wait()

	done <- true

	return int(atomic.LoadInt64(&completed))
}
