// Package pipeline runs a complete generate, load and export pass.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"realestate-seed/internal/config"
	"realestate-seed/internal/export"
	"realestate-seed/internal/generator"
	"realestate-seed/internal/logger"
	"realestate-seed/internal/models"
	"realestate-seed/internal/sink"
)

// Result summarizes a finished run.
type Result struct {
	RunID     uuid.UUID
	Seed      uint64
	ExcelPath string
	Counts    []sink.TableCount
}

// RunID derives a stable identifier from the seed, so reruns with the same
// seed produce the same workbook properties.
func RunID(seed uint64) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(config.AppName+":"+strconv.FormatUint(seed, 10)))
}

func resolveSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}

// Run generates a fresh dataset, loads it into the store and exports the
// workbook. Any error aborts the run; the store may be left partially
// loaded and the workbook is not written.
func Run(ctx context.Context, cfg *config.Config) (res *Result, err error) {
	mode, err := generator.ParseRentalIDMode(cfg.RentalIDMode)
	if err != nil {
		return nil, err
	}

	seed := resolveSeed(cfg.Seed)
	res = &Result{RunID: RunID(seed), Seed: seed, ExcelPath: cfg.ExcelPath}
	log := logger.Log.WithField("run", res.RunID.String())
	log.Infof("Generating dataset with seed %d", seed)

	ds, err := generator.Generate(generator.NewState(seed), generator.DefaultSizes, generator.Options{RentalIDMode: mode})
	if err != nil {
		return nil, fmt.Errorf("failed to generate dataset: %w", err)
	}
	if err := generator.Verify(ds, generator.DefaultSizes); err != nil {
		return nil, fmt.Errorf("generated dataset is inconsistent: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !cfg.UsesPostgres() {
		if err := sink.Prepare(cfg.DBPath, cfg.Force); err != nil {
			return nil, err
		}
	}
	s, err := sink.Open(cfg)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := closeStore(s); closeErr != nil && err == nil {
			res, err = nil, closeErr
		}
	}()

	log.Info("Loading tables")
	if err := s.LoadDataset(ds); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Infof("Exporting workbook %s", cfg.ExcelPath)
	if err := export.WriteWorkbook(s.DB(), models.TableNames(), cfg.ExcelPath, workbookProperties(res)); err != nil {
		return nil, err
	}

	if res.Counts, err = s.Counts(); err != nil {
		return nil, err
	}
	return res, nil
}

func closeStore(s io.Closer) error {
	if err := s.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	return nil
}

// Export rewrites the workbook from an existing store.
func Export(ctx context.Context, cfg *config.Config) (err error) {
	s, err := sink.OpenExisting(cfg)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeStore(s))
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	props := export.Properties{Title: config.AppName, Description: "re-exported from existing store"}
	return export.WriteWorkbook(s.DB(), models.TableNames(), cfg.ExcelPath, props)
}

// Verify reads the store back and checks every dataset invariant.
func Verify(ctx context.Context, cfg *config.Config) (err error) {
	s, err := sink.OpenExisting(cfg)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeStore(s))
	}()

	ds, err := s.ReadDataset()
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return generator.Verify(ds, generator.DefaultSizes)
}

// Status reports the row count of every table in an existing store.
func Status(ctx context.Context, cfg *config.Config) (counts []sink.TableCount, err error) {
	s, err := sink.OpenExisting(cfg)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := closeStore(s); closeErr != nil {
			counts, err = nil, errors.Join(err, closeErr)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Counts()
}

func workbookProperties(res *Result) export.Properties {
	return export.Properties{
		Title:       config.AppName,
		Identifier:  res.RunID.String(),
		Description: fmt.Sprintf("seed %d", res.Seed),
	}
}
