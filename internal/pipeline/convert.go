package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"bookbridge/internal"
	"bookbridge/internal/catalog"
	"bookbridge/internal/config"
)

// ConvertService runs one conversion: authors and categories first,
// image directory snapshot next, then the books table streamed row by
// row through the transformer into the products CSV.
type ConvertService struct {
	cfg config.Config
}

func NewConvertService(cfg config.Config) *ConvertService {
	return &ConvertService{cfg: cfg}
}

type ConvertOptions struct {
	WorkPath   string
	TargetPath string
	// ImagesPath overrides the default <target>/<images dir>.
	ImagesPath string
}

func (s *ConvertService) Run(opts ConvertOptions) (internal.ConvertStats, error) {
	imagesPath := opts.ImagesPath
	if imagesPath == "" {
		imagesPath = filepath.Join(opts.TargetPath, s.cfg.ImagesDir)
	}

	transformer, err := s.buildTransformer(opts.WorkPath, imagesPath)
	if err != nil {
		return internal.ConvertStats{}, err
	}

	source, err := OpenBookSource(filepath.Join(opts.WorkPath, s.cfg.BooksFile))
	if err != nil {
		return internal.ConvertStats{}, err
	}
	defer source.Close()

	writer, err := NewProductWriter(filepath.Join(opts.TargetPath, s.cfg.ProductsFile))
	if err != nil {
		return internal.ConvertStats{}, err
	}

	reporter := NewReporter()
	stats := internal.ConvertStats{}
	for {
		book, ok, err := source.Next()
		if err != nil {
			writer.Close()
			return stats, err
		}
		if !ok {
			break
		}

		row, skip := transformer.Transform(book)
		if skip != nil {
			reporter.Add(*skip)
			stats.Skipped++
			continue
		}
		if err := writer.Write(row); err != nil {
			writer.Close()
			return stats, err
		}
		stats.Written++
	}

	if err := writer.Close(); err != nil {
		return stats, err
	}

	if reporter.Count() > 0 {
		if err := s.writeReport(reporter, filepath.Join(opts.TargetPath, s.cfg.SkippedFile)); err != nil {
			return stats, err
		}
	}

	return stats, nil
}

// buildTransformer completes the author index and the image snapshot
// before the first book row is read.
func (s *ConvertService) buildTransformer(workPath, imagesPath string) (*Transformer, error) {
	authors := catalog.AuthorIndex{}
	authorsPath := filepath.Join(workPath, s.cfg.AuthorsFile)
	if _, err := os.Stat(authorsPath); err == nil {
		records, err := ReadAuthors(authorsPath)
		if err != nil {
			return nil, err
		}
		authors = catalog.BuildAuthorIndex(records)
	}

	overrides := map[string]string{}
	if s.cfg.CategoryMapFile != "" {
		loaded, err := catalog.LoadCategoryOverrides(s.cfg.CategoryMapFile)
		if err != nil {
			return nil, err
		}
		overrides = loaded
	}

	images, err := catalog.ListImageDir(imagesPath)
	if err != nil {
		return nil, err
	}

	return NewTransformer(s.cfg, authors, images, catalog.NewCategoryMapper(s.cfg.DefaultCategory, overrides)), nil
}

func (s *ConvertService) writeReport(reporter *Reporter, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create skipped-records file %s: %w", path, err)
	}
	if err := reporter.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
