package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chrisdamba/foodataseed/internal/cloudwriter"
	"github.com/chrisdamba/foodataseed/internal/models"
)

// SQLFileSink writes one <table>.sql file per entity collection to the
// staging directory, or to an S3 bucket when the cloud factory is set. Files
// are written in import order; a failure aborts the run with the failing
// table named.
type SQLFileSink struct {
	basePath string
	folder   string

	cloud  cloudwriter.CloudWriterFactory
	bucket string
}

func NewSQLFileSink(config *models.Config) (*SQLFileSink, error) {
	s := &SQLFileSink{
		basePath: config.OutputPath,
		folder:   config.OutputFolder,
	}

	if config.OutputDestination == "s3" {
		factory, err := cloudwriter.NewS3WriterFactory(config.CloudStorage.Region)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}
		s.cloud = factory
		s.bucket = config.CloudStorage.BucketName
	}

	return s, nil
}

func (s *SQLFileSink) WriteDataset(ds *models.Dataset) error {
	if s.cloud == nil {
		if err := os.MkdirAll(filepath.Join(s.basePath, s.folder), os.ModePerm); err != nil {
			return fmt.Errorf("creating staging directory: %w", err)
		}
	}

	for _, table := range TablesInImportOrder(ds) {
		stmt := BuildInsert(table)
		if err := s.writeFile(table.Name+".sql", []byte(stmt)); err != nil {
			return fmt.Errorf("writing %s: %w", table.Name, err)
		}
	}
	return nil
}

func (s *SQLFileSink) writeFile(name string, data []byte) error {
	if s.cloud != nil {
		w, err := s.cloud.NewWriter(s.bucket, filepath.Join(s.folder, name))
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			w.Close()
			return err
		}
		return w.Close()
	}
	return os.WriteFile(filepath.Join(s.basePath, s.folder, name), data, 0o644)
}

func (s *SQLFileSink) Close() error {
	return nil
}
