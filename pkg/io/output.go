package io

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/klothoplatform/archdraw/pkg/closenicely"
	"go.uber.org/zap"
)

// OutputTo writes each file under dest (unless its path is absolute). A file is first written to a temporary
// sibling and renamed into place, so a failed write never leaves a partial file behind.
func OutputTo(files []File, dest string) error {
	for _, f := range files {
		path := f.Path()
		if !filepath.IsAbs(path) {
			path = filepath.Join(dest, path)
		}
		if err := writeFile(f, path); err != nil {
			return fmt.Errorf("could not write %s: %w", path, err)
		}
	}
	return nil
}

func writeFile(f File, path string) (err error) {
	log := zap.L().Named("io")

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			closenicely.OrDebug(tmp)
			if rmErr := os.Remove(tmp.Name()); rmErr != nil && !os.IsNotExist(rmErr) {
				log.Debug("Failed to remove temporary file", zap.String("path", tmp.Name()), zap.Error(rmErr))
			}
		}
	}()

	counter := &CountingWriter{Delegate: tmp}
	if _, err = f.WriteTo(counter); err != nil {
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return err
	}
	log.Debug("Wrote file", zap.String("path", path), zap.Int64("bytes", counter.BytesWritten))
	return nil
}
