package recolor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type WriteHook func(io.Writer) error

// writeFunc is swapped in tests to simulate a failing write.
var writeFunc = writeAtomically

func replaceFile(path string, contents []byte) error {
	return writeFunc(path, func(fd io.Writer) error {
		_, err := fd.Write(contents)

		return err
	})
}

// writeAtomically fills a temp file next to path and renames it over path.
// A symlink is resolved first so the link stays in place and its target receives the new contents.
// On any failure the temp file is removed and path keeps its previous contents.
func writeAtomically(path string, hook WriteHook) (err error) {
	resolved, err := filepath.EvalSymlinks(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", path, err)
	}

	path = resolved

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	fd, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file next to %q: %w", path, err)
	}

	tmpName := fd.Name()

	defer func() {
		if err != nil {
			_ = fd.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = hook(fd); err != nil {
		return fmt.Errorf("failed to write to temp file for %q: %w", path, err)
	}

	if err = fd.Chmod(info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to copy permissions of %q: %w", path, err)
	}

	if err = fd.Sync(); err != nil {
		return fmt.Errorf("failed to flush temp file for %q: %w", path, err)
	}

	if err = fd.Close(); err != nil {
		return fmt.Errorf("failed to close temp file for %q: %w", path, err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move temp file over %q: %w", path, err)
	}

	return nil
}
