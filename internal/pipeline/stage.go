package pipeline

import (
	"os"
	"path/filepath"

	"github.com/zhelvis/companiesdb/pkg/constants"
	"github.com/zhelvis/companiesdb/pkg/errors"
	"github.com/zhelvis/companiesdb/pkg/logging"
)

// Stager collects output files at temporary paths and renames them into
// place in one final pass, so a run that fails during validation or
// rendering leaves every previously published file untouched. A rename
// failure partway through Commit can still leave a mixed output set; by then
// all content has been written and validated, so only the filesystem can
// fail.
type Stager struct {
	staged []stagedFile
}

type stagedFile struct {
	tmp  string
	dest string
}

// Stage writes data to a temporary file beside dest. Temporary files live in
// the destination directory so the final rename never crosses a filesystem
// boundary.
func (s *Stager) Stage(dest string, data []byte) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*")
	if err != nil {
		return errors.WrapIO("create", dest, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.WrapIO("write", dest, err)
	}
	// CreateTemp opens files mode 0600; published files carry the regular
	// permissions.
	if err := tmp.Chmod(constants.FilePermissions); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.WrapIO("write", dest, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.WrapIO("write", dest, err)
	}

	s.staged = append(s.staged, stagedFile{tmp: tmp.Name(), dest: dest})

	logging.Debug().
		Str("file", dest).
		Int("bytes", len(data)).
		Msg("Staged output file")

	return nil
}

// Commit renames every staged file onto its destination, in staging order.
func (s *Stager) Commit() error {
	for _, f := range s.staged {
		if err := os.Rename(f.tmp, f.dest); err != nil {
			return errors.WrapIO("rename", f.dest, err)
		}
	}
	count := len(s.staged)
	s.staged = nil

	logging.Debug().
		Int("files", count).
		Msg("Published staged output files")

	return nil
}

// Discard removes staged files that were never committed. Safe to call after
// Commit; it is a no-op once the stage list is empty.
func (s *Stager) Discard() {
	for _, f := range s.staged {
		if err := os.Remove(f.tmp); err != nil {
			logging.Warn().
				Str("file", f.tmp).
				Err(err).
				Msg("Failed to remove staged file")
		}
	}
	s.staged = nil
}
