// Package archive snapshots the previous assets tree before a run.
//
// Regenerating without a backup of the prior state is treated as an
// unacceptable data-loss risk, so every error here is fatal to the run.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

const gitignore = "# This folder does not belong on git. Not even as an empty folder, so we ignore everything, incl. this file.\n" +
	"*\n"

// Archiver zips an assets tree into timestamped archives under a backup
// directory that is kept out of version control.
type Archiver struct {
	fs        billy.Filesystem
	backupDir string

	// Now is the clock used to name archives. Overridable in tests.
	Now func() time.Time
}

// New returns an Archiver writing archives into backupDir on fs.
func New(fs billy.Filesystem, backupDir string) *Archiver {
	return &Archiver{fs: fs, backupDir: backupDir, Now: time.Now}
}

// Snapshot archives the full contents of assetsDir into
// <backupDir>/<unix-seconds>.zip and returns the archive path. The backup
// directory is created on first use, together with an ignore-everything
// .gitignore. A missing assets tree yields an empty archive (first ever
// run). Two runs within the same second overwrite the same archive; that
// collision is accepted rather than detected.
func (a *Archiver) Snapshot(assetsDir string) (string, error) {
	if _, err := a.fs.Stat(a.backupDir); os.IsNotExist(err) {
		if err := a.fs.MkdirAll(a.backupDir, 0o755); err != nil {
			return "", fmt.Errorf("archive: creating %s: %w", a.backupDir, err)
		}
		ignore := a.fs.Join(a.backupDir, ".gitignore")
		if err := util.WriteFile(a.fs, ignore, []byte(gitignore), 0o644); err != nil {
			return "", fmt.Errorf("archive: writing %s: %w", ignore, err)
		}
	} else if err != nil {
		return "", fmt.Errorf("archive: stat %s: %w", a.backupDir, err)
	}

	name := a.fs.Join(a.backupDir, fmt.Sprintf("%d.zip", a.Now().Unix()))
	f, err := a.fs.Create(name)
	if err != nil {
		return "", fmt.Errorf("archive: creating %s: %w", name, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	if err := a.addTree(zw, assetsDir); err != nil {
		return "", fmt.Errorf("archive: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("archive: closing %s: %w", name, err)
	}
	return name, nil
}

// addTree writes every file under root into zw, deflated, with its path
// relative to root in forward-slash form.
func (a *Archiver) addTree(zw *zip.Writer, root string) error {
	if _, err := a.fs.Stat(root); os.IsNotExist(err) {
		return nil
	}
	return util.Walk(a.fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(p, root)
		rel = strings.TrimPrefix(rel, string(filepath.Separator))
		rel = filepath.ToSlash(rel)

		w, err := zw.Create(rel)
		if err != nil {
			return fmt.Errorf("adding %s: %w", rel, err)
		}
		src, err := a.fs.Open(p)
		if err != nil {
			return fmt.Errorf("opening %s: %w", p, err)
		}
		if _, err := io.Copy(w, src); err != nil {
			src.Close()
			return fmt.Errorf("copying %s: %w", p, err)
		}
		return src.Close()
	})
}
