package installer

import (
	"archive/tar"    // For reading .tar archives
	"archive/zip"    // For reading .zip archives
	"compress/bzip2" // For reading .bz2 compressed data
	"compress/gzip"  // For reading .gz compressed data
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip" // For reading .7z archives
	"github.com/pkg/errors"
	"github.com/xi2/xz" // For reading .xz compressed data

	"worbots-setup/internal/logger"
)

// archiveExts lists the supported archive extensions, longest first so
// ".tar.gz" wins over ".gz".
var archiveExts = []string{".tar.gz", ".tar.bz2", ".tar.xz", ".tgz", ".tar", ".zip", ".7z"}

// IsArchive reports whether name has an extension ExtractArchive understands.
func IsArchive(name string) bool {
	return archiveExt(name) != ""
}

func archiveExt(name string) string {
	lower := strings.ToLower(name)
	for _, ext := range archiveExts {
		if strings.HasSuffix(lower, ext) {
			return ext
		}
	}
	return ""
}

// ExtractArchive extracts src into dest, replacing whatever dest held before.
// With stripTop, an archive whose entries all live under one directory is
// unpacked without that directory, so dest/<top>/app.exe becomes dest/app.exe.
//
// Extraction happens in a staging directory next to dest and is moved into
// place only once every entry has been written.
func ExtractArchive(src, dest string, stripTop bool) error {
	staging := dest + ".tmp"
	if err := os.RemoveAll(staging); err != nil {
		return errors.Wrapf(err, "failed to clear staging directory %s", staging)
	}
	defer os.RemoveAll(staging)

	if err := extractInto(src, staging); err != nil {
		return err
	}

	root := staging
	if stripTop {
		if top, ok := singleDir(staging); ok {
			logger.Debug("[DEBUG] Stripping top-level directory %s\n", filepath.Base(top))
			root = top
		}
	}

	if err := os.RemoveAll(dest); err != nil {
		return errors.Wrapf(err, "failed to remove previous extraction at %s", dest)
	}
	if err := os.Rename(root, dest); err != nil {
		return errors.Wrapf(err, "failed to move extracted files to %s", dest)
	}
	return nil
}

// extractInto routes to the extraction function for src's archive type.
func extractInto(src, dest string) error {
	switch ext := archiveExt(src); ext {
	case ".zip":
		logger.Debug("[DEBUG] compression type is zip\n")
		return extractZip(src, dest)
	case ".7z":
		logger.Debug("[DEBUG] compression type is .7z\n")
		return extract7z(src, dest)
	case "":
		return fmt.Errorf("unsupported archive format: %s", src)
	default:
		logger.Debug("[DEBUG] compression type is %s\n", ext)
		return extractTarArchive(src, dest, ext)
	}
}

// singleDir returns the only entry of dir when that entry is a directory.
func singleDir(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 || !entries[0].IsDir() {
		return "", false
	}
	return filepath.Join(dir, entries[0].Name()), true
}

// entryPath joins an archive entry name onto dest and rejects names that
// would escape it.
func entryPath(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	rel, err := filepath.Rel(dest, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q points outside the extraction directory", name)
	}
	return target, nil
}

// writeEntry copies r into target, creating parent directories.
func writeEntry(target string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", target)
	}
	if mode.Perm() == 0 {
		mode = 0644
	}
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", target)
	}
	_, err = io.Copy(out, r)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return errors.Wrapf(err, "failed to write %s", target)
}

// extractTarArchive handles tar and compressed tar variants
func extractTarArchive(src, dest, ext string) error {
	logger.Debug("[DEBUG] uncompressing %s to %s\n", src, dest)
	f, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "failed to open archive %s", src)
	}
	defer f.Close()

	var reader io.Reader = f
	switch ext {
	case ".tar.gz", ".tgz":
		gr, err := gzip.NewReader(f)
		if err != nil {
			return errors.Wrapf(err, "failed to read gzip stream of %s", src)
		}
		defer gr.Close()
		reader = gr
	case ".tar.bz2":
		reader = bzip2.NewReader(f)
	case ".tar.xz":
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return errors.Wrapf(err, "failed to read xz stream of %s", src)
		}
		reader = xzr
	}

	tr := tar.NewReader(reader)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "failed to read tar entry from %s", src)
		}

		target, err := entryPath(dest, hdr.Name)
		if err != nil {
			return err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return errors.Wrapf(err, "failed to create directory %s", target)
			}
		case tar.TypeReg:
			if err := writeEntry(target, tr, hdr.FileInfo().Mode()); err != nil {
				return err
			}
		default:
			logger.Debug("[DEBUG] Skipping tar entry %s of type %c\n", hdr.Name, hdr.Typeflag)
		}
	}
}

// extractZip extracts a .zip archive
func extractZip(src, dest string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return errors.Wrapf(err, "failed to open zip archive %s", src)
	}
	defer r.Close()

	for _, f := range r.File {
		target, err := entryPath(dest, f.Name)
		if err != nil {
			return err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return errors.Wrapf(err, "failed to create directory %s", target)
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return errors.Wrapf(err, "failed to open zip entry %s", f.Name)
		}
		err = writeEntry(target, rc, f.Mode())
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// extract7z handles .7z extraction using the sevenzip library
func extract7z(src, dest string) error {
	r, err := sevenzip.OpenReader(src)
	if err != nil {
		return errors.Wrapf(err, "failed to open 7z archive %s", src)
	}
	defer r.Close()

	for _, f := range r.File {
		target, err := entryPath(dest, f.Name)
		if err != nil {
			return err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return errors.Wrapf(err, "failed to create directory %s", target)
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return errors.Wrapf(err, "failed to open 7z entry %s", f.Name)
		}
		err = writeEntry(target, rc, f.Mode())
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
