package vision

import "crypto/md5"
import "crypto/sha256"
import "encoding/hex"
import "hash"
import "io"
import "os"
import "path/filepath"
import "strings"

import "github.com/pkg/errors"

// ErrNotFound is returned when a dataset file is missing from the root directory
var ErrNotFound = errors.New("dataset file not found")

// ErrChecksum is returned when a dataset file does not match its digest
var ErrChecksum = errors.New("dataset file checksum mismatch")

// Resource is a single downloadable dataset file.
// Digest is the hex md5 (32 characters) or hex sha256 (64 characters) of the file as served.
type Resource struct {
	File   string
	Digest string
}

func (r Resource) hasher() (hash.Hash, error) {
	switch len(r.Digest) {
	case 2 * md5.Size:
		return md5.New(), nil
	case 2 * sha256.Size:
		return sha256.New(), nil
	}
	return nil, errors.Errorf("resource '%s' has digest of unknown kind '%s'", r.File, r.Digest)
}

// Matches reports whether a finished hash of the resource content equals its digest
func (r Resource) Matches(h hash.Hash) bool {
	return strings.EqualFold(hex.EncodeToString(h.Sum(nil)), r.Digest)
}

// Variant describes one member of the MNIST family: where it is served and which files it has
type Variant struct {
	// Name is also the directory under the root the files are stored in
	Name    string
	Mirrors []string

	TrainImages, TrainLabels Resource
	TestImages, TestLabels   Resource

	// Classes names the labels, indexed by label value
	Classes []string
}

// Resources lists all four files of the variant
func (v *Variant) Resources() []Resource {
	return []Resource{v.TrainImages, v.TrainLabels, v.TestImages, v.TestLabels}
}

// Split returns the image and label files of the train or the test split
func (v *Variant) Split(train bool) (images, labels Resource) {
	if train {
		return v.TrainImages, v.TrainLabels
	}
	return v.TestImages, v.TestLabels
}

// Dir is the directory the raw files of the variant are kept in
func (v *Variant) Dir(root string) string {
	return filepath.Join(root, v.Name, "raw")
}

// Verify hashes the file at path and compares it to the resource digest
func Verify(path string, r Resource) error {
	h, err := r.hasher()
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return errors.Wrapf(ErrNotFound, "file '%s'", path)
	}
	if err != nil {
		return errors.Wrapf(err, "cannot open file to check file '%s'", path)
	}
	defer f.Close()
	if _, err = io.Copy(h, f); err != nil {
		return errors.Wrapf(err, "cannot hash file '%s'", path)
	}
	if !r.Matches(h) {
		return errors.Wrapf(ErrChecksum, "file '%s'", path)
	}
	return nil
}

// Exists reports whether all files of the variant are present under root with correct digests
func Exists(root string, v *Variant) bool {
	for _, r := range v.Resources() {
		if Verify(filepath.Join(v.Dir(root), r.File), r) != nil {
			return false
		}
	}
	return true
}
