package vision

import "context"
import "io"
import "net/http"
import "os"
import "path/filepath"
import "strings"

import "github.com/magneticio/go-common/logging"
import "github.com/pkg/errors"
import "golang.org/x/sync/errgroup"

// Download fetches every file of the variant that is missing or corrupt under the options root.
// Files are fetched concurrently; each one tries the mirrors in order and is only moved into
// place after its digest was verified.
func Download(ctx context.Context, opts Options, v *Variant) error {
	root, err := opts.root()
	if err != nil {
		return err
	}
	var dir = v.Dir(root)
	var mirrors = opts.Mirrors
	if len(mirrors) == 0 {
		mirrors = v.Mirrors
	}
	if len(mirrors) == 0 {
		return errors.Errorf("no mirrors to download %s from", v.Name)
	}

	var missing []Resource
	for _, r := range v.Resources() {
		err := Verify(filepath.Join(dir, r.File), r)
		switch errors.Cause(err) {
		case nil:
			continue
		case ErrNotFound:
		case ErrChecksum:
			logging.Info("File '%s' is corrupt, downloading again\n", r.File)
		default:
			return err
		}
		missing = append(missing, r)
	}
	if len(missing) == 0 {
		logging.Info("Files already downloaded and verified\n")
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "cannot create directory '%s'", dir)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, r := range missing {
		r := r
		g.Go(func() error {
			return fetch(ctx, opts.client(), mirrors, dir, r)
		})
	}
	return g.Wait()
}

func fetch(ctx context.Context, client *http.Client, mirrors []string, dir string, r Resource) (err error) {
	for _, mirror := range mirrors {
		var url = strings.TrimSuffix(mirror, "/") + "/" + r.File
		logging.Info("Downloading %s\n", url)
		err = fetchFrom(ctx, client, url, dir, r)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logging.Error("Failed to download (trying next): %v\n", err)
	}
	return errors.Wrapf(err, "cannot download '%s' from any mirror", r.File)
}

func fetchFrom(ctx context.Context, client *http.Client, url, dir string, r Resource) error {
	h, err := r.hasher()
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrapf(err, "request '%s'", url)
	}
	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "get '%s'", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("get '%s': HTTP status %d", url, resp.StatusCode)
	}

	tmp, err := os.CreateTemp(dir, r.File+".*.part")
	if err != nil {
		return errors.Wrapf(err, "cannot create file in '%s'", dir)
	}
	defer os.Remove(tmp.Name())

	_, err = io.Copy(io.MultiWriter(tmp, h), resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrapf(err, "writing '%s'", url)
	}
	if !r.Matches(h) {
		return errors.Wrapf(ErrChecksum, "get '%s'", url)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, r.File)); err != nil {
		return errors.Wrapf(err, "cannot move '%s' into place", r.File)
	}
	return nil
}
