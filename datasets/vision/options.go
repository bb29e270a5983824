package vision

import "net/http"
import "time"

import homedir "github.com/mitchellh/go-homedir"
import "github.com/pkg/errors"

// DefaultRoot is the directory datasets are stored under when no root is given
const DefaultRoot = "data"

// Options control where a dataset lives and how it is obtained
type Options struct {
	Root     string
	Train    bool
	Download bool

	// Mirrors override the mirrors of the variant when not empty
	Mirrors []string
	Client  *http.Client

	// Threads limits the goroutines used for decoding, zero is one per CPU
	Threads int
}

var defaultClient = &http.Client{Timeout: 10 * time.Minute}

func (o *Options) client() *http.Client {
	if o.Client != nil {
		return o.Client
	}
	return defaultClient
}

func (o *Options) root() (string, error) {
	if o.Root == "" {
		return DefaultRoot, nil
	}
	root, err := homedir.Expand(o.Root)
	if err != nil {
		return "", errors.Wrapf(err, "cannot expand root '%s'", o.Root)
	}
	return root, nil
}
