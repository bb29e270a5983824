package fashionmnist

import "context"
import "os"
import "testing"

import "github.com/pkg/errors"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/neurlang/fashionmnist/datasets/mnist"
import "github.com/neurlang/fashionmnist/datasets/vision"

func TestVariantIsComplete(t *testing.T) {
	for _, v := range []*vision.Variant{Variant, mnist.Variant} {
		assert.Len(t, v.Classes, 10, v.Name)
		assert.NotEmpty(t, v.Mirrors, v.Name)
		var names = make(map[string]bool)
		for _, r := range v.Resources() {
			assert.Contains(t, []int{32, 64}, len(r.Digest), r.File)
			names[r.File] = true
		}
		assert.Len(t, names, 4, v.Name)
	}
	assert.Equal(t, "Ankle boot", Classes[9])
}

func TestLoadEmptyRootWithoutDownload(t *testing.T) {
	_, err := Load(context.Background(), vision.Options{Root: t.TempDir(), Train: true})
	assert.Equal(t, vision.ErrNotFound, errors.Cause(err))
}

// TestLoadFromNetwork fetches the real dataset when FASHIONMNIST_NETWORK is set
func TestLoadFromNetwork(t *testing.T) {
	if os.Getenv("FASHIONMNIST_NETWORK") == "" {
		t.Skip("set FASHIONMNIST_NETWORK to download the dataset")
	}
	d, err := Load(context.Background(), vision.Options{Root: t.TempDir(), Train: true, Download: true})
	require.NoError(t, err)
	require.Equal(t, TrainSize, d.Len())
	for label, n := range d.Counts() {
		assert.Equal(t, TrainSize/len(Classes), n, Classes[label])
	}
}
