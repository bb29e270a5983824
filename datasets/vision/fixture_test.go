package vision

import "bytes"
import "compress/gzip"
import "crypto/md5"
import "encoding/hex"
import "net/http"
import "sync"
import "testing"

import "github.com/stretchr/testify/require"

import "github.com/neurlang/fashionmnist/datasets/idx"

// fixture is a tiny variant whose files are generated in memory
type fixture struct {
	variant *Variant
	files   map[string][]byte
}

func gzipIdx(t *testing.T, dims []uint32, data []byte) []byte {
	var raw bytes.Buffer
	require.NoError(t, idx.Encode(&raw, dims, data))
	var out bytes.Buffer
	zw := gzip.NewWriter(&out)
	_, err := zw.Write(raw.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return out.Bytes()
}

func digest(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// newFixture builds a variant with train and test images; pixel values encode sample and label
func newFixture(t *testing.T, train, test int) *fixture {
	var f = &fixture{files: make(map[string][]byte)}
	var split = func(prefix string, n int) (Resource, Resource) {
		var pixels = make([]byte, n*ImgSize*ImgSize)
		var labels = make([]byte, n)
		for i := 0; i < n; i++ {
			labels[i] = byte(i % 3)
			for j := 0; j < ImgSize*ImgSize; j++ {
				pixels[i*ImgSize*ImgSize+j] = byte(i + j)
			}
		}
		var img = gzipIdx(t, []uint32{uint32(n), ImgSize, ImgSize}, pixels)
		var lbl = gzipIdx(t, []uint32{uint32(n)}, labels)
		f.files[prefix+"-images-idx3-ubyte.gz"] = img
		f.files[prefix+"-labels-idx1-ubyte.gz"] = lbl
		return Resource{prefix + "-images-idx3-ubyte.gz", digest(img)},
			Resource{prefix + "-labels-idx1-ubyte.gz", digest(lbl)}
	}
	var v = &Variant{Name: "Fixture", Classes: []string{"zero", "one", "two"}}
	v.TrainImages, v.TrainLabels = split("train", train)
	v.TestImages, v.TestLabels = split("t10k", test)
	f.variant = v
	return f
}

type hits struct {
	mut sync.Mutex
	n   map[string]int
}

func (h *hits) get(name string) int {
	h.mut.Lock()
	defer h.mut.Unlock()
	return h.n[name]
}

// handler serves the fixture files and counts requests per file
func (f *fixture) handler() (http.Handler, *hits) {
	var mux = http.NewServeMux()
	var h = &hits{n: make(map[string]int)}
	for name, data := range f.files {
		name, data := name, data
		mux.HandleFunc("/"+name, func(w http.ResponseWriter, r *http.Request) {
			h.mut.Lock()
			h.n[name]++
			h.mut.Unlock()
			w.Write(data)
		})
	}
	return mux, h
}
