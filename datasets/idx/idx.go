// Package idx reads and writes the IDX file format used by the MNIST family of datasets
package idx

import "bufio"
import "bytes"
import "compress/gzip"
import "encoding/binary"
import "io"
import "os"
import "strings"

import "github.com/pkg/errors"

// ErrFormat is returned for files that are not valid IDX data
var ErrFormat = errors.New("idx: invalid format")

// TypeUbyte is the only element type used by the image datasets
const TypeUbyte = 0x08

// ImagesMagic and LabelsMagic are the magic numbers of unsigned byte image and label files
const ImagesMagic = 0x00000803
const LabelsMagic = 0x00000801

// MaxSize bounds the payload a header may announce
const MaxSize = 1 << 30

// growHint caps what is allocated up front, before the payload proves to be there
const growHint = 1 << 20

type Header struct {
	Type byte
	Dims []uint32
}

// Magic returns the 32 bit magic number the header is encoded with
func (h Header) Magic() uint32 {
	return uint32(h.Type)<<8 | uint32(len(h.Dims))
}

// Size is the number of elements described by the dimensions
func (h Header) Size() (n int) {
	n = 1
	for _, d := range h.Dims {
		n *= int(d)
		if n > MaxSize {
			return MaxSize + 1
		}
	}
	return
}

type Images struct {
	Count, Rows, Cols int
	Pixels            []byte
}

// Image returns the pixels of the i-th image
func (im *Images) Image(i int) []byte {
	var size = im.Rows * im.Cols
	return im.Pixels[i*size : (i+1)*size]
}

// Decode reads a header and the complete unsigned byte payload
func Decode(r io.Reader) (h Header, data []byte, err error) {
	var magic [4]byte
	if _, err = io.ReadFull(r, magic[:]); err != nil {
		return h, nil, errors.Wrap(ErrFormat, "short magic")
	}
	if magic[0] != 0 || magic[1] != 0 {
		return h, nil, errors.Wrapf(ErrFormat, "bad magic %x", magic)
	}
	if magic[2] != TypeUbyte {
		return h, nil, errors.Wrapf(ErrFormat, "unsupported element type 0x%02x", magic[2])
	}
	h.Type = magic[2]
	h.Dims = make([]uint32, magic[3])
	if err = binary.Read(r, binary.BigEndian, h.Dims); err != nil {
		return h, nil, errors.Wrap(ErrFormat, "short dimensions")
	}
	if h.Size() > MaxSize {
		return h, nil, errors.Wrapf(ErrFormat, "dimensions %v exceed %d bytes", h.Dims, MaxSize)
	}
	var size = h.Size()
	var buf bytes.Buffer
	buf.Grow(min(size, growHint))
	if n, _ := io.CopyN(&buf, r, int64(size)); n != int64(size) {
		return h, nil, errors.Wrapf(ErrFormat, "payload of %d bytes shorter than %d bytes", n, size)
	}
	return h, buf.Bytes(), nil
}

// Encode writes an unsigned byte IDX file
func Encode(w io.Writer, dims []uint32, data []byte) error {
	var h = Header{Type: TypeUbyte, Dims: dims}
	if h.Size() != len(data) {
		return errors.Errorf("idx: %d bytes do not match dimensions %v", len(data), dims)
	}
	if err := binary.Write(w, binary.BigEndian, h.Magic()); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, dims); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// ReadImages decodes a three dimensional image file
func ReadImages(r io.Reader) (*Images, error) {
	h, data, err := Decode(r)
	if err != nil {
		return nil, err
	}
	if h.Magic() != ImagesMagic {
		return nil, errors.Wrapf(ErrFormat, "magic %d is not an image file", h.Magic())
	}
	return &Images{
		Count:  int(h.Dims[0]),
		Rows:   int(h.Dims[1]),
		Cols:   int(h.Dims[2]),
		Pixels: data,
	}, nil
}

// ReadLabels decodes a one dimensional label file
func ReadLabels(r io.Reader) ([]byte, error) {
	h, data, err := Decode(r)
	if err != nil {
		return nil, err
	}
	if h.Magic() != LabelsMagic {
		return nil, errors.Wrapf(ErrFormat, "magic %d is not a label file", h.Magic())
	}
	return data, nil
}

type file struct {
	io.Reader
	closers []io.Closer
}

func (f *file) Close() (err error) {
	for i := len(f.closers) - 1; i >= 0; i-- {
		if e := f.closers[i].Close(); e != nil && err == nil {
			err = e
		}
	}
	return
}

// Open opens an IDX file for reading, ungzipping it when the name ends in .gz
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return &file{bufio.NewReader(f), []io.Closer{f}}, nil
	}
	gz, err := gzip.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "gzip file '%s'", path)
	}
	return &file{gz, []io.Closer{f, gz}}, nil
}

// ReadImagesFile opens and decodes an image file
func ReadImagesFile(path string) (*Images, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	im, err := ReadImages(f)
	return im, errors.Wrapf(err, "file '%s'", path)
}

// ReadLabelsFile opens and decodes a label file
func ReadLabelsFile(path string) ([]byte, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	labels, err := ReadLabels(f)
	return labels, errors.Wrapf(err, "file '%s'", path)
}
