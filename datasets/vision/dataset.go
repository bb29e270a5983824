// Package vision loads image classification datasets stored in the IDX format, such as MNIST
// and FashionMNIST. It downloads the raw files into a root directory, verifies them and decodes
// the requested split into memory. Progress goes through the go-common logging package, which
// the program is expected to have set up with logging.Init.
package vision

import "fmt"
import "math/rand"

import "gonum.org/v1/gonum/mat"

import "github.com/neurlang/fashionmnist/parallel"

// original
const ImgSize = 28

// downscaled
const SmallImgSize = 13

type Input [ImgSize * ImgSize]byte

type SmallInput [SmallImgSize * SmallImgSize]byte

func max4(a, b, c, d byte) (o byte) {
	o = a
	if b > o {
		o = b
	}
	if c > o {
		o = c
	}
	if d > o {
		o = d
	}
	return o
}

// Downscale max pools the image, skipping the outer border, into a 13x13 image
func Downscale(img *Input) (small SmallInput) {
	for y := 0; y < SmallImgSize; y++ {
		for x := 0; x < SmallImgSize; x++ {
			var base = 1 + ImgSize + 2*x + 2*y*ImgSize
			small[y*SmallImgSize+x] = max4(
				img[base],
				img[base+1],
				img[base+ImgSize],
				img[base+ImgSize+1],
			)
		}
	}
	return
}

// Sample is one image of a dataset together with its label
type Sample struct {
	Image *Input
	Small *SmallInput
	Label byte
}

// Dataset is one split of a variant held in memory
type Dataset struct {
	Name    string
	Root    string
	Train   bool
	Classes []string

	Images []Input
	Small  []SmallInput
	Labels []byte
}

func (d *Dataset) Len() int {
	return len(d.Labels)
}

// Sample returns the i-th image, pointing into the dataset
func (d *Dataset) Sample(i int) Sample {
	return Sample{
		Image: &d.Images[i],
		Small: &d.Small[i],
		Label: d.Labels[i],
	}
}

// ClassName returns the name of a label, or its number when the variant has no names
func (d *Dataset) ClassName(label byte) string {
	if int(label) < len(d.Classes) {
		return d.Classes[label]
	}
	return fmt.Sprint(label)
}

// Shuffle permutes the samples using r, or the global source when r is nil
func (d *Dataset) Shuffle(r *rand.Rand) {
	var swap = func(i, j int) {
		d.Labels[i], d.Labels[j] = d.Labels[j], d.Labels[i]
		d.Images[i], d.Images[j] = d.Images[j], d.Images[i]
		d.Small[i], d.Small[j] = d.Small[j], d.Small[i]
	}
	if r == nil {
		rand.Shuffle(d.Len(), swap)
		return
	}
	r.Shuffle(d.Len(), swap)
}

// Float32 returns the i-th image with pixels scaled into [0, 1]
func (d *Dataset) Float32(i int) []float32 {
	var out = make([]float32, ImgSize*ImgSize)
	for j, p := range d.Images[i] {
		out[j] = float32(p) / 255
	}
	return out
}

// Tensor returns all images as a Len() x 784 matrix with pixels scaled into [0, 1]
func (d *Dataset) Tensor() *mat.Dense {
	if d.Len() == 0 {
		return nil
	}
	const cols = ImgSize * ImgSize
	var data = make([]float64, d.Len()*cols)
	parallel.ForEach(d.Len(), 0, func(i int) {
		var row = data[i*cols : (i+1)*cols]
		for j, p := range d.Images[i] {
			row[j] = float64(p) / 255
		}
	})
	return mat.NewDense(d.Len(), cols, data)
}

// Counts returns how many samples each label has
func (d *Dataset) Counts() map[byte]int {
	var counts = make(map[byte]int)
	for _, l := range d.Labels {
		counts[l]++
	}
	return counts
}

func (d *Dataset) String() string {
	var split = "Test"
	if d.Train {
		split = "Train"
	}
	return fmt.Sprintf("Dataset %s\n    Number of datapoints: %d\n    Root location: %s\n    Split: %s",
		d.Name, d.Len(), d.Root, split)
}
