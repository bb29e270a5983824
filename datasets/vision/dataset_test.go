package vision

import "math/rand"
import "testing"

import "github.com/stretchr/testify/assert"

func testDataset(n int) *Dataset {
	var d = &Dataset{
		Name:   "Fixture",
		Images: make([]Input, n),
		Small:  make([]SmallInput, n),
		Labels: make([]byte, n),
	}
	for i := 0; i < n; i++ {
		for j := range d.Images[i] {
			d.Images[i][j] = byte(i + j)
		}
		d.Small[i] = Downscale(&d.Images[i])
		d.Labels[i] = byte(i % 10)
	}
	return d
}

func TestDownscaleTakesMaxOfPatch(t *testing.T) {
	var img Input
	// patch of small pixel (x=2, y=1) starts at row 3, column 5
	img[3*ImgSize+5] = 10
	img[4*ImgSize+6] = 200
	// the outer border is ignored
	img[0] = 255
	var small = Downscale(&img)
	assert.Equal(t, byte(200), small[1*SmallImgSize+2])
	assert.Equal(t, byte(0), small[0])
	var sum int
	for _, p := range small {
		sum += int(p)
	}
	assert.Equal(t, 200, sum)
}

func TestShuffleKeepsPairs(t *testing.T) {
	var d = testDataset(50)
	d.Shuffle(rand.New(rand.NewSource(1)))
	var moved bool
	for i := 0; i < d.Len(); i++ {
		var original = int(d.Images[i][0])
		assert.Equal(t, byte(original%10), d.Labels[i])
		assert.Equal(t, Downscale(&d.Images[i]), d.Small[i])
		moved = moved || original != i
	}
	assert.True(t, moved)
	d.Shuffle(nil)
	assert.Equal(t, 50, d.Len())
}

func TestTensorIsScaled(t *testing.T) {
	var d = testDataset(3)
	d.Images[2][5] = 255
	d.Images[2][6] = 0

	var m = d.Tensor()
	rows, cols := m.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, ImgSize*ImgSize, cols)
	assert.Equal(t, 1.0, m.At(2, 5))
	assert.Equal(t, 0.0, m.At(2, 6))
	assert.InDelta(t, 1.0/255, m.At(1, 0), 1e-12)
	assert.Equal(t, float32(1), d.Float32(2)[5])

	assert.Nil(t, (&Dataset{}).Tensor())
}

func TestSampleAliasesDataset(t *testing.T) {
	var d = testDataset(2)
	var s = d.Sample(1)
	s.Image[0] = 99
	assert.Equal(t, byte(99), d.Images[1][0])
	assert.Equal(t, byte(1), s.Label)
}
