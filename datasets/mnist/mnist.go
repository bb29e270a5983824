// Package mnist provides the handwritten digit dataset of LeCun et al.: 60000 train and 10000
// test grayscale 28x28 images of the digits 0 to 9.
package mnist

import "context"

import "github.com/neurlang/fashionmnist/datasets/vision"

const inferSetImg = "t10k-images-idx3-ubyte.gz"
const inferSetVal = "t10k-labels-idx1-ubyte.gz"
const trainSetImg = "train-images-idx3-ubyte.gz"
const trainSetVal = "train-labels-idx1-ubyte.gz"
const inferDigImg = "8d422c7b0a1c1c79245a5bcf07fe86e33eeafee792b84584aec276f5a2dbc4e6"
const inferDigVal = "f7ae60f92e00ec6debd23a6088c31dbd2371eca3ffa0defaefb259924204aec6"
const trainDigImg = "440fcabf73cc546fa21475e81ea370265605f56be210a4024d2ca8f203523609"
const trainDigVal = "3552534a0a558bbed6aed32b30c495cca23d567ec52cac8be1a0730e8010255c"

var Variant = &vision.Variant{
	Name: "MNIST",
	Mirrors: []string{
		"https://ossci-datasets.s3.amazonaws.com/mnist/",
		"http://yann.lecun.com/exdb/mnist/",
	},
	TrainImages: vision.Resource{File: trainSetImg, Digest: trainDigImg},
	TrainLabels: vision.Resource{File: trainSetVal, Digest: trainDigVal},
	TestImages:  vision.Resource{File: inferSetImg, Digest: inferDigImg},
	TestLabels:  vision.Resource{File: inferSetVal, Digest: inferDigVal},
	Classes:     []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"},
}

func Load(ctx context.Context, opts vision.Options) (*vision.Dataset, error) {
	return vision.Load(ctx, opts, Variant)
}
