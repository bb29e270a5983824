// Package fashionmnist provides the Zalando FashionMNIST dataset: 60000 train and 10000 test
// grayscale 28x28 images of clothing in 10 classes, stored in the same format as MNIST.
package fashionmnist

import "context"

import "github.com/neurlang/fashionmnist/datasets/vision"

// Classes are the names of the labels 0 to 9
var Classes = []string{
	"T-shirt/top",
	"Trouser",
	"Pullover",
	"Dress",
	"Coat",
	"Sandal",
	"Shirt",
	"Sneaker",
	"Bag",
	"Ankle boot",
}

const TrainSize = 60000
const TestSize = 10000

var Variant = &vision.Variant{
	Name: "FashionMNIST",
	Mirrors: []string{
		"http://fashion-mnist.s3-website.eu-central-1.amazonaws.com/",
		"https://raw.githubusercontent.com/zalandoresearch/fashion-mnist/master/data/fashion/",
	},
	TrainImages: vision.Resource{File: "train-images-idx3-ubyte.gz", Digest: "8d4fb7e6c68d591d4c3dfef9ec88bf0d"},
	TrainLabels: vision.Resource{File: "train-labels-idx1-ubyte.gz", Digest: "25c81989df183df01b3e8a0aad5dffbe"},
	TestImages:  vision.Resource{File: "t10k-images-idx3-ubyte.gz", Digest: "bef4ecab320f06d8554ea6380940ec79"},
	TestLabels:  vision.Resource{File: "t10k-labels-idx1-ubyte.gz", Digest: "bb300cfdad3c16e7a12a480ee83cd310"},
	Classes:     Classes,
}

// Load returns the train or test split, stored under opts.Root/FashionMNIST/raw
func Load(ctx context.Context, opts vision.Options) (*vision.Dataset, error) {
	return vision.Load(ctx, opts, Variant)
}

// Download fetches all four files of the dataset without decoding them
func Download(ctx context.Context, opts vision.Options) error {
	return vision.Download(ctx, opts, Variant)
}
