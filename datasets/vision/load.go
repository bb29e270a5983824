package vision

import "context"
import "path/filepath"

import "github.com/magneticio/go-common/logging"
import "github.com/pkg/errors"

import "github.com/neurlang/fashionmnist/datasets/idx"
import "github.com/neurlang/fashionmnist/parallel"

// Load returns the train or test split of the variant, downloading it first when
// opts.Download is set.
func Load(ctx context.Context, opts Options, v *Variant) (*Dataset, error) {
	root, err := opts.root()
	if err != nil {
		return nil, err
	}
	if opts.Download {
		if err := Download(ctx, opts, v); err != nil {
			return nil, err
		}
	}

	var dir = v.Dir(root)
	imgRes, lblRes := v.Split(opts.Train)
	for _, r := range []Resource{imgRes, lblRes} {
		err := Verify(filepath.Join(dir, r.File), r)
		if errors.Cause(err) == ErrNotFound {
			return nil, errors.Wrap(err, "dataset not found, use download to fetch it")
		}
		if err != nil {
			return nil, err
		}
	}

	images, err := idx.ReadImagesFile(filepath.Join(dir, imgRes.File))
	if err != nil {
		return nil, err
	}
	labels, err := idx.ReadLabelsFile(filepath.Join(dir, lblRes.File))
	if err != nil {
		return nil, err
	}
	if images.Rows != ImgSize || images.Cols != ImgSize {
		return nil, errors.Wrapf(idx.ErrFormat, "images are %dx%d, expected %dx%d",
			images.Rows, images.Cols, ImgSize, ImgSize)
	}
	if images.Count != len(labels) {
		return nil, errors.Wrapf(idx.ErrFormat, "%d images but %d labels", images.Count, len(labels))
	}
	if len(v.Classes) > 0 {
		for i, l := range labels {
			if int(l) >= len(v.Classes) {
				return nil, errors.Wrapf(idx.ErrFormat, "label %d of sample %d out of range", l, i)
			}
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var d = &Dataset{
		Name:    v.Name,
		Root:    root,
		Train:   opts.Train,
		Classes: v.Classes,
		Images:  make([]Input, images.Count),
		Small:   make([]SmallInput, images.Count),
		Labels:  labels,
	}
	parallel.ForEach(images.Count, opts.Threads, func(i int) {
		copy(d.Images[i][:], images.Image(i))
		d.Small[i] = Downscale(&d.Images[i])
	})
	logging.Info("Loaded %d %s samples from '%s'\n", d.Len(), v.Name, dir)
	return d, nil
}
