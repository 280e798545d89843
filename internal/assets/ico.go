package assets

import (
	"bytes"
	"fmt"
	"image"
	"sort"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/vaulty-app/brandgen/internal/render"
)

// EncodeICO returns a multi-resolution ICO container. base must be square
// and match the largest requested size; smaller members are derived from it
// by Catmull-Rom downsampling. Members are stored smallest first.
func EncodeICO(base image.Image, sizes []int) ([]byte, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("ico: no sizes requested")
	}
	ordered := append([]int(nil), sizes...)
	sort.Ints(ordered)
	largest := ordered[len(ordered)-1]
	if b := base.Bounds(); b.Dx() != largest || b.Dy() != largest {
		return nil, fmt.Errorf("ico: base image is %dx%d, want %dx%d",
			b.Dx(), b.Dy(), largest, largest)
	}
	members := make([]image.Image, 0, len(ordered))
	for _, size := range ordered {
		if size == largest {
			members = append(members, base)
			continue
		}
		members = append(members, render.Downsample(base, size))
	}
	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, members); err != nil {
		return nil, fmt.Errorf("ico: %w", err)
	}
	return buf.Bytes(), nil
}

// ICO builds the favicon container artifact for base at path.
func ICO(path string, base image.Image, sizes []int) (Artifact, error) {
	data, err := EncodeICO(base, sizes)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{
		Path: path,
		Data: data,
		Note: fmt.Sprintf("sizes %v", sizes),
	}, nil
}
