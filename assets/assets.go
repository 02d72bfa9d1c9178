package assets

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strconv"

	"github.com/automoto/testarossa/logging"
	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spacemonkeygo/monkit/v3"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed all:models
	modelFS embed.FS

	mon = monkit.Package()

	// Error is the class of every asset loading failure.
	Error = errs.Class("assets")
)

// Box is an axis-aligned box in model space.
type Box struct {
	Min [3]float64 `yaml:"min"`
	Max [3]float64 `yaml:"max"`
}

type modelFile struct {
	Name  string   `yaml:"name"`
	Scale float64  `yaml:"scale"`
	Parts []string `yaml:"parts"`
}

type partFile struct {
	Name  string `yaml:"name"`
	Boxes []Box  `yaml:"boxes"`
}

// Segment is one wireframe edge.
type Segment struct {
	A, B mgl64.Vec3
}

// Mesh is a wireframe in model space: origin on the ground plane, +Z toward
// the camera.
type Mesh struct {
	Segments []Segment
}

type Model struct {
	Name string
	Mesh *Mesh
}

// LoadModel reads models/<name>.yaml and its parts from the embedded assets.
func LoadModel(ctx context.Context, name string) (_ *Model, err error) {
	defer mon.Task()(&ctx)(&err)
	return loadModel(ctx, modelFS, name)
}

func loadModel(ctx context.Context, fsys fs.FS, name string) (*Model, error) {
	log := logging.L().Named("assets")

	data, err := fs.ReadFile(fsys, path.Join("models", name+".yaml"))
	if err != nil {
		return nil, Error.Wrap(fmt.Errorf("model %q: %w", name, err))
	}

	var mf modelFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, Error.New("model %q: %v", name, err)
	}
	if len(mf.Parts) == 0 {
		return nil, Error.New("model %q has no parts", name)
	}
	scale := mf.Scale
	if scale == 0 {
		scale = 1
	}

	parts := make([][]Segment, len(mf.Parts))
	g, gctx := errgroup.WithContext(ctx)
	for i, file := range mf.Parts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			raw, err := fs.ReadFile(fsys, path.Join("models", "parts", file))
			if err != nil {
				return Error.Wrap(fmt.Errorf("part %q: %w", file, err))
			}
			log.Debug("part read",
				zap.String("model", name),
				zap.String("part", file),
				zap.Int("bytes", len(raw)),
				zap.String("xxhash", strconv.FormatUint(xxhash.Sum64(raw), 16)))

			segs, err := parsePart(file, raw)
			if err != nil {
				return err
			}
			parts[i] = segs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, Error.Wrap(err)
		}
		return nil, err
	}

	mesh := &Mesh{}
	for _, segs := range parts {
		for _, s := range segs {
			mesh.Segments = append(mesh.Segments, Segment{A: s.A.Mul(scale), B: s.B.Mul(scale)})
		}
	}

	modelName := mf.Name
	if modelName == "" {
		modelName = name
	}
	log.Info("model loaded",
		zap.String("model", modelName),
		zap.Int("parts", len(parts)),
		zap.Int("segments", len(mesh.Segments)))

	return &Model{Name: modelName, Mesh: mesh}, nil
}

func parsePart(file string, raw []byte) ([]Segment, error) {
	var pf partFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return nil, Error.New("part %q: %v", file, err)
	}
	if len(pf.Boxes) == 0 {
		return nil, Error.New("part %q has no boxes", file)
	}

	var group errs.Group
	segs := make([]Segment, 0, len(pf.Boxes)*12)
	for i, b := range pf.Boxes {
		for axis := 0; axis < 3; axis++ {
			if b.Min[axis] > b.Max[axis] {
				group.Add(fmt.Errorf("part %q box %d: min > max on axis %d", file, i, axis))
			}
		}
		segs = append(segs, b.Edges()...)
	}
	if err := group.Err(); err != nil {
		return nil, Error.Wrap(err)
	}
	return segs, nil
}

// Edges returns the box's twelve edges.
func (b Box) Edges() []Segment {
	var c [8]mgl64.Vec3
	for i := range c {
		x, y, z := b.Min[0], b.Min[1], b.Min[2]
		if i&1 != 0 {
			x = b.Max[0]
		}
		if i&2 != 0 {
			y = b.Max[1]
		}
		if i&4 != 0 {
			z = b.Max[2]
		}
		c[i] = mgl64.Vec3{x, y, z}
	}

	// corners differing in exactly one bit share an edge
	edges := make([]Segment, 0, 12)
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				edges = append(edges, Segment{A: c[i], B: c[i|bit]})
			}
		}
	}
	return edges
}
