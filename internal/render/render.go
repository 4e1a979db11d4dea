/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

// Package render is the facade: it turns a fully-populated Options into a
// reprojected pixmap, wiring together pkg/source, pkg/filter, pkg/sink, and
// the two file-system collaborators (internal/imageio, internal/history)
// that the rest of this module's packages know nothing about.
package render

/****************************************************************************************************************/

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/oklog/ulid"
	"github.com/stellarforge/planetcast/internal/history"
	"github.com/stellarforge/planetcast/internal/imageio"
	"github.com/stellarforge/planetcast/pkg/filter"
	"github.com/stellarforge/planetcast/pkg/matrix3"
	"github.com/stellarforge/planetcast/pkg/pixmap"
	"github.com/stellarforge/planetcast/pkg/renderopts"
	"github.com/stellarforge/planetcast/pkg/sink"
	"github.com/stellarforge/planetcast/pkg/source"
)

/****************************************************************************************************************/

// ErrCancelled is returned by Run when the progress callback (or a
// cancelled ctx) stopped the render before it completed. cmd/ propagates
// this to a non-zero process exit code; library callers for whom
// cancellation is an expected outcome should set
// Options.ExpectCancellation to get a nil error instead.
var ErrCancelled = errors.New("render: cancelled")

/****************************************************************************************************************/

// CosineBlurOptions configures the optional diffuse-irradiance pre-pass.
// It is only meaningful when Source decodes a cube map, since NewCosineBlur
// samples all six faces of its inner source per output direction.
type CosineBlurOptions struct {
	Enabled                    bool
	Size                       int
	UnmaskedScale, MaskedScale float64
}

/****************************************************************************************************************/

// Options is every parameter a render needs, populated by cmd/ from parsed
// flags.
type Options struct {
	InputPath  string
	OutputPath string

	SourceKind source.Kind
	SinkKind   sink.Kind
	Grid       source.GridOptions

	Size int
	renderopts.Options

	RotateXDeg, RotateYDeg, RotateZDeg float64
	Flip                               bool

	CosineBlur CosineBlurOptions

	BitDepth imageio.BitDepth

	HistoryPath string

	// ExpectCancellation tells Run that a cancelled progress callback is a
	// normal outcome for this job, not a failure: Run returns nil instead
	// of ErrCancelled. cmd/ never sets this, so CLI invocations always
	// surface a cancelled render as a non-zero exit code.
	ExpectCancellation bool
}

/****************************************************************************************************************/

// Job is one render attempt, tagged with a ULID for correlating its log
// lines and (if requested) its history.Entry.
type Job struct {
	ID   ulid.ULID
	Opts Options
}

/****************************************************************************************************************/

// New constructs a Job with a fresh, time-ordered ULID.
func New(opts Options) Job {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return Job{
		ID:   ulid.MustNew(ulid.Timestamp(time.Now()), entropy),
		Opts: opts,
	}
}

/****************************************************************************************************************/

// rotationMatrix composes --rotate and --flip in the fixed order
// identity → RotateX(rx) → RotateZ(rz) → RotateY(ry), then pre-composes the
// --flip reflection, matching pkg/matrix3's documented composition order.
func (j Job) rotationMatrix() matrix3.Matrix {
	m := matrix3.Identity()
	m = matrix3.Multiply(matrix3.RotateX(deg2rad(j.Opts.RotateXDeg)), m)
	m = matrix3.Multiply(matrix3.RotateZ(deg2rad(j.Opts.RotateZDeg)), m)
	m = matrix3.Multiply(matrix3.RotateY(deg2rad(j.Opts.RotateYDeg)), m)
	if j.Opts.Flip {
		m = matrix3.Multiply(matrix3.Scale(-1, 1, 1), m)
	}
	return m
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

/****************************************************************************************************************/

// buildSource decodes pix (nil for the procedural grid generator) into a
// source.Source, wrapping it with the rotation filter and, if requested,
// the cosine-blur filter. A failure here never leaves a partially built
// chain behind: a Go error return means the chain variable was never
// assigned in the first place.
func (j Job) buildSource(pix *pixmap.Pixmap) (source.Source, error) {
	src, err := source.New(j.Opts.SourceKind, pix, j.Opts.Grid)
	if err != nil {
		return nil, err
	}

	if m := j.rotationMatrix(); !m.IsIdentity() {
		src = filter.NewMatrixTransform(src, m)
	}

	if j.Opts.CosineBlur.Enabled {
		src = filter.NewCosineBlur(src, j.Opts.CosineBlur.Size, j.Opts.CosineBlur.UnmaskedScale, j.Opts.CosineBlur.MaskedScale)
	}

	return src, nil
}

/****************************************************************************************************************/

// RunWithPixmap runs the render pipeline against an already-decoded pixmap,
// bypassing internal/imageio entirely. Library callers and this module's
// own integration tests use this to exercise the facade without touching
// the file system.
func (j Job) RunWithPixmap(ctx context.Context, pix *pixmap.Pixmap, progress sink.ProgressFunc) (*pixmap.Pixmap, error) {
	src, err := j.buildSource(pix)
	if err != nil {
		return nil, fmt.Errorf("render: building source chain: %w", err)
	}

	s, err := sink.New(j.Opts.SinkKind)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	out, err := s.Render(ctx, j.Opts.Size, j.Opts.Options, src, progress)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return out, nil
}

/****************************************************************************************************************/

// Run executes the full eight-step facade sequence: decode the input (when
// the source kind needs one), build the filtered source chain, render, and
// encode the output — recording a history.Entry on the way out if
// opts.HistoryPath is set. A logging failure is printed to standard error
// and never overrides the render's own result.
func (j Job) Run(ctx context.Context, progress sink.ProgressFunc) (err error) {
	started := time.Now()

	var pix *pixmap.Pixmap
	if j.Opts.SourceKind != source.KindGrid {
		pix, err = imageio.Load(j.Opts.InputPath)
		if err != nil {
			return fmt.Errorf("render: job %s: %w", j.ID, err)
		}
	}

	out, err := j.RunWithPixmap(ctx, pix, progress)

	defer func() {
		if j.Opts.HistoryPath == "" {
			return
		}
		entry := history.Entry{
			JobID:      j.ID.String(),
			StartedAt:  started,
			Duration:   time.Since(started),
			SourceKind: string(j.Opts.SourceKind),
			SinkKind:   string(j.Opts.SinkKind),
			Succeeded:  err == nil && out != nil,
		}
		if out != nil {
			entry.Width, entry.Height = out.Width(), out.Height()
		}
		if err != nil {
			entry.Error = err.Error()
		}
		if logErr := recordHistory(j.Opts.HistoryPath, entry); logErr != nil {
			fmt.Fprintf(os.Stderr, "render: job %s: failed to record history: %v\n", j.ID, logErr)
		}
	}()

	if err != nil {
		return fmt.Errorf("render: job %s: %w", j.ID, err)
	}
	if out == nil {
		// Cancelled: the sink returns (nil, nil) on a progress-requested stop.
		if j.Opts.ExpectCancellation {
			return nil
		}
		return fmt.Errorf("render: job %s: %w", j.ID, ErrCancelled)
	}

	if err := imageio.Save(out, j.Opts.OutputPath, j.Opts.BitDepth); err != nil {
		return fmt.Errorf("render: job %s: %w", j.ID, err)
	}
	return nil
}

/****************************************************************************************************************/

func recordHistory(path string, entry history.Entry) error {
	log, err := history.Open(path)
	if err != nil {
		return err
	}
	defer log.Close()
	return log.Record(entry)
}

/****************************************************************************************************************/
