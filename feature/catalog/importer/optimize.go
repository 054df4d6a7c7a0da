package importer

import (
	"context"
	"fmt"
	"os/exec"
)

// Optimizer post-processes a freshly fetched media file in place.
// Optimization is best-effort: a failure is logged, not propagated.
type Optimizer interface {
	Optimize(ctx context.Context, path string) error
}

// jpegoptim shells out to the jpegoptim binary, mirroring the settings the
// legacy pipeline used (strip metadata, progressive, quality cap 70).
type jpegoptim struct {
	bin  string
	args []string
}

// NewJpegoptim returns an Optimizer invoking the given jpegoptim binary.
func NewJpegoptim(bin string) Optimizer {
	return &jpegoptim{
		bin:  bin,
		args: []string{"--strip-all", "--all-progressive", "--max=70"},
	}
}

func (o *jpegoptim) Optimize(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, o.bin, append(append([]string{}, o.args...), path)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("jpegoptim %s: %w (%s)", path, err, out)
	}
	return nil
}

// NopOptimizer does nothing; used when no optimizer binary is configured.
type NopOptimizer struct{}

func (NopOptimizer) Optimize(context.Context, string) error { return nil }
