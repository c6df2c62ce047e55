package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/san-kum/gravitylab/internal/params"
	"github.com/san-kum/gravitylab/internal/scene"
)

// WriteSnapshot renders one frame of r onto a w x h SVG and writes it to
// path, creating parent directories. r is advanced by one frame; pass a
// fork to leave a live view untouched.
func WriteSnapshot(path string, r *scene.Renderer, p params.Parameters, w, h float64) error {
	svg := NewSVG(w, h)
	if f := r.Render(svg, p); !f.Drawn {
		return fmt.Errorf("export: empty surface %gx%g", w, h)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := svg.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return out.Close()
}
