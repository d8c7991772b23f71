package production

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/comalice/tablefsm/internal/primitives"
)

// Format selects an export encoding. Its value is the file extension.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatDOT  Format = "dot"
)

var ErrUnknownFormat = errors.New("unknown export format")

// FileExporter writes table descriptions to <dir>/<id>.<format>.
type FileExporter struct {
	dir string
	viz DefaultVisualizer
}

// NewFileExporter creates a FileExporter, ensuring the directory exists.
func NewFileExporter(dir string) (*FileExporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &FileExporter{dir: dir}, nil
}

// Save writes desc in format and returns the file path. current is only used
// by FormatDOT, to highlight a state.
func (p *FileExporter) Save(ctx context.Context, desc primitives.TableDescription, format Format, current int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = p.viz.ExportJSON(desc)
	case FormatYAML:
		data, err = p.viz.ExportYAML(desc)
	case FormatDOT:
		data = []byte(p.viz.ExportDOT(desc, current))
	default:
		return "", fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return "", fmt.Errorf("%s marshal: %w", format, err)
	}

	fn := p.path(desc.ID, format)
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", fn, err)
	}

	return fn, nil
}

// Load reads back a description written as JSON or YAML and validates it.
func (p *FileExporter) Load(ctx context.Context, id string, format Format) (primitives.TableDescription, error) {
	if err := ctx.Err(); err != nil {
		return primitives.TableDescription{}, err
	}

	fn := p.path(id, format)
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return primitives.TableDescription{}, fmt.Errorf("table %q: %w", id, os.ErrNotExist)
		}
		return primitives.TableDescription{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var desc primitives.TableDescription
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &desc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &desc)
	default:
		return primitives.TableDescription{}, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return primitives.TableDescription{}, fmt.Errorf("%s unmarshal: %w", format, err)
	}
	desc.ID = id // Ensure ID
	if err := desc.Validate(); err != nil {
		return primitives.TableDescription{}, fmt.Errorf("description validation after load: %w", err)
	}

	return desc, nil
}

func (p *FileExporter) path(id string, format Format) string {
	return filepath.Join(p.dir, id+"."+string(format))
}
