package charts

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
)

// PNG dimensions.
const (
	PNGWidth  = 480
	PNGHeight = 480
)

// WritePNG renders c as a donut chart PNG to w.
func WritePNG(w io.Writer, c Chart) error {
	values := make([]chart.Value, 0, len(c.Slices))
	for _, s := range c.Slices {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %.0f", s.Label, s.Value),
			Value: s.Value,
		})
	}
	donut := chart.DonutChart{
		Title:  c.Title,
		Width:  PNGWidth,
		Height: PNGHeight,
		Values: values,
	}
	var buf bytes.Buffer
	if err := donut.Render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("render %s: %w", c.ID, err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// ExportPNG writes one <id>.png per chart into dir and returns the paths.
func ExportPNG(dir string, charts []Chart) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	paths := make([]string, 0, len(charts))
	for _, c := range charts {
		var buf bytes.Buffer
		if err := WritePNG(&buf, c); err != nil {
			return paths, err
		}
		path := filepath.Join(dir, c.ID+".png")
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
