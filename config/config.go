package config

import (
	"encoding/json"
	"image"
	"os"
)

// Config holds runtime configuration for the labeling session.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Dataset selection. Paths wins over DatasetDir when both are set;
	// CaptureScreen replaces both with a single screen grab.
	DatasetDir    string   `json:"dataset_dir"`
	Paths         []string `json:"paths"`
	CaptureScreen bool     `json:"capture_screen"`

	// Optional screen region for CaptureScreen; zero size captures the full
	// screen. Set interactively via the capture region overlay.
	CaptureX int `json:"capture_x"`
	CaptureY int `json:"capture_y"`
	CaptureW int `json:"capture_w"`
	CaptureH int `json:"capture_h"`

	// Persistence and export targets.
	AnnotationsPath string `json:"annotations_path"`
	ExportPath      string `json:"export_path"`

	// Class list and optional per-class colors (CSS hex, same length as
	// Classes when set).
	Classes     []string `json:"classes"`
	ClassColors []string `json:"class_colors"`

	// Drawing parameters.
	Mode             string  `json:"mode"` // box, point, polygon
	BoxMinExtent     float64 `json:"box_min_extent"`
	PolygonCloseDist float64 `json:"polygon_close_dist"`
	HandleRadius     float64 `json:"handle_radius"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:            false,
		AnnotationsPath:  "annotations.json",
		ExportPath:       "export.json",
		Mode:             "box",
		BoxMinExtent:     0.01,
		PolygonCloseDist: 10,
		HandleRadius:     8,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	switch c.Mode {
	case "box", "point", "polygon":
	default:
		c.Mode = "box"
	}
	if c.BoxMinExtent <= 0 || c.BoxMinExtent >= 1 {
		c.BoxMinExtent = 0.01
	}
	if c.PolygonCloseDist <= 0 {
		c.PolygonCloseDist = 10
	}
	if c.HandleRadius <= 0 {
		c.HandleRadius = 8
	}
	if c.AnnotationsPath == "" {
		c.AnnotationsPath = "annotations.json"
	}
	if c.CaptureW < 0 || c.CaptureH < 0 {
		c.CaptureX, c.CaptureY, c.CaptureW, c.CaptureH = 0, 0, 0, 0
	}
	if len(c.ClassColors) != len(c.Classes) {
		// Mismatched mapping is ignored; colors are regenerated downstream.
		c.ClassColors = nil
	}
	return nil
}

// LabelColors returns the label→color mapping derived from Classes and
// ClassColors, or nil when no explicit colors are configured.
func (c *Config) LabelColors() map[string]string {
	if c == nil || len(c.ClassColors) == 0 || len(c.ClassColors) != len(c.Classes) {
		return nil
	}
	m := make(map[string]string, len(c.Classes))
	for i, cls := range c.Classes {
		m[cls] = c.ClassColors[i]
	}
	return m
}

// CaptureRegion returns the configured screen region, or nil for the full
// screen.
func (c *Config) CaptureRegion() *image.Rectangle {
	if c == nil || c.CaptureW <= 0 || c.CaptureH <= 0 {
		return nil
	}
	r := image.Rect(c.CaptureX, c.CaptureY, c.CaptureX+c.CaptureW, c.CaptureY+c.CaptureH)
	return &r
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
