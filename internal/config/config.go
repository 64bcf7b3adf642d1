package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coreman2200/funtimes-hauntlight/internal/motion"
)

type Stage struct {
	State      string  `yaml:"state"`
	Intensity  float64 `yaml:"intensity"`
	DurationMs int     `yaml:"duration_ms"`
}

type LightningCfg struct {
	MinDelayMs int     `yaml:"min_delay_ms"`
	MaxDelayMs int     `yaml:"max_delay_ms"`
	Pattern    []Stage `yaml:"pattern,omitempty"`
}

type StripCfg struct {
	Port           string   `yaml:"port"` // spireg name, "" = first
	PixelsPerLight int      `yaml:"pixels_per_light"`
	Lights         []string `yaml:"lights,omitempty"`
	FreqKHz        int      `yaml:"freq_khz"`
	ExposureEV     float64  `yaml:"exposure_ev"`
	Gamma          float64  `yaml:"gamma"`
	WhiteCap       float64  `yaml:"white_cap"`
}

type CameraCfg struct {
	FOV      float64    `yaml:"fov"`
	Position [3]float64 `yaml:"position"`
	Damping  float64    `yaml:"damping"`
}

type Config struct {
	Driver    string `yaml:"driver"` // "sim" | "strip" | "console"
	Addr      string `yaml:"addr"`
	FPS       int    `yaml:"fps"`
	Seed      int64  `yaml:"seed"` // 0 = time-seeded
	ModelPath string `yaml:"model_path"`

	Ghosts    []motion.Profile `yaml:"ghosts,omitempty"`
	Lightning LightningCfg     `yaml:"lightning"`
	Camera    CameraCfg        `yaml:"camera"`
	Strip     StripCfg         `yaml:"strip,omitempty"`
}

// Default matches the haunted-house scene.
func Default() *Config {
	return &Config{
		Driver:    "sim",
		Addr:      ":8080",
		FPS:       60,
		ModelPath: "assets/ghost/scene.gltf",
		Ghosts:    append([]motion.Profile(nil), motion.Defaults[:]...),
		Lightning: LightningCfg{MinDelayMs: 2000, MaxDelayMs: 7000},
		Camera:    CameraCfg{FOV: 75, Position: [3]float64{1, 3, 10}, Damping: 0.05},
		Strip:     StripCfg{PixelsPerLight: 8, FreqKHz: 2500, Gamma: 2.2, WhiteCap: 2.2},
	}
}

// Load reads path over the defaults; keys absent from the file keep their
// default values.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
