// Package stream publishes a preview of the colour map to an ledrx LED
// strip over MQTT. The publish is one-shot: frames go out at a fixed
// rate for a bounded duration, then the streamer stops.
package stream

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Pixel count used when the config file does not give one.
const defaultPixels = 500

// Config holds the broker and strip settings for a preview stream.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream string `yaml:"stream"`
		}
	} `yaml:"mqtt"`
	Strip struct {
		Pixels int `yaml:"pixels"`
	} `yaml:"strip"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (Config, error) {
	var c Config

	f, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("stream: open config: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&c); err != nil {
		return c, fmt.Errorf("stream: parse config: %w", err)
	}
	if c.Strip.Pixels <= 0 {
		c.Strip.Pixels = defaultPixels
	}
	return c, nil
}
