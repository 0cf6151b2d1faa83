package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Params holds the model parameters loaded from a YAML file.
type Params struct {
	WindowSize int     `yaml:"window_size"`
	Epsilon    float64 `yaml:"epsilon"`
	CacheSize  int     `yaml:"cache_size"`
}

// LoadParams loads model parameters from a YAML file
func LoadParams(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Params
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}
