package config

import (
	"fmt"

	"github.com/kevinliao2003/wordsim/pkg/wordsim"
)

// Loader reads configuration files and assembles model options.
type Loader struct {
	ParamsPath   string
	StoplistPath string
}

// Load builds wordsim.Options from the configured files. A missing
// params path yields zero-valued options (the caller supplies defaults);
// a missing stoplist path yields no stopwords.
func (l *Loader) Load() (wordsim.Options, error) {
	var opts wordsim.Options

	if l.ParamsPath != "" {
		params, err := LoadParams(l.ParamsPath)
		if err != nil {
			return wordsim.Options{}, fmt.Errorf("load params: %w", err)
		}
		opts.WindowSize = params.WindowSize
		opts.Epsilon = params.Epsilon
		opts.CacheSize = params.CacheSize
	}

	if l.StoplistPath != "" {
		stoplist, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return wordsim.Options{}, fmt.Errorf("load stoplist: %w", err)
		}
		opts.Stopwords = stoplist.Terms
	}

	return opts, nil
}
