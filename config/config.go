package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/tapedrive-io/crankx/shared"
)

const (
	MinSegmentSize = 32
	MaxSegmentSize = 1 << 20

	DefaultDataDirName = "crankx"

	// DefaultSegmentSize is the size of one tape segment, in bytes.
	DefaultSegmentSize = 128

	// DefaultSearchDifficulty is the minimal number of leading zero bits a
	// digest must score for the nonce search to accept it.
	DefaultSearchDifficulty = 8
)

var DefaultDataDir string

func init() {
	home, _ := os.UserHomeDir()
	DefaultDataDir = filepath.Join(home, DefaultDataDirName)
}

type Config struct {
	DataDir string `mapstructure:"datadir"`

	// Protocol params.
	SegmentSize uint `mapstructure:"segment-size"`

	// Mining params.
	SearchDifficulty uint `mapstructure:"search-difficulty"`
	SearchWorkers    uint `mapstructure:"search-workers"`
}

func (cfg *Config) Validate() error {
	if cfg.SegmentSize < MinSegmentSize {
		return fmt.Errorf("invalid `SegmentSize`; expected: >= %d, given: %d", MinSegmentSize, cfg.SegmentSize)
	}

	if cfg.SegmentSize > MaxSegmentSize {
		return fmt.Errorf("invalid `SegmentSize`; expected: <= %d, given: %d", MaxSegmentSize, cfg.SegmentSize)
	}

	if cfg.SearchDifficulty > shared.MaxDifficulty {
		return fmt.Errorf("invalid `SearchDifficulty`; expected: <= %d, given: %d", shared.MaxDifficulty, cfg.SearchDifficulty)
	}

	if cfg.SearchWorkers < 1 {
		return fmt.Errorf("invalid `SearchWorkers`; expected: >= 1, given: %d", cfg.SearchWorkers)
	}

	return nil
}

func DefaultConfig() *Config {
	return &Config{
		DataDir: DefaultDataDir,

		SegmentSize: DefaultSegmentSize,

		SearchDifficulty: DefaultSearchDifficulty,
		SearchWorkers:    uint(runtime.NumCPU()),
	}
}
