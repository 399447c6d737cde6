// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stego

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/BurntSushi/toml"
)

//go:embed fillers.toml
var defaultFillersTOML string

const defaultNoLetterSuffix = "nd"

// FillerPools is the padding material for short carriers.
type FillerPools struct {
	Lines          []string `toml:"lines"`
	Words          []string `toml:"words"`
	NoLetterSuffix string   `toml:"no_letter_suffix"`
}

var (
	defaultPools     *FillerPools
	defaultPoolsOnce sync.Once
)

// DefaultFillerPools returns the built-in pools. Callers must not modify them.
func DefaultFillerPools() *FillerPools {
	defaultPoolsOnce.Do(func() {
		pools, err := LoadFillerPools(strings.NewReader(defaultFillersTOML))
		if err != nil {
			panic(fmt.Sprintf("stego: built-in filler pools: %v", err))
		}
		defaultPools = pools
	})
	return defaultPools
}

// LoadFillerPools decodes TOML filler pools from r.
func LoadFillerPools(r io.Reader) (*FillerPools, error) {
	var pools FillerPools
	md, err := toml.NewDecoder(r).Decode(&pools)
	if err != nil {
		return nil, fmt.Errorf("failed to decode filler pools: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown filler pool keys: %v", undecoded)
	}
	if err := pools.validate(); err != nil {
		return nil, err
	}
	if pools.NoLetterSuffix == "" {
		pools.NoLetterSuffix = defaultNoLetterSuffix
	}
	return &pools, nil
}

// LoadFillerFile reads filler pools from a TOML file.
func LoadFillerFile(path string) (*FillerPools, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open filler file: %w", err)
	}
	defer f.Close()
	return LoadFillerPools(f)
}

func (p *FillerPools) validate() error {
	if len(p.Lines) == 0 {
		return fmt.Errorf("filler pools: no lines")
	}
	if len(p.Words) == 0 {
		return fmt.Errorf("filler pools: no words")
	}
	for i, line := range p.Lines {
		if countLetters(line) == 0 || strings.Contains(line, "\n") {
			return fmt.Errorf("filler pools: line %d must be a single line with a letter", i)
		}
	}
	if strings.IndexFunc(p.NoLetterSuffix, unicode.IsSpace) >= 0 {
		return fmt.Errorf("filler pools: no_letter_suffix must not contain spaces")
	}
	for i, word := range p.Words {
		if countLetters(word) == 0 || len(strings.Fields(word)) != 1 {
			return fmt.Errorf("filler pools: word %d must be a single word with a letter", i)
		}
	}
	return nil
}

// Selector chooses which pool entry pads a carrier.
type Selector interface {
	// Pick returns an index in [0, n) for the i-th filler drawn from a pool of n.
	Pick(i, n int) int
}

// Cyclic walks the pool in order starting at Offset.
type Cyclic struct {
	Offset int
}

func (c Cyclic) Pick(i, n int) int {
	idx := (c.Offset + i) % n
	if idx < 0 {
		idx += n
	}
	return idx
}
