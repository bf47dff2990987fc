package train

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extension marks custom train files.
const Extension = ".train"

// LoadFile reads a custom train. File trains animate every tick and have no smoke.
func LoadFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("load train: %w", err)
	}
	return Definition{
		Name:       strings.TrimSuffix(filepath.Base(path), Extension),
		Train:      string(data),
		TrainSpeed: 1,
	}, nil
}

// ListFiles returns the *.train files in dir, sorted by name.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list trains: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != Extension {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadRandom loads one of the *.train files in dir.
func LoadRandom(rng *rand.Rand, dir string) (Definition, error) {
	paths, err := ListFiles(dir)
	if err != nil {
		return Definition{}, err
	}
	if len(paths) == 0 {
		return Definition{}, fmt.Errorf("%w in %s", ErrNoTrainsFound, dir)
	}
	return LoadFile(paths[rng.IntN(len(paths))])
}
