package resolution

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func (r *registryImpl) ConfigPath() string {
	if r.configPath != "" {
		return r.configPath
	}
	home, err := r.homeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ConfigFileName)
}

func (r *registryImpl) Persist() {
	r.PersistIndex(r.CurrentIndex())
}

func (r *registryImpl) PersistIndex(idx int) {
	if idx < 0 || idx >= NumPresets {
		r.logger.Debug().Int("index", idx).Msg("ignoring out-of-range resolution save")
		return
	}
	path := r.ConfigPath()
	if path == "" {
		r.logger.Debug().Msg("no home directory, resolution not saved")
		return
	}

	if err := os.WriteFile(path, []byte(strconv.Itoa(idx)+"\n"), 0o644); err != nil {
		r.logger.Warn().Err(err).Str("path", path).Msg("failed to save resolution")
		return
	}
	r.logger.Debug().Int("index", idx).Str("path", path).Msg("resolution saved")
}

func (r *registryImpl) Restore() {
	path := r.ConfigPath()
	if path == "" {
		return
	}

	idx, ok := readIndex(path)
	if !ok {
		r.logger.Debug().Str("path", path).Msg("no saved resolution")
		return
	}
	if idx < 0 || idx >= NumPresets {
		r.logger.Debug().Int("index", idx).Msg("ignoring out-of-range saved resolution")
		return
	}

	r.mu.Lock()
	r.index = idx
	r.mu.Unlock()
	r.logger.Debug().Int("index", idx).Msg("resolution restored")
}

// readIndex parses the first whitespace-separated token of the file as an integer.
func readIndex(path string) (int, bool) {
	f, err := os.Open(path)
	if err != nil {
		return 0, false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		return 0, false
	}
	idx, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return 0, false
	}
	return idx, true
}
