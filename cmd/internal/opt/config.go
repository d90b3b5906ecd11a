package opt

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/adrg/xdg"

	"github.com/nelhage/isolation/ai"
)

const (
	configFile = "isolation/config.json"
	dbFile     = "isolation/games.db"
)

// File is the optional JSON config file. Its values become the flag
// defaults of every command.
type File struct {
	Depth     int          `json:"depth"`
	Heuristic ai.Heuristic `json:"heuristic"`
	Debug     int          `json:"debug"`
	Size      string       `json:"size"`
	Limit     string       `json:"limit"`
	DB        string       `json:"db"`
}

var Defaults File

// ConfigPath returns the config file under the XDG config dirs, or ""
// if there is none.
func ConfigPath() string {
	path, err := xdg.SearchConfigFile(configFile)
	if err != nil {
		return ""
	}
	return path
}

// Load reads path into Defaults. An empty path loads the file found
// by ConfigPath, if any.
func Load(path string) error {
	explicit := path != ""
	if !explicit {
		path = ConfigPath()
	}
	if path == "" {
		return nil
	}
	f, err := ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return nil
	}
	if err != nil {
		return err
	}
	Defaults = f
	return nil
}

func ReadFile(path string) (File, error) {
	var f File
	bs, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := json.Unmarshal(bs, &f); err != nil {
		return f, fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return f, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func (f *File) Validate() error {
	if f.Depth < 0 {
		return fmt.Errorf("bad depth: %d", f.Depth)
	}
	if f.Limit != "" {
		if _, err := time.ParseDuration(f.Limit); err != nil {
			return fmt.Errorf("bad limit: %w", err)
		}
	}
	return nil
}

// LimitOr returns the configured move limit, or def if unset.
func (f *File) LimitOr(def time.Duration) time.Duration {
	if f.Limit == "" {
		return def
	}
	d, err := time.ParseDuration(f.Limit)
	if err != nil {
		return def
	}
	return d
}

// DefaultDB is the game database: the config file's db, or a file in
// the XDG data dir.
func DefaultDB() (string, error) {
	if Defaults.DB != "" {
		return Defaults.DB, nil
	}
	return xdg.DataFile(dbFile)
}
