package conf

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// Config is the explicit configuration handed to every plot operation.
type Config struct {
	WorkDir      string
	ToolPath     string
	NCLPath      string
	TemplatePath string
	ImageFormat  string
	TSCpl        string
	Year0        int
	Year1        int
	ToolTimeout  time.Duration
	Plots        []string
	// Env is passed to every external tool on top of the process environment.
	Env map[string]string
}

// FromFlags builds Config from registered flags.
// Paths are made absolute so plots do not depend on the process working directory.
func FromFlags() (Config, error) {
	cfg := Config{
		WorkDir:      WorkDirFlag.Value(),
		ToolPath:     ToolPathFlag.Value(),
		NCLPath:      NCLPathFlag.Value(),
		TemplatePath: TemplatePathFlag.Value(),
		ImageFormat:  ImageFormatFlag.Value(),
		TSCpl:        TSCplFlag.Value(),
		Year0:        Year0Flag.Value(),
		Year1:        Year1Flag.Value(),
		ToolTimeout:  ToolTimeoutFlag.Value(),
		Plots:        PlotsFlag.Value(),
	}

	for _, p := range []*string{&cfg.WorkDir, &cfg.ToolPath, &cfg.NCLPath} {
		abs, err := filepath.Abs(*p)
		if err != nil {
			return Config{}, errors.Wrapf(err, "cannot resolve path %q", *p)
		}
		*p = abs
	}

	if cfg.ImageFormat == "" {
		return Config{}, errors.New("image format cannot be empty")
	}
	if cfg.Year1 < cfg.Year0 {
		return Config{}, errors.Errorf("year1 (%d) is before year0 (%d)", cfg.Year1, cfg.Year0)
	}

	cfg.Env = cfg.ToolEnv()
	return cfg, nil
}

// ToolEnv returns variables the NCL and awk scripts read from their environment.
func (c Config) ToolEnv() map[string]string {
	return map[string]string{
		"WORKDIR":  c.WorkDir,
		"TOOLPATH": c.ToolPath,
		"NCLPATH":  c.NCLPath,
		"TS_CPL":   c.TSCpl,
		"YEAR0":    fmt.Sprintf("%d", c.Year0),
		"YEAR1":    fmt.Sprintf("%d", c.Year1),
	}
}
