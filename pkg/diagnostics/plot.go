// Package diagnostics holds the ocean diagnostics plots. Every plot checks its
// prerequisites, runs external tools to generate figures and tables, converts
// figures to the web image format and renders an HTML fragment for the report page.
package diagnostics

import (
	"context"
	"os"
	"path/filepath"

	"github.com/briandobbins/CESM-postprocessing/pkg/conf"
	"github.com/briandobbins/CESM-postprocessing/pkg/executor"
	"github.com/briandobbins/CESM-postprocessing/pkg/plot"
	"github.com/briandobbins/CESM-postprocessing/pkg/report"
	"github.com/briandobbins/CESM-postprocessing/pkg/utils/fs"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Plot is a single diagnostic plot.
type Plot interface {
	// Name returns title used on the report page.
	Name() string
	// ShortName returns identifier used on the command line.
	ShortName() string
	// Spec returns artifacts reported by the plot.
	Spec() plot.PlotSpec
	// CheckPrerequisites verifies and prepares inputs of the plot.
	CheckPrerequisites(ctx context.Context, cfg conf.Config) error
	// GeneratePlots runs plotting tools.
	GeneratePlots(ctx context.Context, cfg conf.Config) error
	// ConvertPlots converts PostScript output to cfg.ImageFormat.
	ConvertPlots(ctx context.Context, cfg conf.Config) error
	// Table reports which artifacts were produced.
	Table(cfg conf.Config) (plot.ReportTable, error)
	// CreateHTML renders the report fragment.
	CreateHTML(cfg conf.Config) (string, error)
}

// Deps are collaborators shared by all plots.
type Deps struct {
	Executor executor.Executor
	Checker  plot.Checker
	Renderer *report.Renderer
}

// base implements the parts of Plot that only depend on data.
type base struct {
	Deps
	spec         plot.PlotSpec
	shortName    string
	templateFile string
}

func (b *base) Name() string        { return b.spec.Name }
func (b *base) ShortName() string   { return b.shortName }
func (b *base) Spec() plot.PlotSpec { return b.spec }

// CheckPrerequisites checks that the working directory exists.
func (b *base) CheckPrerequisites(ctx context.Context, cfg conf.Config) error {
	log.Infof("  Checking prerequisites for : %s", b.shortName)
	return fs.IsDir(cfg.WorkDir)
}

// GeneratePlots does nothing for plots without plotting scripts.
func (b *base) GeneratePlots(ctx context.Context, cfg conf.Config) error {
	return nil
}

// ConvertPlots converts "<artifact>.ps" of every expected image artifact to cfg.ImageFormat.
// Missing PostScript files and converter failures are logged and skipped.
func (b *base) ConvertPlots(ctx context.Context, cfg conf.Config) error {
	for _, artifact := range b.spec.ExpectedArtifacts {
		img := filepath.Join(cfg.WorkDir, artifact+"."+cfg.ImageFormat)
		ok, _, err := fs.CheckFile(img, fs.Read)
		if err != nil {
			return errors.Wrapf(err, "%s: cannot check converted plot", b.shortName)
		}
		if ok {
			log.Debugf("%s: %q already converted", b.shortName, img)
			continue
		}

		ps := filepath.Join(cfg.WorkDir, artifact+".ps")
		ok, message, err := fs.CheckFile(ps, fs.Read)
		if err != nil {
			return errors.Wrapf(err, "%s: cannot check plot", b.shortName)
		}
		if !ok {
			log.Warnf("%s: %s... continuing with additional plots.", b.shortName, message)
			continue
		}

		result, err := b.Executor.Execute(ctx, convertCommand(cfg, ps, img))
		eraseOutput(b.shortName, result)
		if err != nil {
			log.Warnf("%s: converting %q failed: %v", b.shortName, ps, err)
		}
	}
	return nil
}

// Table builds the report table of the plot.
func (b *base) Table(cfg conf.Config) (plot.ReportTable, error) {
	return plot.BuildReportTable(cfg.WorkDir, cfg.ImageFormat, b.spec, b.Checker)
}

// CreateHTML renders the report table through the plot template.
func (b *base) CreateHTML(cfg conf.Config) (string, error) {
	table, err := b.Table(cfg)
	if err != nil {
		return "", errors.Wrapf(err, "%s: cannot build report table", b.shortName)
	}

	for _, row := range table.Rows {
		log.Debugf("%s: report row %+v", b.shortName, row)
	}

	return b.Renderer.Render(b.templateFile, report.Vars{
		Title:     table.Title,
		PlotTable: table.Rows,
		NumRows:   table.NumRows,
		Cols:      table.NumCols,
		ImgFormat: cfg.ImageFormat,
	})
}

func convertCommand(cfg conf.Config, ps, img string) executor.Command {
	return executor.Command{
		Path:    "convert",
		Args:    []string{"-trim", "-bordercolor", "white", "-border", "5x5", "-density", "95", ps, img},
		Dir:     cfg.WorkDir,
		Env:     cfg.Env,
		Timeout: cfg.ToolTimeout,
	}
}

// runNCL runs NCL script from cfg.NCLPath in the working directory.
// A missing script or a failed run is logged, other plots go on.
func runNCL(ctx context.Context, exec executor.Executor, cfg conf.Config, shortName, script string, env map[string]string) error {
	nclFile := filepath.Join(cfg.NCLPath, script)
	ok, message, err := fs.CheckFile(nclFile, fs.Read)
	if err != nil {
		return errors.Wrapf(err, "%s: cannot check NCL script", shortName)
	}
	if !ok {
		log.Warnf("%s: %s... continuing with additional plots.", shortName, message)
		return nil
	}

	log.Infof("      calling NCL plot routine %s", script)
	result, err := exec.Execute(ctx, executor.Command{
		Path:    "ncl",
		Args:    []string{nclFile},
		Dir:     cfg.WorkDir,
		Env:     mergeEnv(cfg.Env, env),
		Timeout: cfg.ToolTimeout,
	})
	eraseOutput(shortName, result)
	if err != nil {
		log.Warnf("%s: call to %s failed with error: %v", shortName, script, err)
	}
	return nil
}

// eraseOutput removes captured tool output, failures have already been logged by the executor.
func eraseOutput(shortName string, result executor.Result) {
	if err := result.EraseOutput(); err != nil {
		log.Debugf("%s: cannot remove tool output: %v", shortName, err)
	}
}

func mergeEnv(envs ...map[string]string) map[string]string {
	merged := map[string]string{}
	for _, env := range envs {
		for k, v := range env {
			merged[k] = v
		}
	}
	return merged
}

// createOutput truncates or creates file receiving stdout of a tool.
func createOutput(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create %q", path)
	}
	return f, nil
}
