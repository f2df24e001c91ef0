package diagnostics

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/briandobbins/CESM-postprocessing/pkg/conf"
	"github.com/briandobbins/CESM-postprocessing/pkg/diagnostics/cpllog"
	"github.com/briandobbins/CESM-postprocessing/pkg/executor"
	"github.com/briandobbins/CESM-postprocessing/pkg/plot"
	"github.com/briandobbins/CESM-postprocessing/pkg/utils/fs"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// CplLogSpec returns outputs of the coupler budget plot.
func CplLogSpec() plot.PlotSpec {
	return plot.PlotSpec{
		Name:              "CPL Surface Heat and Freshwater Flux Budget",
		ExpectedArtifacts: []string{cpllog.HeatFile, cpllog.FreshwaterFile},
		Labels:            []string{"Heat", "Freshwater"},
		ColumnKinds:       []plot.ColumnKind{plot.Image, plot.Table},
	}
}

// CplLog parses coupler logs into heat and freshwater budget tables.
type CplLog struct {
	base
	ncl        []string
	awkFailed  bool
	tailFailed bool
}

// NewCplLog returns coupler budget plot producing tables only.
func NewCplLog(deps Deps) Plot {
	return newCplLog(deps, "CPLLOG")
}

// NewCplLogTimeseries returns coupler budget plot producing tables and time series plots.
func NewCplLogTimeseries(deps Deps) Plot {
	c := newCplLog(deps, "CPLLOG_TS")
	c.ncl = []string{"log_timeseries_heat.ncl", "log_timeseries_fw.ncl"}
	return c
}

func newCplLog(deps Deps, shortName string) *CplLog {
	return &CplLog{
		base: base{
			Deps:         deps,
			spec:         CplLogSpec(),
			shortName:    shortName,
			templateFile: "cpllog_timeseries.tmpl",
		},
	}
}

// AwkFailed is true when budget tables could not be parsed from logs.
func (c *CplLog) AwkFailed() bool { return c.awkFailed }

// TailFailed is true when a budget summary could not be cut from a table.
func (c *CplLog) TailFailed() bool { return c.tailFailed }

// CheckPrerequisites parses cpl.log.* files of the working directory into
// "<budget>.txt" tables and cuts their summaries into "<budget>.asc".
// Tool failures are logged and recorded, they do not stop other plots.
func (c *CplLog) CheckPrerequisites(ctx context.Context, cfg conf.Config) error {
	if err := c.base.CheckPrerequisites(ctx, cfg); err != nil {
		return err
	}

	selection := cpllog.Select(cfg.TSCpl)
	env := mergeEnv(cfg.Env, selection.Env())

	logs, err := fs.Glob(filepath.Join(cfg.WorkDir, "cpl.log.*"))
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		log.Warnf("%s: no cpl.log.* files in %q", c.shortName, cfg.WorkDir)
		c.awkFailed = true
		return nil
	}

	budgets, err := selection.Budgets(cfg.ToolPath)
	if err != nil {
		return err
	}

	for _, budget := range budgets {
		if err := c.parseBudget(ctx, cfg, env, budget, logs); err != nil {
			return err
		}
	}
	return nil
}

func (c *CplLog) parseBudget(ctx context.Context, cfg conf.Config, env map[string]string, budget cpllog.Budget, logs []string) error {
	txtFile := filepath.Join(cfg.WorkDir, budget.Name+".txt")
	ok, err := c.runToFile(ctx, txtFile, executor.Command{
		Path:    budget.Script,
		Args:    cpllog.AwkArgs(cfg.Year0, cfg.Year1, logs),
		Env:     env,
		Dir:     cfg.WorkDir,
		Timeout: cfg.ToolTimeout,
	})
	if err != nil {
		return err
	}
	if !ok {
		c.awkFailed = true
		return nil
	}

	readable, message, err := fs.CheckFile(txtFile, fs.Read)
	if err != nil {
		return errors.Wrapf(err, "%s: cannot check budget table", c.shortName)
	}
	if !readable {
		log.Warnf("%s: %s", c.shortName, message)
		return nil
	}

	ascFile := filepath.Join(cfg.WorkDir, budget.Name+".asc")
	ok, err = c.runToFile(ctx, ascFile, executor.Command{
		Path:    "tail",
		Args:    []string{fmt.Sprintf("-%d", budget.Tail), budget.Name + ".txt"},
		Env:     env,
		Dir:     cfg.WorkDir,
		Timeout: cfg.ToolTimeout,
	})
	if err != nil {
		return err
	}
	if !ok {
		c.tailFailed = true
	}
	return nil
}

// runToFile runs command with stdout redirected to path.
// It returns false when the tool failed; err is reserved for output file faults.
func (c *CplLog) runToFile(ctx context.Context, path string, command executor.Command) (bool, error) {
	out, err := createOutput(path)
	if err != nil {
		return false, err
	}
	defer out.Close()

	command.Stdout = out
	result, err := c.Executor.Execute(ctx, command)
	defer eraseOutput(c.shortName, result)
	if err != nil {
		log.Warnf("%s time series error executing command:", c.shortName)
		log.Warnf("    %s", command)
		log.Warnf("    %v", err)
		return false, nil
	}
	return true, nil
}

// GeneratePlots copies "cpl<TS_CPL>_<script>" NCL scripts to the working directory and runs them.
func (c *CplLog) GeneratePlots(ctx context.Context, cfg conf.Config) error {
	log.Infof("  Generating diagnostic plots for : %s", c.shortName)

	env := cpllog.Select(cfg.TSCpl).Env()
	for _, ncl := range c.ncl {
		nclPlotFile := fmt.Sprintf("cpl%s_%s", cfg.TSCpl, ncl)

		src := filepath.Join(cfg.NCLPath, nclPlotFile)
		dst := filepath.Join(cfg.WorkDir, nclPlotFile)
		if err := fs.CopyFile(src, dst); err != nil {
			log.Warnf("%s: %v... continuing with additional plots.", c.shortName, err)
			continue
		}

		local := cfg
		local.NCLPath = cfg.WorkDir
		if err := runNCL(ctx, c.Executor, local, c.shortName, nclPlotFile, env); err != nil {
			return err
		}
	}
	return nil
}
