package main

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/signal"
	"syscall"

	"github.com/briandobbins/CESM-postprocessing/pkg/conf"
	"github.com/briandobbins/CESM-postprocessing/pkg/diagnostics"
	"github.com/briandobbins/CESM-postprocessing/pkg/executor"
	"github.com/briandobbins/CESM-postprocessing/pkg/plot"
	"github.com/briandobbins/CESM-postprocessing/pkg/report"
	"github.com/briandobbins/CESM-postprocessing/pkg/utils/errutil"
	"github.com/briandobbins/CESM-postprocessing/pkg/utils/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// Flag names including dash are excluded from configuration dumps.
	dumpConfigFlag = conf.NewStringFlag("dump-config", "Dump configuration as environment script (env) or YAML (yaml) and exit.", "")
	summaryFlag    = conf.NewBoolFlag("summary", "Print report tables of the plots to stderr.", false)
	outputFlag     = conf.NewStringFlag("output", "File receiving HTML fragment; stdout when empty.", "")
)

func dumpConfig(w io.Writer, format string) error {
	switch format {
	case "env":
		_, err := fmt.Fprintln(w, conf.DumpConfig())
		return err
	case "yaml":
		out, err := conf.DumpYAML()
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, out)
		return err
	}
	return errors.Errorf("unknown configuration dump format %q, use env or yaml", format)
}

func writeSummary(cfg conf.Config, plots []diagnostics.Plot) {
	for _, p := range plots {
		table, err := p.Table(cfg)
		if err != nil {
			logrus.Warnf("%s: cannot build report table: %v", p.ShortName(), err)
			continue
		}
		report.WriteText(os.Stderr, table)
	}
}

func writeHTML(stdout io.Writer, path, html string) error {
	if path == "" {
		_, err := fmt.Fprintln(stdout, html)
		return err
	}
	return errors.Wrapf(ioutil.WriteFile(path, []byte(html+"\n"), 0644), "cannot write %q", path)
}

// run generates plots configured by args and writes their HTML. HTML of the plots that
// succeeded is written even when others failed; the failures are returned afterwards.
func run(args []string, stdout io.Writer) error {
	if err := conf.ParseArgs(args); err != nil {
		return err
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(conf.LogLevel())

	if format := dumpConfigFlag.Value(); format != "" {
		return dumpConfig(stdout, format)
	}

	cfg, err := conf.FromFlags()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	logger := logrus.WithField("run", uuid.New())
	logger.Infof("Starting plots %v in %q", cfg.Plots, cfg.WorkDir)

	renderer, err := report.NewRenderer(cfg.TemplatePath)
	if err != nil {
		return errors.Wrap(err, "cannot load templates")
	}

	plots, err := diagnostics.NewAll(cfg.Plots, diagnostics.Deps{
		Executor: executor.NewLocal(),
		Checker:  plot.FileChecker{},
		Renderer: renderer,
	})
	if err != nil {
		return errors.Wrap(err, "cannot create plots")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	html, runErr := diagnostics.Run(ctx, cfg, plots)

	if summaryFlag.Value() {
		writeSummary(cfg, plots)
	}

	if err := writeHTML(stdout, outputFlag.Value(), html); err != nil {
		return err
	}
	if runErr != nil {
		return errors.Wrap(runErr, "some plots failed")
	}

	logger.Info("Plots finished")
	return nil
}

// Runs requested ocean diagnostics plots in the working directory and prints their HTML.
func main() {
	conf.SetAppName("ocn_diags_plots")
	conf.SetHelp(`Generates ocean model diagnostics plots from coupler logs and NCL scripts,
converts them to web images and prints the HTML fragment describing them.
Every flag can also be set with OCNDIAG_<FLAG_NAME> environment variable.
Available plots: ` + fmt.Sprint(diagnostics.Names()))

	errutil.CheckWithContext(run(os.Args[1:], os.Stdout), conf.AppName())
}
