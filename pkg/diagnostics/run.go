package diagnostics

import (
	"context"
	"strings"

	"github.com/briandobbins/CESM-postprocessing/pkg/conf"
	"github.com/briandobbins/CESM-postprocessing/pkg/utils/err_collection"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Run takes every plot through prerequisites, generation, conversion and HTML rendering,
// one plot after another. A failing plot is skipped and reported in the returned error;
// HTML of the remaining plots is still returned, joined by newlines.
func Run(ctx context.Context, cfg conf.Config, plots []Plot) (string, error) {
	var errs errcollection.ErrorCollection
	fragments := []string{}

	for _, p := range plots {
		html, err := runPlot(ctx, cfg, p)
		if err != nil {
			log.WithField("plot", p.ShortName()).Errorf("%v", err)
			errs.Add(errors.Wrapf(err, "plot %s", p.ShortName()))
			continue
		}
		fragments = append(fragments, html)
	}

	return strings.Join(fragments, "\n"), errs.GetErrIfAny()
}

func runPlot(ctx context.Context, cfg conf.Config, p Plot) (string, error) {
	logger := log.WithField("plot", p.ShortName())

	logger.Debug("checking prerequisites")
	if err := p.CheckPrerequisites(ctx, cfg); err != nil {
		return "", errors.Wrap(err, "prerequisites")
	}

	logger.Debug("generating plots")
	if err := p.GeneratePlots(ctx, cfg); err != nil {
		return "", errors.Wrap(err, "generating plots")
	}

	logger.Debug("converting plots")
	if err := p.ConvertPlots(ctx, cfg); err != nil {
		return "", errors.Wrap(err, "converting plots")
	}

	logger.Debug("creating html")
	html, err := p.CreateHTML(cfg)
	if err != nil {
		return "", errors.Wrap(err, "creating html")
	}
	return html, nil
}
