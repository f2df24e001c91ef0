package diagnostics

import (
	"context"

	"github.com/briandobbins/CESM-postprocessing/pkg/conf"
	"github.com/briandobbins/CESM-postprocessing/pkg/plot"
	"github.com/briandobbins/CESM-postprocessing/pkg/report"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// WesternBoundarySpec returns outputs of the western boundary currents plot.
func WesternBoundarySpec() plot.PlotSpec {
	return plot.PlotSpec{
		Name:              "Western Boundary Currents",
		ExpectedArtifacts: []string{"DWBC"},
		ColumnKinds:       []plot.ColumnKind{plot.Image},
	}
}

// WesternBoundary plots Western Boundary Current & DWBC diagnostics.
type WesternBoundary struct {
	base
}

// NewWesternBoundary returns western boundary currents plot.
func NewWesternBoundary(deps Deps) Plot {
	return &WesternBoundary{
		base: base{
			Deps:         deps,
			spec:         WesternBoundarySpec(),
			shortName:    "DWBC",
			templateFile: "western_boundary.tmpl",
		},
	}
}

// GeneratePlots runs dwbc.ncl.
func (w *WesternBoundary) GeneratePlots(ctx context.Context, cfg conf.Config) error {
	log.Infof("  Generating diagnostic plots for : %s", w.shortName)
	return runNCL(ctx, w.Executor, cfg, w.shortName, "dwbc.ncl", nil)
}

// Table returns single row table with one cell per image.
func (w *WesternBoundary) Table(cfg conf.Config) (plot.ReportTable, error) {
	spec := w.spec
	spec.Labels = []string{w.shortName}
	spec.ColumnKinds = make([]plot.ColumnKind, len(spec.ExpectedArtifacts))
	for i := range spec.ColumnKinds {
		spec.ColumnKinds[i] = plot.Image
	}
	return plot.BuildReportTable(cfg.WorkDir, cfg.ImageFormat, spec, w.Checker)
}

// CreateHTML renders one row of images as a single line of HTML.
func (w *WesternBoundary) CreateHTML(cfg conf.Config) (string, error) {
	row, err := plot.BuildImageRow(cfg.WorkDir, cfg.ImageFormat, w.spec, w.Checker)
	if err != nil {
		return "", errors.Wrapf(err, "%s: cannot build report row", w.shortName)
	}

	html, err := w.Renderer.Render(w.templateFile, report.Vars{
		Title:     w.spec.Name,
		PlotTable: [][]string{row},
		Cols:      len(w.spec.ColumnKinds),
		ImgFormat: cfg.ImageFormat,
	})
	if err != nil {
		return "", err
	}
	return report.StripNewlines(html), nil
}
