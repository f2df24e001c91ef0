package plot

import (
	"fmt"
	"path/filepath"
	"strings"
)

const errorSuffix = " - Error"

// ReportCell is one cell of a report table.
// Content is the artifact filename, or "<filename> - Error" when it is missing.
type ReportCell struct {
	ColumnIndex int
	ColumnKind  string
	Content     string
}

// Missing returns true for cells of artifacts that were not produced.
func (c ReportCell) Missing() bool {
	return c.ColumnKind != LabelKind && strings.HasSuffix(c.Content, errorSuffix)
}

// ReportRow is a label cell followed by one cell per column.
type ReportRow []ReportCell

// ReportTable is what gets handed to a renderer.
type ReportTable struct {
	Title   string
	Rows    []ReportRow
	NumRows int
	// NumCols counts the label column.
	NumCols int
}

// BuildReportTable checks every artifact of spec in workdir and returns a table with
// one row per label. Missing artifacts only mark their cells; a malformed spec or
// a checker fault aborts the build.
func BuildReportTable(workdir, imageFormat string, spec PlotSpec, checker Checker) (ReportTable, error) {
	if err := spec.Validate(); err != nil {
		return ReportTable{}, err
	}

	table := ReportTable{
		Title:   spec.Name,
		Rows:    make([]ReportRow, 0, len(spec.Labels)),
		NumRows: len(spec.Labels),
		NumCols: len(spec.ColumnKinds) + 1,
	}

	for _, label := range spec.Labels {
		row := make(ReportRow, 0, table.NumCols)
		row = append(row, ReportCell{ColumnIndex: 0, ColumnKind: LabelKind, Content: fmt.Sprintf("%s:", label)})

		for j, kind := range spec.ColumnKinds {
			artifact := spec.ExpectedArtifacts[j]
			filename, err := kind.Filename(artifact, imageFormat)
			if err != nil {
				return ReportTable{}, &MalformedSpecError{Spec: spec.Name, Reason: err.Error()}
			}

			content, err := checkArtifact(checker, workdir, artifact, filename, filename)
			if err != nil {
				return ReportTable{}, err
			}
			row = append(row, ReportCell{ColumnIndex: j + 1, ColumnKind: string(kind), Content: content})
		}

		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// BuildImageRow checks image artifacts of spec and returns one entry per artifact:
// the artifact name when "<artifact>.<imageFormat>" exists, "<artifact> - Error" otherwise.
func BuildImageRow(workdir, imageFormat string, spec PlotSpec, checker Checker) ([]string, error) {
	row := make([]string, 0, len(spec.ExpectedArtifacts))
	for _, artifact := range spec.ExpectedArtifacts {
		filename, _ := Image.Filename(artifact, imageFormat)
		content, err := checkArtifact(checker, workdir, artifact, filename, artifact)
		if err != nil {
			return nil, err
		}
		row = append(row, content)
	}
	return row, nil
}

func checkArtifact(checker Checker, workdir, artifact, filename, content string) (string, error) {
	path := filepath.Join(workdir, filename)
	ok, err := checker.Check(path)
	if err != nil {
		return "", &CheckerFaultError{Artifact: artifact, Path: path, Err: err}
	}
	if !ok {
		return content + errorSuffix, nil
	}
	return content, nil
}
