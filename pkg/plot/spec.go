package plot

import (
	"fmt"

	"github.com/pkg/errors"
)

// ColumnKind tells how an artifact of a report column is stored on disk.
type ColumnKind string

const (
	// Image columns point at converted plots, "<artifact>.<imageFormat>".
	Image ColumnKind = "image"
	// Table columns point at ASCII tables, "<artifact>.asc".
	Table ColumnKind = "table"

	// LabelKind is the kind of the first cell of every row.
	LabelKind = "label"

	tableExtension = "asc"
)

// Filename returns name of the artifact file for this kind of column.
func (k ColumnKind) Filename(artifact, imageFormat string) (string, error) {
	switch k {
	case Image:
		return fmt.Sprintf("%s.%s", artifact, imageFormat), nil
	case Table:
		return fmt.Sprintf("%s.%s", artifact, tableExtension), nil
	}
	return "", errors.Errorf("unknown column kind %q", string(k))
}

// PlotSpec describes outputs of one plot type. It is constructed once
// per plot type and never modified.
type PlotSpec struct {
	Name              string
	ExpectedArtifacts []string
	Labels            []string
	ColumnKinds       []ColumnKind
}

// Validate checks that every column has an artifact and a known kind.
func (s PlotSpec) Validate() error {
	if len(s.ExpectedArtifacts) < len(s.ColumnKinds) {
		return &MalformedSpecError{
			Spec:   s.Name,
			Reason: fmt.Sprintf("%d column kinds but only %d expected artifacts", len(s.ColumnKinds), len(s.ExpectedArtifacts)),
		}
	}
	for j, kind := range s.ColumnKinds {
		if kind != Image && kind != Table {
			return &MalformedSpecError{
				Spec:   s.Name,
				Reason: fmt.Sprintf("column %d has unknown kind %q", j, string(kind)),
			}
		}
	}
	return nil
}
