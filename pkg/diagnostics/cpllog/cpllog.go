// Package cpllog knows how coupler logs of different coupler versions are
// turned into heat and freshwater budget tables by the awk tool scripts.
package cpllog

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

const (
	// DefaultVersion is used for every TS_CPL value except "6" and "7".
	DefaultVersion = "cpl7b"

	// HeatFile is the base name of heat budget outputs.
	HeatFile = "cplheatbudget"
	// FreshwaterFile is the base name of freshwater budget outputs.
	FreshwaterFile = "cplfwbudget"

	// Budget tables end with a fixed size summary, these are the line counts to keep.
	defaultHeatTail       = 22
	legacyHeatTail        = 21
	defaultFreshwaterTail = 16
)

// Selection holds coupler version dependent parameters.
type Selection struct {
	Version        string
	HeatTail       int
	FreshwaterTail int
}

// Select returns parameters for given TS_CPL value.
func Select(tsCpl string) Selection {
	if tsCpl == "6" || tsCpl == "7" {
		return Selection{
			Version:        fmt.Sprintf("cpl%s", tsCpl),
			HeatTail:       legacyHeatTail,
			FreshwaterTail: defaultFreshwaterTail,
		}
	}
	return Selection{
		Version:        DefaultVersion,
		HeatTail:       defaultHeatTail,
		FreshwaterTail: defaultFreshwaterTail,
	}
}

// HeatScript returns absolute path of the awk script parsing heat budgets.
func (s Selection) HeatScript(toolPath string) (string, error) {
	return script(toolPath, s.Version, "heat")
}

// FreshwaterScript returns absolute path of the awk script parsing freshwater budgets.
func (s Selection) FreshwaterScript(toolPath string) (string, error) {
	return script(toolPath, s.Version, "fw")
}

// Env returns tail windows the way NCL scripts expect them in environment.
func (s Selection) Env() map[string]string {
	return map[string]string{
		"ntailht": strconv.Itoa(s.HeatTail),
		"ntailfw": strconv.Itoa(s.FreshwaterTail),
	}
}

// Budget is one awk run producing "<Name>.txt" and its "<Name>.asc" summary.
type Budget struct {
	Name   string
	Script string
	Tail   int
}

// Budgets returns heat and freshwater budgets, in this order.
func (s Selection) Budgets(toolPath string) ([]Budget, error) {
	heat, err := s.HeatScript(toolPath)
	if err != nil {
		return nil, err
	}
	fw, err := s.FreshwaterScript(toolPath)
	if err != nil {
		return nil, err
	}
	return []Budget{
		{Name: HeatFile, Script: heat, Tail: s.HeatTail},
		{Name: FreshwaterFile, Script: fw, Tail: s.FreshwaterTail},
	}, nil
}

// AwkArgs returns arguments of the awk script for given year range and logs.
func AwkArgs(year0, year1 int, logs []string) []string {
	args := []string{fmt.Sprintf("y0=%d", year0), fmt.Sprintf("y1=%d", year1)}
	return append(args, logs...)
}

func script(toolPath, version, budget string) (string, error) {
	path, err := filepath.Abs(filepath.Join(toolPath, fmt.Sprintf("process_%s_logfiles_%s.awk", version, budget)))
	if err != nil {
		return "", errors.Wrapf(err, "cannot resolve %s awk script in %q", budget, toolPath)
	}
	return path, nil
}
