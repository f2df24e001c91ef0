package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRunWithFailingPlot(t *testing.T) {
	Convey("While running a plot whose template is missing next to one that renders", t, func() {
		root, err := ioutil.TempDir("", "ocn_diags_plots")
		So(err, ShouldBeNil)
		defer os.RemoveAll(root)

		workDir := filepath.Join(root, "work")
		templates := filepath.Join(root, "templates")
		for _, dir := range []string{workDir, templates, filepath.Join(root, "ncl_lib"), filepath.Join(root, "tool_lib")} {
			So(os.MkdirAll(dir, 0755), ShouldBeNil)
		}
		So(ioutil.WriteFile(filepath.Join(templates, "cpllog_timeseries.tmpl"), []byte("<h4>{{.Title}}</h4>"), 0644), ShouldBeNil)

		output := filepath.Join(root, "plots.html")
		stdout := &bytes.Buffer{}
		err = run([]string{
			"--log=panic",
			"--work_dir=" + workDir,
			"--ncl_path=" + filepath.Join(root, "ncl_lib"),
			"--tool_path=" + filepath.Join(root, "tool_lib"),
			"--template_path=" + templates,
			"--plots=CPLLOG,DWBC",
			"--output=" + output,
		}, stdout)
		defer logrus.SetLevel(logrus.ErrorLevel)

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldStartWith, "some plots failed: plot DWBC")

		html, readErr := ioutil.ReadFile(output)
		So(readErr, ShouldBeNil)
		So(string(html), ShouldEqual, "<h4>CPL Surface Heat and Freshwater Flux Budget</h4>\n")
		So(stdout.Len(), ShouldEqual, 0)
	})
}
