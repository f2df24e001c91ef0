package conf

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/sirupsen/logrus"
)

const testAppName = "testAppName"

var customFlag = NewStringFlag("custom_arg", "help", "default")

func clearEnv() {
	logLevelFlag.clear()
	customFlag.clear()
}

func TestConf(t *testing.T) {
	Convey("While using Conf pkg", t, func() {
		clearEnv()
		defer clearEnv()

		dir, err := ioutil.TempDir("", "conf")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		testReadmePath := path.Join(dir, "README.md")
		So(ioutil.WriteFile(testReadmePath, []byte("# ocn_diags_plots\n"), 0644), ShouldBeNil)

		SetAppName(testAppName)
		SetHelpPath(testReadmePath)

		Convey("Name and help should match to specified one", func() {
			So(AppName(), ShouldEqual, testAppName)
			So(app.Help, ShouldEqual, "# ocn_diags_plots\n")
		})

		Convey("Log level can be fetched from env", func() {
			err := ParseEnv()
			So(err, ShouldBeNil)
			So(LogLevel(), ShouldEqual, logrus.ErrorLevel)

			os.Setenv(logLevelFlag.envName(), "debug")

			err = ParseEnv()
			So(err, ShouldBeNil)
			So(LogLevel(), ShouldEqual, logrus.DebugLevel)
		})

		Convey("Unparsable log level falls back to default", func() {
			os.Setenv(logLevelFlag.envName(), "verbose")

			err := ParseEnv()
			So(err, ShouldBeNil)
			So(LogLevel(), ShouldEqual, logrus.ErrorLevel)
		})

		Convey("When we define custom environment variable we should have custom value after parse", func() {
			os.Setenv(customFlag.envName(), "customContent")

			err := ParseEnv()
			So(err, ShouldBeNil)
			So(customFlag.Value(), ShouldEqual, "customContent")
		})

		Convey("Dumped config should be sourceable and contain current values", func() {
			os.Setenv(customFlag.envName(), "dumped")
			So(ParseEnv(), ShouldBeNil)

			dump := DumpConfig()
			So(dump, ShouldStartWith, "# Export are values.\nset -o allexport\n")
			So(dump, ShouldContainSubstring, "OCNDIAG_CUSTOM_ARG=dumped\n")
			So(dump, ShouldEndWith, "set +o allexport")

			overridden := DumpConfigMap(map[string]string{"custom_arg": "fromMap"})
			So(overridden, ShouldContainSubstring, "OCNDIAG_CUSTOM_ARG=fromMap\n")
		})

		Convey("Dumped YAML should hold flag values keyed by name", func() {
			os.Setenv(customFlag.envName(), "yaml")
			So(ParseEnv(), ShouldBeNil)

			dump, err := DumpYAML()
			So(err, ShouldBeNil)
			So(dump, ShouldContainSubstring, "custom_arg: yaml\n")
			So(dump, ShouldContainSubstring, "image_format: png\n")
		})
	})
}

func TestConfigFromFlags(t *testing.T) {
	Convey("While building Config from flags", t, func() {
		for _, f := range []flagType{WorkDirFlag, ImageFormatFlag, Year0Flag, Year1Flag, TSCplFlag} {
			f.clear()
		}
		defer func() {
			for _, f := range []flagType{WorkDirFlag, ImageFormatFlag, Year0Flag, Year1Flag, TSCplFlag} {
				f.clear()
			}
		}()

		Convey("Values from environment should be used and paths made absolute", func() {
			os.Setenv(WorkDirFlag.envName(), "/tmp/ocn")
			os.Setenv(TSCplFlag.envName(), "7")
			os.Setenv(Year0Flag.envName(), "10")
			os.Setenv(Year1Flag.envName(), "20")
			So(ParseEnv(), ShouldBeNil)

			cfg, err := FromFlags()
			So(err, ShouldBeNil)
			So(cfg.WorkDir, ShouldEqual, "/tmp/ocn")
			So(path.IsAbs(cfg.ToolPath), ShouldBeTrue)
			So(cfg.ImageFormat, ShouldEqual, "png")
			So(cfg.Env["TS_CPL"], ShouldEqual, "7")
			So(cfg.Env["YEAR0"], ShouldEqual, "10")
			So(cfg.Env["YEAR1"], ShouldEqual, "20")
			So(cfg.Env["WORKDIR"], ShouldEqual, "/tmp/ocn")
		})

		Convey("Reversed year range should be rejected", func() {
			os.Setenv(Year0Flag.envName(), "20")
			os.Setenv(Year1Flag.envName(), "10")
			So(ParseEnv(), ShouldBeNil)

			_, err := FromFlags()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "year1 (10) is before year0 (20)")
		})
	})
}
