package conf

import (
	"fmt"
	"os"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEnvFlag(t *testing.T) {
	Convey("While using Flag struct, it should construct proper environment var name", t, func() {
		So(NewStringFlag("test_name", "", "").envName(), ShouldEqual, "OCNDIAG_TEST_NAME")
	})
}

func TestFlags(t *testing.T) {
	Convey("While using Conf flags", t, func() {
		Convey("When some custom String Flag is defined", func() {
			customFlag := NewStringFlag("custom_string_arg", "help", "default")
			customFlag.clear()
			defer customFlag.clear()

			Convey("Without parse it should be default", func() {
				So(customFlag.Value(), ShouldEqual, "default")
			})

			Convey("When we do not define any environment variable we should have default value after parse", func() {
				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, customFlag.defaultValue)
			})

			Convey("When we define custom environment variable we should have custom value after parse", func() {
				os.Setenv(customFlag.envName(), "customContent")

				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, "customContent")
			})
		})

		Convey("When some custom Int Flag is defined", func() {
			customFlag := NewIntFlag("custom_int_arg", "help", 23424)
			customFlag.clear()
			defer customFlag.clear()

			Convey("Without parse it should be default", func() {
				So(customFlag.Value(), ShouldEqual, 23424)
			})

			Convey("When we define custom environment variable we should have custom value after parse", func() {
				os.Setenv(customFlag.envName(), fmt.Sprintf("%d", 12))

				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, 12)
			})
		})

		Convey("When some custom Slice Flag is defined", func() {
			customFlag := NewSliceFlag("custom_slice_arg", "help")
			customFlag.clear()
			defer customFlag.clear()

			Convey("Without parse it should be default", func() {
				So(customFlag.Value(), ShouldResemble, []string{})
			})

			Convey("When we define custom environment variable we should have custom value after parse", func() {
				os.Setenv(customFlag.envName(), fmt.Sprintf("A%sB%sC", stringListDelimiter, stringListDelimiter))

				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldResemble, []string{"A", "B", "C"})
			})
		})

		Convey("When some custom Bool Flag is defined", func() {
			customFlag := NewBoolFlag("custom_bool_arg", "help", false)
			customFlag.clear()
			defer customFlag.clear()

			Convey("Without parse it should be default", func() {
				So(customFlag.Value(), ShouldBeFalse)
			})

			Convey("When we define custom environment variable we should have custom value after parse", func() {
				os.Setenv(customFlag.envName(), "true")

				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldBeTrue)
			})
		})

		Convey("When some custom Duration Flag is defined", func() {
			customFlag := NewDurationFlag("custom_duration_arg", "help", 99*time.Millisecond)
			customFlag.clear()
			defer customFlag.clear()

			Convey("Without parse it should be default", func() {
				So(customFlag.Value(), ShouldEqual, 99*time.Millisecond)
			})

			Convey("When we define custom environment variable we should have custom value after parse", func() {
				customValue := 1234 * time.Second
				os.Setenv(customFlag.envName(), customValue.String())

				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, customValue)
			})
		})

		Convey("Redefining a flag with another type should panic", func() {
			NewStringFlag("custom_redefined_arg", "help", "x")
			So(func() { NewIntFlag("custom_redefined_arg", "help", 1) }, ShouldPanic)
		})
	})
}

func TestConfiguration(t *testing.T) {
	Convey("While using flags, we can extract right values for different types", t, func() {
		defaultString := "http://foo-bar"
		NewStringFlag("stringTest", "stringDesc", defaultString)
		NewIntFlag("intTest", "intDesc", 628)
		NewDurationFlag("durationTest", "durDesc", 123*time.Second)

		err := ParseArgs([]string{
			"--intTest", "13",
			"--durationTest", "2h0m0s",
			"--stringTest", "bar-foo",
		})
		So(err, ShouldBeNil)

		flags := map[string]flagDefinition{}
		for _, flag := range getFlagsDefinition() {
			flags[flag.Name] = flag
		}

		flag, ok := flags["stringTest"]
		So(ok, ShouldBeTrue)
		So(flag.Value, ShouldEqual, "bar-foo")
		So(flag.Default, ShouldEqual, defaultString)

		flag, ok = flags["intTest"]
		So(ok, ShouldBeTrue)
		So(flag.Default, ShouldEqual, "628")
		So(flag.Value, ShouldEqual, "13")

		flag, ok = flags["durationTest"]
		So(ok, ShouldBeTrue)
		So(flag.Default, ShouldEqual, "2m3s")
		So(flag.Value, ShouldEqual, "2h0m0s")

		So(GetFlags()["stringTest"], ShouldEqual, "bar-foo")
	})
}
