package cpllog

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSelect(t *testing.T) {
	Convey("While selecting coupler version parameters", t, func() {
		Convey("Coupler 6 and 7 should use their own scripts and a 21 line heat table", func() {
			for _, tsCpl := range []string{"6", "7"} {
				s := Select(tsCpl)
				So(s.Version, ShouldEqual, "cpl"+tsCpl)
				So(s.HeatTail, ShouldEqual, 21)
				So(s.FreshwaterTail, ShouldEqual, 16)
			}
		})

		Convey("Every other value should default to cpl7b", func() {
			for _, tsCpl := range []string{"", "7b", "8", " 7"} {
				s := Select(tsCpl)
				So(s.Version, ShouldEqual, "cpl7b")
				So(s.HeatTail, ShouldEqual, 22)
				So(s.FreshwaterTail, ShouldEqual, 16)
			}
		})

		Convey("Tail windows should be exported for tools", func() {
			So(Select("").Env(), ShouldResemble, map[string]string{"ntailht": "22", "ntailfw": "16"})
			So(Select("6").Env(), ShouldResemble, map[string]string{"ntailht": "21", "ntailfw": "16"})
		})

		Convey("Script paths should be absolute and versioned", func() {
			budgets, err := Select("6").Budgets("/opt/tools/../tool_lib")
			So(err, ShouldBeNil)
			So(budgets, ShouldResemble, []Budget{
				{Name: "cplheatbudget", Script: "/opt/tool_lib/process_cpl6_logfiles_heat.awk", Tail: 21},
				{Name: "cplfwbudget", Script: "/opt/tool_lib/process_cpl6_logfiles_fw.awk", Tail: 16},
			})
		})
	})
}

func TestAwkArgs(t *testing.T) {
	Convey("Awk arguments should hold the year range followed by logs", t, func() {
		So(AwkArgs(1, 20, []string{"/w/cpl.log.1", "/w/cpl.log.2"}), ShouldResemble,
			[]string{"y0=1", "y1=20", "/w/cpl.log.1", "/w/cpl.log.2"})
		So(AwkArgs(5, 5, nil), ShouldResemble, []string{"y0=5", "y1=5"})
	})
}
