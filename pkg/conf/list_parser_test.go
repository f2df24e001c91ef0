package conf

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/alecthomas/kingpin.v2"
)

func TestStringListValue(t *testing.T) {
	Convey("While using custom StringListVar parser", t, func() {
		strListValue := &StringListVar{}

		Convey("It should implement kingpin.Value interface", func() {
			So(strListValue, ShouldImplement, (*kingpin.Value)(nil))
		})

		Convey("When parsing string inputs it should append them to string slice", func() {
			So(strListValue.IsCumulative(), ShouldBeTrue)

			So(strListValue.Set("A"), ShouldBeNil)
			So([]string(*strListValue), ShouldResemble, []string{"A"})

			So(strListValue.Set("B"), ShouldBeNil)
			So([]string(*strListValue), ShouldResemble, []string{"A", "B"})

			So(strListValue.Set("C, D,,"), ShouldBeNil)
			So([]string(*strListValue), ShouldResemble, []string{"A", "B", "C", "D"})

			Convey("Repeated elements are kept once", func() {
				So(strListValue.Set("A,E"), ShouldBeNil)
				So([]string(*strListValue), ShouldResemble, []string{"A", "B", "C", "D", "E"})
			})
		})
	})
}
