package fs

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFsHelpers(t *testing.T) {
	Convey("While using fs helpers", t, func() {
		dir, err := ioutil.TempDir("", "fs")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		for _, name := range []string{"cpl.log.2", "cpl.log.1", "ocn.log.1"} {
			So(ioutil.WriteFile(path.Join(dir, name), []byte(name), 0644), ShouldBeNil)
		}

		Convey("Glob should return sorted matches", func() {
			logs, err := Glob(path.Join(dir, "cpl.log.*"))
			So(err, ShouldBeNil)
			So(logs, ShouldResemble, []string{path.Join(dir, "cpl.log.1"), path.Join(dir, "cpl.log.2")})
		})

		Convey("IsDir should accept directories only", func() {
			So(IsDir(dir), ShouldBeNil)
			So(IsDir(path.Join(dir, "cpl.log.1")), ShouldNotBeNil)
			So(IsDir(path.Join(dir, "missing")), ShouldNotBeNil)
		})

		Convey("CopyFile should copy content and mode", func() {
			src := path.Join(dir, "dwbc.ncl")
			So(ioutil.WriteFile(src, []byte("begin\nend\n"), 0750), ShouldBeNil)
			dst := path.Join(dir, "copy.ncl")

			So(CopyFile(src, dst), ShouldBeNil)

			content, err := ioutil.ReadFile(dst)
			So(err, ShouldBeNil)
			So(string(content), ShouldEqual, "begin\nend\n")

			srcInfo, _ := os.Stat(src)
			dstInfo, err := os.Stat(dst)
			So(err, ShouldBeNil)
			So(dstInfo.Mode().Perm(), ShouldEqual, srcInfo.Mode().Perm())
			So(dstInfo.ModTime().Equal(srcInfo.ModTime()), ShouldBeTrue)
		})

		Convey("CopyFile should fail for missing source", func() {
			So(CopyFile(path.Join(dir, "missing"), path.Join(dir, "x")), ShouldNotBeNil)
		})
	})
}
