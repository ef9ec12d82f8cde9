package spincube

import (
	"errors"
	"strings"
	"testing"

	"vgacube/cubeos/cube"
	"vgacube/cubeos/textmode"

	. "github.com/smartystreets/goconvey/convey"
)

type fakeText struct {
	*textmode.Screen
	writes   int
	presents int
	err      error
}

func newFakeText() *fakeText {
	return &fakeText{Screen: textmode.NewScreen(textmode.Cols, textmode.Rows)}
}

func (f *fakeText) WriteCell(row, col int, glyph, attr uint8) {
	f.writes++
	f.Screen.WriteCell(row, col, glyph, attr)
}

func (f *fakeText) Present() error {
	f.presents++
	return f.err
}

type lineLog struct {
	lines []string
}

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func TestTaskStep(t *testing.T) {
	Convey("A spincube task", t, func() {
		out := newFakeText()
		log := &lineLog{}
		task := New(out, log, Config{LogEvery: 5})

		Convey("writes every cell and presents once per frame", func() {
			So(task.Step(), ShouldBeNil)
			So(out.writes, ShouldEqual, textmode.Cols*textmode.Rows)
			So(out.presents, ShouldEqual, 1)
			So(task.Frames(), ShouldEqual, uint64(1))

			g, a := out.Cell(12, 40)
			So(g, ShouldEqual, cube.GlyphFull)
			So(a, ShouldEqual, cube.FaceColor(0))
		})

		Convey("advances the animation after each frame", func() {
			for i := 0; i < StepEvery; i++ {
				So(task.Step(), ShouldBeNil)
			}
			So(task.State(), ShouldResemble, State{Yaw: YawStep, PitchV: PitchStep})
		})

		Convey("logs every LogEvery frames", func() {
			for i := 0; i < 10; i++ {
				So(task.Step(), ShouldBeNil)
			}
			So(log.lines, ShouldHaveLength, 2)
			So(strings.HasPrefix(log.lines[0], "spincube: frame=5 "), ShouldBeTrue)
		})

		Convey("changes the picture once the view steps", func() {
			So(task.Step(), ShouldBeNil)
			first := append([]byte(nil), out.Memory()...)
			for i := 0; i < StepEvery; i++ {
				So(task.Step(), ShouldBeNil)
			}
			So(out.Memory(), ShouldNotResemble, first)
		})

		Convey("reports present failures without advancing", func() {
			errDevice := errors.New("device gone")
			out.err = errDevice
			err := task.Step()
			So(errors.Is(err, errDevice), ShouldBeTrue)
			So(task.Frames(), ShouldEqual, uint64(0))
			So(task.State(), ShouldResemble, State{})
		})
	})
}
