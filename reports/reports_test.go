package reports

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/onsi/gomega"
	"github.com/reusee/bfi/bfvm"
)

func runMachine(t *testing.T, tapeSize int, program string) *bfvm.Machine {
	t.Helper()
	m, err := bfvm.New(tapeSize, bfvm.WithName("test"))
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Load([]byte(program)); err != nil {
		t.Fatal(err)
	}
	m.Run(t.Context())
	return m
}

func TestTake(t *testing.T) {
	g := gomega.NewWithT(t)

	m := runMachine(t, 64, "+++>++>>>+.<<")
	s := Take(m)
	g.Expect(s.Name).To(gomega.Equal("test"))
	g.Expect(s.Status).To(gomega.Equal(StatusOK))
	g.Expect(s.TapeSize).To(gomega.Equal(64))
	g.Expect(s.Pointer).To(gomega.Equal(2))
	g.Expect(s.Tape).To(gomega.Equal([]byte{3, 2, 0, 0, 1}))
	g.Expect(s.Output).To(gomega.Equal([]byte{1}))
	g.Expect(s.Steps).To(gomega.Equal(13))
	g.Expect(s.Consumed).To(gomega.Equal(13))
	g.Expect(s.ProgramSize).To(gomega.Equal(13))
	g.Expect(s.Halt).To(gomega.BeNil())

	// pointer beyond the last non-zero cell
	s = Take(runMachine(t, 64, "+>>>"))
	g.Expect(s.Tape).To(gomega.Equal([]byte{1, 0, 0, 0}))
}

func TestTakeHalted(t *testing.T) {
	g := gomega.NewWithT(t)
	s := Take(runMachine(t, 4, "+\n<<"))
	g.Expect(s.Status).To(gomega.Equal(StatusHalted))
	g.Expect(s.Halt).NotTo(gomega.BeNil())
	g.Expect(s.Halt.Kind).To(gomega.Equal("PointerUnderrun"))
	g.Expect(s.Halt.Line).To(gomega.Equal(2))
	g.Expect(s.Halt.Column).To(gomega.Equal(1))
	g.Expect(s.Halt.Offset).To(gomega.Equal(2))
	g.Expect(s.Halt.Message).To(gomega.ContainSubstring("underran"))
	g.Expect(s.Consumed).To(gomega.Equal(3))
	g.Expect(s.ProgramSize).To(gomega.Equal(4))
	g.Expect(s.Instructions).To(gomega.Equal(3))
}

func TestFailed(t *testing.T) {
	g := gomega.NewWithT(t)
	_, err := bfvm.New(0)
	s := Failed("foo", err)
	g.Expect(s.Status).To(gomega.Equal(StatusHalted))
	g.Expect(s.Halt.Kind).To(gomega.Equal("InvalidTapeSize"))
	s = Failed("foo", errors.New("bar"))
	g.Expect(s.Halt.Kind).To(gomega.Equal("Usage"))
}

func TestWriteFormats(t *testing.T) {
	g := gomega.NewWithT(t)
	report := Report{
		Runs: []Snapshot{
			Take(runMachine(t, 16, "++++++++[>++++++++<-]>+.")),
			Take(runMachine(t, 16, "+<")),
		},
	}
	dir := t.TempDir()
	for _, name := range []string{"r.json", "r.yaml", "r.yml", "r.cbor"} {
		path := filepath.Join(dir, name)
		g.Expect(Write(path, report)).To(gomega.Succeed())

		data, err := os.ReadFile(path)
		g.Expect(err).NotTo(gomega.HaveOccurred())
		format, err := FormatOf(path)
		g.Expect(err).NotTo(gomega.HaveOccurred())
		got, err := format.Unmarshal(data)
		g.Expect(err).NotTo(gomega.HaveOccurred())

		g.Expect(got.Runs).To(gomega.HaveLen(2))
		g.Expect(string(got.Runs[0].Output)).To(gomega.Equal("A"))
		g.Expect(got.Runs[0].Tape).To(gomega.Equal([]byte{0, 65}))
		g.Expect(got.Runs[0].Steps).To(gomega.Equal(report.Runs[0].Steps))
		g.Expect(got.Runs[0].Halt).To(gomega.BeNil())
		g.Expect(got.Runs[1].Status).To(gomega.Equal(StatusHalted))
		g.Expect(*got.Runs[1].Halt).To(gomega.Equal(*report.Runs[1].Halt))

		_, err = os.Stat(path + ".tmp")
		g.Expect(os.IsNotExist(err)).To(gomega.BeTrue())
	}
}

func TestUnknownFormat(t *testing.T) {
	g := gomega.NewWithT(t)
	err := Write(filepath.Join(t.TempDir(), "r.txt"), Report{})
	g.Expect(errors.Is(err, ErrUnknownFormat)).To(gomega.BeTrue())
	_, err = Format("xml").Marshal(Report{})
	g.Expect(errors.Is(err, ErrUnknownFormat)).To(gomega.BeTrue())
}

func TestRenderTable(t *testing.T) {
	g := gomega.NewWithT(t)
	buf := new(bytes.Buffer)
	s := Take(runMachine(t, 64, strings.Repeat("+", 7)+strings.Repeat(">", 17)+"+<"))
	RenderTable(buf, s)
	out := buf.String()
	g.Expect(strings.ToLower(out)).To(gomega.ContainSubstring("test: ok"))
	g.Expect(out).To(gomega.ContainSubstring("[0]"))
	g.Expect(out).To(gomega.ContainSubstring("+15"))
	g.Expect(out).To(gomega.ContainSubstring("26/26"))

	buf.Reset()
	RenderTable(buf, Take(runMachine(t, 4, "<")))
	g.Expect(buf.String()).To(gomega.ContainSubstring("PointerUnderrun"))
}
