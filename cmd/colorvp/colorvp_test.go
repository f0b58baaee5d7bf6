package colorvpcmder_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	colorvpcmder "github.com/viant/colorvp/cmd/colorvp"
)

const paletteDocument = `{
	"#ff355e": "Radical Red",
	"#dd5ac1": "Orchid Pink",
	"#0e5d83": "Deep Sea",
	"#ddff00": "Electric Lime",
	"#fefefe": "Snow",
	"#0a2a1f": "Forest Night",
	"#000000": "Black"
}`

var _ = Describe("colorvp", func() {
	var (
		tmpDir      string
		palettePath string
		sqlitePath  string
	)

	run := func(args ...string) (string, error) {
		cmd := colorvpcmder.NewColorvpCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(io.Discard)
		base := []string{"--config-dir", tmpDir, "--palette", palettePath, "--sqlite", sqlitePath}
		cmd.SetArgs(append(args, base...))
		err := cmd.Execute()
		return out.String(), err
	}

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
		palettePath = filepath.Join(tmpDir, "colors.json")
		sqlitePath = filepath.Join(tmpDir, "palette.db")
		Expect(os.WriteFile(palettePath, []byte(paletteDocument), 0o600)).To(Succeed())
	})

	It("has the expected subcommands", func() {
		cmd := colorvpcmder.NewColorvpCmd()
		names := make([]string, 0)
		for _, sub := range cmd.Commands() {
			names = append(names, sub.Name())
		}
		Expect(names).To(ContainElements("quantize", "shades", "import", "match", "stats", "config"))
	})

	Describe("quantize", func() {
		It("prints the nearest palette entry per color", func() {
			out, err := run("quantize", "#ff3860", "#000000")
			Expect(err).NotTo(HaveOccurred())
			lines := strings.Split(strings.TrimSpace(out), "\n")
			Expect(lines).To(HaveLen(2))
			Expect(lines[0]).To(HavePrefix("#ff3860\t#ff355e\tRadical Red\t"))
			Expect(lines[1]).To(Equal("#000000\t#000000\tBlack\t0.0000"))
		})

		It("rejects invalid hex codes", func() {
			_, err := run("quantize", "#nothex")
			Expect(err).To(HaveOccurred())
		})

		It("requires at least one color", func() {
			_, err := run("quantize")
			Expect(err).To(HaveOccurred())
		})

		It("fails on a missing palette", func() {
			palettePath = filepath.Join(tmpDir, "missing.json")
			_, err := run("quantize", "#ff3860")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("shades", func() {
		It("prints distinct quantized shades", func() {
			out, err := run("shades", "#0e5d83", "--max", "6")
			Expect(err).NotTo(HaveOccurred())
			lines := strings.Split(strings.TrimSpace(out), "\n")
			Expect(len(lines)).To(BeNumerically(">=", 1))
			Expect(len(lines)).To(BeNumerically("<=", 6))
			for i := 1; i < len(lines); i++ {
				Expect(lines[i]).NotTo(Equal(lines[i-1]))
			}
		})

		It("rejects unknown lerps", func() {
			_, err := run("shades", "#0e5d83", "--lerp", "saturation")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("SQLite palette", func() {
		BeforeEach(func() {
			out, err := run("import")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("imported 7 colors into colors"))
		})

		It("reports stats", func() {
			out, err := run("stats")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("colors:  7"))
			Expect(out).To(ContainSubstring("table:   colors"))
		})

		It("quantizes from the database", func() {
			out, err := run("quantize", "--db", "#ff3860")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("Radical Red"))
		})

		It("matches through the virtual table", func() {
			out, err := run("match", "#ff3860")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HavePrefix("#ff3860\t#ff355e\tRadical Red\t"))

			out, err = run("match", "#0e5d80", "#ff3860")
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Split(strings.TrimSpace(out), "\n")).To(HaveLen(2))
		})
	})

	Describe("config", func() {
		It("writes colorvp.toml once", func() {
			out, err := run("config", "init", "--seed", "5")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("colorvp.toml"))

			data, err := os.ReadFile(filepath.Join(tmpDir, "colorvp.toml"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("seed = 5"))

			_, err = run("config", "init")
			Expect(err).To(HaveOccurred())
			_, err = run("config", "init", "--force")
			Expect(err).NotTo(HaveOccurred())
		})

		It("shows the resolved configuration", func() {
			out, err := run("config", "show")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring(`sqlite_path = "` + sqlitePath + `"`))
		})
	})
})
