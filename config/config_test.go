package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	"github.com/viant/colorvp/config"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("InitViper", func() {
	var tmpDir string

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
	})

	It("returns defaults when no config file exists", func() {
		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())
		cfg, err := config.Load(v)
		Expect(err).NotTo(HaveOccurred())

		defaults := config.NewDefaultConfig()
		Expect(cfg.Palette).To(Equal(defaults.Palette))
		Expect(cfg.SQLitePath).To(Equal(defaults.SQLitePath))
		Expect(cfg.Table).To(Equal("colors"))
		Expect(cfg.Seed).To(Equal(uint64(0)))
		Expect(cfg.Debug).To(BeFalse())
	})

	It("reads colorvp.toml", func() {
		data := `palette = "mem://localhost/palette.json"
sqlite_path = "/tmp/p.db"
seed = 7
debug = true
`
		Expect(os.WriteFile(filepath.Join(tmpDir, "colorvp.toml"), []byte(data), 0o600)).To(Succeed())

		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())
		cfg, err := config.Load(v)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Palette).To(Equal("mem://localhost/palette.json"))
		Expect(cfg.SQLitePath).To(Equal("/tmp/p.db"))
		Expect(cfg.Seed).To(Equal(uint64(7)))
		Expect(cfg.Debug).To(BeTrue())
		Expect(cfg.Table).To(Equal("colors"))
	})

	It("rejects malformed config files", func() {
		Expect(os.WriteFile(filepath.Join(tmpDir, "colorvp.toml"), []byte("palette = ["), 0o600)).To(Succeed())
		_, err := config.InitViper(tmpDir)
		Expect(err).To(HaveOccurred())
	})

	It("lets environment variables override the file", func() {
		Expect(os.WriteFile(filepath.Join(tmpDir, "colorvp.toml"), []byte(`sqlite_path = "file.db"`), 0o600)).To(Succeed())
		GinkgoT().Setenv("COLORVP_SQLITE_PATH", "env.db")

		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())
		cfg, err := config.Load(v)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.SQLitePath).To(Equal("env.db"))
	})

	It("lets bound flags override the environment", func() {
		GinkgoT().Setenv("COLORVP_SQLITE_PATH", "env.db")
		var sqlitePath string
		cmd := &cobra.Command{Use: "test"}
		config.AddStringFlag(cmd, config.Flags, config.FlagSQLite, &sqlitePath)
		Expect(cmd.ParseFlags([]string{"--sqlite", "flag.db"})).To(Succeed())

		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())
		config.BindRegisteredFlags(v, cmd, config.Flags, []string{config.FlagSQLite})
		cfg, err := config.Load(v)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.SQLitePath).To(Equal("flag.db"))
	})
})

var _ = Describe("Save and Parse", func() {
	It("round trips through TOML", func() {
		path := config.Path(GinkgoT().TempDir())
		cfg := config.NewDefaultConfig()
		cfg.Seed = 42
		cfg.JSON = true
		Expect(config.Save(path, cfg)).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		got, err := config.Parse(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(cfg))
	})

	It("refuses a nil config", func() {
		Expect(config.Save(config.Path(GinkgoT().TempDir()), nil)).NotTo(Succeed())
	})

	It("fills defaults for missing keys", func() {
		got, err := config.Parse([]byte(`seed = 3`))
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Seed).To(Equal(uint64(3)))
		Expect(got.Palette).To(Equal(config.NewDefaultConfig().Palette))
	})
})
