package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ecmalint/ecmalint/internal/config"
)

var _ = Describe("Loader", func() {
	var workDir string

	BeforeEach(func() {
		workDir = GinkgoT().TempDir()
	})

	writeFile := func(name, content string) string {
		path := filepath.Join(workDir, name)
		Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())

		return path
	}

	It("returns defaults when no config exists", func() {
		cfg, err := config.NewLoaderWithDir(workDir).Load("", nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Rules.Tags).To(Equal([]string{"recommended"}))
		Expect(cfg.Output.Format).To(Equal("pretty"))
		Expect(cfg.Directives.File).To(Equal("ecmalint-ignore-file"))
		Expect(cfg.Directives.Line).To(Equal("ecmalint-ignore"))
		Expect(cfg.Runner.MaxWorkers).To(BeZero())
	})

	It("picks up a project TOML file", func() {
		writeFile("ecmalint.toml", `
[rules]
tags = ["recommended", "style"]
exclude = ["no-var"]

[output]
format = "compact"
`)

		cfg, err := config.NewLoaderWithDir(workDir).Load("", nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Rules.Tags).To(Equal([]string{"recommended", "style"}))
		Expect(cfg.Rules.Exclude).To(Equal([]string{"no-var"}))
		Expect(cfg.Output.Format).To(Equal("compact"))
	})

	It("picks up a project YAML file", func() {
		writeFile("ecmalint.yaml", `
output:
  format: json
runner:
  max_workers: 4
`)

		cfg, err := config.NewLoaderWithDir(workDir).Load("", nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Output.Format).To(Equal("json"))
		Expect(cfg.Runner.MaxWorkers).To(Equal(4))
	})

	It("loads an explicit config path", func() {
		path := writeFile("custom.toml", `
[output]
format = "json"
`)

		cfg, err := config.NewLoaderWithDir(workDir).Load(path, nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Output.Format).To(Equal("json"))
	})

	It("fails when the explicit config path is missing", func() {
		_, err := config.NewLoaderWithDir(workDir).Load(
			filepath.Join(workDir, "missing.toml"), nil)

		Expect(err).To(HaveOccurred())
	})

	It("lets environment variables override the file", func() {
		writeFile("ecmalint.toml", `
[output]
format = "compact"
`)
		GinkgoT().Setenv("ECMALINT_OUTPUT_FORMAT", "json")

		cfg, err := config.NewLoaderWithDir(workDir).Load("", nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Output.Format).To(Equal("json"))
	})

	It("splits comma separated env values into lists", func() {
		GinkgoT().Setenv("ECMALINT_RULES_EXCLUDE", "no-var, eqeqeq")

		cfg, err := config.NewLoaderWithDir(workDir).Load("", nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Rules.Exclude).To(Equal([]string{"no-var", "eqeqeq"}))
	})

	It("gives CLI flags the last word", func() {
		writeFile("ecmalint.toml", `
[output]
format = "compact"
`)
		GinkgoT().Setenv("ECMALINT_OUTPUT_FORMAT", "json")

		cfg, err := config.NewLoaderWithDir(workDir).Load("", map[string]any{
			"output.format": "pretty",
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Output.Format).To(Equal("pretty"))
	})
})

var _ = Describe("WriteDefault", func() {
	var workDir string

	BeforeEach(func() {
		workDir = GinkgoT().TempDir()
	})

	It("writes defaults that load back unchanged", func() {
		path := filepath.Join(workDir, "ecmalint.toml")

		Expect(config.WriteDefault(path)).To(Succeed())

		cfg, err := config.NewLoaderWithDir(workDir).Load(path, nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Rules.Tags).To(Equal([]string{"recommended"}))
		Expect(cfg.Output.Format).To(Equal("pretty"))
	})

	It("refuses to overwrite an existing file", func() {
		path := filepath.Join(workDir, "ecmalint.toml")

		Expect(config.WriteDefault(path)).To(Succeed())
		Expect(config.WriteDefault(path)).To(MatchError(config.ErrConfigExists))
	})

	It("restricts file permissions", func() {
		path := filepath.Join(workDir, "ecmalint.toml")

		Expect(config.WriteDefault(path)).To(Succeed())

		info, err := os.Stat(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o600)))
	})
})
