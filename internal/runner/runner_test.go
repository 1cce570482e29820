package runner_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ecmalint/ecmalint/internal/linter"
	"github.com/ecmalint/ecmalint/internal/rule"
	"github.com/ecmalint/ecmalint/internal/rules"
	"github.com/ecmalint/ecmalint/internal/runner"
)

var _ = Describe("Runner", func() {
	var (
		dir string
		r   *runner.Runner
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()

		registry, err := rule.NewRegistry(rules.All()...)
		Expect(err).NotTo(HaveOccurred())

		lint := linter.New(linter.Options{Registry: registry})
		r = runner.New(lint, nil, nil)
	})

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())

		return path
	}

	It("lints a single file", func() {
		path := write("a.js", "debugger;\n")

		results, err := r.Run(context.Background(), []string{path})

		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(1))
		Expect(results[0].Err).NotTo(HaveOccurred())
		Expect(results[0].Diagnostics).To(HaveLen(1))
		Expect(results[0].Diagnostics[0].Code).To(Equal("no-debugger"))
	})

	It("returns results in input order regardless of completion order", func() {
		var paths []string

		for i := 0; i < 8; i++ {
			paths = append(paths, write(fmt.Sprintf("f%d.js", i), "var x = 1;\n"))
		}

		results, err := r.Run(context.Background(), paths)

		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(len(paths)))

		for i, res := range results {
			Expect(res.Filename).To(Equal(paths[i]))
			Expect(res.Diagnostics).To(HaveLen(1))
		}
	})

	It("carries per-file errors without failing the batch", func() {
		good := write("good.js", "let ok = 1;\n")
		missing := filepath.Join(dir, "missing.js")

		results, err := r.Run(context.Background(), []string{good, missing})

		Expect(err).NotTo(HaveOccurred())
		Expect(results[0].Err).NotTo(HaveOccurred())
		Expect(results[1].Err).To(HaveOccurred())
	})

	It("reports syntax errors as per-file errors", func() {
		bad := write("bad.js", "const const = ;\n")

		results, err := r.Run(context.Background(), []string{bad})

		Expect(err).NotTo(HaveOccurred())
		Expect(results[0].Err).To(HaveOccurred())
	})

	It("respects a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		paths := []string{write("a.js", "let x = 1;\n"), write("b.js", "let y = 2;\n")}

		_, err := r.Run(ctx, paths)

		Expect(err).To(MatchError(context.Canceled))
	})
})
