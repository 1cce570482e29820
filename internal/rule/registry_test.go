package rule_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ecmalint/ecmalint/internal/rule"
)

type fakeRule struct {
	code string
	tags []rule.Tag
}

func (f fakeRule) Code() string            { return f.code }
func (f fakeRule) Tags() []rule.Tag        { return f.tags }
func (f fakeRule) Handlers() rule.Handlers { return nil }

func codes(rules []rule.Rule) []string {
	out := make([]string, 0, len(rules))

	for _, r := range rules {
		out = append(out, r.Code())
	}

	return out
}

var _ = Describe("Registry", func() {
	var registry *rule.Registry

	BeforeEach(func() {
		var err error
		registry, err = rule.NewRegistry(
			fakeRule{code: "no-var", tags: []rule.Tag{rule.TagRecommended}},
			fakeRule{code: "eqeqeq", tags: []rule.Tag{rule.TagStyle}},
			fakeRule{code: "no-debugger", tags: []rule.Tag{rule.TagRecommended}},
		)
		Expect(err).NotTo(HaveOccurred())
	})

	It("sorts rules by code", func() {
		Expect(codes(registry.All())).To(Equal([]string{"eqeqeq", "no-debugger", "no-var"}))
	})

	It("rejects duplicate codes", func() {
		_, err := rule.NewRegistry(
			fakeRule{code: "no-var"},
			fakeRule{code: "no-var"},
		)

		Expect(err).To(MatchError(rule.ErrDuplicateCode))
	})

	It("looks rules up by code", func() {
		r, ok := registry.Lookup("eqeqeq")

		Expect(ok).To(BeTrue())
		Expect(r.Code()).To(Equal("eqeqeq"))

		_, ok = registry.Lookup("nope")
		Expect(ok).To(BeFalse())
	})

	It("exposes the known code set", func() {
		Expect(registry.Codes()).To(HaveLen(3))
		Expect(registry.Codes()).To(HaveKey("no-debugger"))
	})

	Describe("Select", func() {
		It("returns everything with nil filters", func() {
			Expect(registry.Select(nil, nil, nil)).To(HaveLen(3))
		})

		It("filters by tag", func() {
			active := registry.Select([]rule.Tag{rule.TagRecommended}, nil, nil)

			Expect(codes(active)).To(Equal([]string{"no-debugger", "no-var"}))
		})

		It("removes excluded codes", func() {
			active := registry.Select([]rule.Tag{rule.TagRecommended}, []string{"no-var"}, nil)

			Expect(codes(active)).To(Equal([]string{"no-debugger"}))
		})

		It("forces included codes past tag and exclude filters", func() {
			active := registry.Select(
				[]rule.Tag{rule.TagRecommended},
				[]string{"eqeqeq"},
				[]string{"eqeqeq"},
			)

			Expect(codes(active)).To(ContainElement("eqeqeq"))
		})
	})

	It("lists recommended rules", func() {
		Expect(codes(registry.Recommended())).To(Equal([]string{"no-debugger", "no-var"}))
	})
})
