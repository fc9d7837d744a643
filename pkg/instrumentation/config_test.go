package instrumentation_test

import (
	"os"
	"testing"

	"github.com/killallgit/beekit/pkg/instrumentation"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestInstrumentation(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Instrumentation Suite")
}

// setEnv sets or unsets key for the duration of the current spec.
func setEnv(key string, value *string) {
	previous, had := os.LookupEnv(key)
	if value == nil {
		Expect(os.Unsetenv(key)).To(Succeed())
	} else {
		Expect(os.Setenv(key, *value)).To(Succeed())
	}
	DeferCleanup(func() {
		if had {
			os.Setenv(key, previous)
		} else {
			os.Unsetenv(key)
		}
	})
}

func ptr(s string) *string {
	return &s
}

var _ = Describe("Load", func() {
	BeforeEach(func() {
		setEnv(instrumentation.EnabledEnv, nil)
		setEnv(instrumentation.IgnoredKeysEnv, nil)
	})

	Context("when nothing is set", func() {
		It("should be disabled with no ignored keys", func() {
			cfg := instrumentation.Load()

			Expect(cfg.Enabled).To(BeFalse())
			Expect(cfg.IgnoredKeys).NotTo(BeNil())
			Expect(cfg.IgnoredKeys).To(BeEmpty())
		})
	})

	DescribeTable("enabled flag",
		func(value string, expected bool) {
			setEnv(instrumentation.EnabledEnv, ptr(value))
			Expect(instrumentation.Load().Enabled).To(Equal(expected))
		},
		Entry("true", "true", true),
		Entry("TRUE", "TRUE", true),
		Entry("1", "1", true),
		Entry("padded", "  true ", true),
		Entry("false", "false", false),
		Entry("0", "0", false),
		Entry("empty", "", false),
		Entry("invalid", "maybe", false),
	)

	DescribeTable("ignored keys",
		func(value string, expected []string) {
			setEnv(instrumentation.IgnoredKeysEnv, ptr(value))
			Expect(instrumentation.Load().IgnoredKeys).To(Equal(expected))
		},
		Entry("drops empty entries", "a,,b", []string{"a", "b"}),
		Entry("single key", "apiKey", []string{"apiKey"}),
		Entry("trailing comma", "a,b,", []string{"a", "b"}),
		Entry("only commas", ",,", []string{}),
		Entry("empty", "", []string{}),
	)

	It("should answer IsIgnored lookups", func() {
		setEnv(instrumentation.IgnoredKeysEnv, ptr("token,secret"))
		cfg := instrumentation.Load()

		Expect(cfg.IsIgnored("secret")).To(BeTrue())
		Expect(cfg.IsIgnored("prompt")).To(BeFalse())
	})
})

var _ = Describe("Current", func() {
	It("should snapshot the environment once", func() {
		first := instrumentation.Current()

		setEnv(instrumentation.EnabledEnv, ptr("true"))
		setEnv(instrumentation.IgnoredKeysEnv, ptr("late"))

		Expect(instrumentation.Current()).To(Equal(first))
		Expect(instrumentation.Enabled()).To(Equal(first.Enabled))
		Expect(instrumentation.IgnoredKeys()).To(Equal(first.IgnoredKeys))
	})
})
