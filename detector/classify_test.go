package detector_test

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/mrdunski/addon-changes/detector"
	. "github.com/mrdunski/addon-changes/gomega"
	"github.com/mrdunski/addon-changes/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Classify", func() {
	addons := model.NewPathSet("/root/addon-a", "/root/addon-b")

	It("splits package and olm changes", func() {
		result, err := detector.Classify(addons, model.NewPathSet(
			"/root/addon-a/package/manifest.yaml",
			"/root/addon-b/metadata/olm/csv.yaml",
		))

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Package.Sorted()).To(Equal([]string{"/root/addon-a"}))
		Expect(result.Olm.Sorted()).To(Equal([]string{"/root/addon-b"}))
	})

	It("ignores files outside of addons", func() {
		result, err := detector.Classify(addons, model.NewPathSet("/unrelated/file.txt", "/root/README.md"))

		Expect(err).NotTo(HaveOccurred())
		Expect(result.IsEmpty()).To(BeTrue())
	})

	It("marks addon with both kinds of changes", func() {
		result, err := detector.Classify(addons, model.NewPathSet(
			"/root/addon-a/package/manifest.yaml",
			"/root/addon-a/metadata/addon.yaml",
		))

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Package.Sorted()).To(Equal([]string{"/root/addon-a"}))
		Expect(result.Olm.Sorted()).To(Equal([]string{"/root/addon-a"}))
	})

	It("doesn't treat nested package dir as package bundle", func() {
		result, err := detector.Classify(addons, model.NewPathSet("/root/addon-b/bundles/package/file.yaml"))

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Package.Len()).To(Equal(0))
		Expect(result.Olm.Sorted()).To(Equal([]string{"/root/addon-b"}))
	})

	It("doesn't match by name prefix", func() {
		result, err := detector.Classify(addons, model.NewPathSet("/root/addon-abc/package/file.yaml"))

		Expect(err).NotTo(HaveOccurred())
		Expect(result.IsEmpty()).To(BeTrue())
	})

	It("rejects nested addons", func() {
		nested := model.NewPathSet("/root/addon-a", "/root/addon-a/inner")

		_, err := detector.Classify(nested, model.NewPathSet("/root/addon-a/inner/package/file.yaml"))

		Expect(err).To(WrapError(detector.ErrAmbiguousAddon))
	})

	It("handles empty input", func() {
		result, err := detector.Classify(model.PathSet{}, model.PathSet{})

		Expect(err).NotTo(HaveOccurred())
		Expect(result.IsEmpty()).To(BeTrue())
	})

	Describe("generated inputs", func() {
		random := rand.New(rand.NewSource(42))
		shapes := []string{"package/manifest.yaml", "metadata/addon.yaml", "package/sub/crd.yaml", "README.md"}

		for i := 0; i < 20; i++ {
			allAddons := model.PathSet{}
			for a := 0; a < 5; a++ {
				allAddons.Add(fmt.Sprintf("/repo/addons/addon-%d", a))
			}
			changed := model.PathSet{}
			for f := 0; f < random.Intn(10); f++ {
				base := fmt.Sprintf("/repo/addons/addon-%d", random.Intn(7))
				if random.Intn(4) == 0 {
					base = "/repo/docs"
				}
				changed.Add(filepath.Join(base, shapes[random.Intn(len(shapes))]))
			}

			It(fmt.Sprintf("keeps invariants for input %d", i), func() {
				result, err := detector.Classify(allAddons, changed)
				Expect(err).NotTo(HaveOccurred())

				for addon := range result.All() {
					Expect(allAddons.Has(addon)).To(BeTrue())
				}

				for addon := range allAddons {
					touched := false
					touchedPackage := false
					for file := range changed {
						ancestors := model.Ancestors(file)
						if ancestors.Has(addon) {
							touched = true
						}
						if ancestors.Has(filepath.Join(addon, "package")) {
							touchedPackage = true
						}
					}
					if !touched {
						Expect(result.Olm.Has(addon)).To(BeFalse())
						Expect(result.Package.Has(addon)).To(BeFalse())
					}
					Expect(result.Package.Has(addon)).To(Equal(touchedPackage))
				}

				again, err := detector.Classify(allAddons, changed)
				Expect(err).NotTo(HaveOccurred())
				Expect(again).To(Equal(result))
			})
		}
	})
})
