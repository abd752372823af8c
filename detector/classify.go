package detector

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mrdunski/addon-changes/model"
)

// Classify assigns every changed file to the addon containing it. Files under
// <addon>/package mark a package bundle change, other files an OLM bundle change.
// Files outside of all addons are ignored.
func Classify(addons, changedFiles model.PathSet) (model.AddonsByType, error) {
	result := model.NewAddonsByType()

	for _, file := range changedFiles.Sorted() {
		ancestors := model.Ancestors(file)
		matches := ancestors.Intersect(addons)

		if matches.Len() == 0 {
			continue
		}
		if matches.Len() > 1 {
			return model.AddonsByType{}, fmt.Errorf("%w: {%s} is inside of [%s]",
				ErrAmbiguousAddon, file, strings.Join(matches.Sorted(), ", "))
		}

		addon := matches.Sorted()[0]
		if ancestors.Has(filepath.Join(addon, model.PackageDirName)) {
			result.Add(model.PackageBundle, addon)
		} else {
			result.Add(model.OlmBundle, addon)
		}
	}

	return result, nil
}
