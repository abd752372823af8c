package ls

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/mrdunski/addon-changes/files"
	"github.com/mrdunski/addon-changes/model"
	"gopkg.in/yaml.v3"
)

type addonReport struct {
	Name   string `json:"name" yaml:"name"`
	Path   string `json:"path" yaml:"path"`
	Digest string `json:"digest,omitempty" yaml:"digest,omitempty"`
}

type report struct {
	Olm     []addonReport `json:"olm" yaml:"olm"`
	Package []addonReport `json:"package" yaml:"package"`
}

func newReport(result model.AddonsByType, withDigest bool) (report, error) {
	digests := map[string]string{}
	if withDigest {
		for _, addon := range result.All().Sorted() {
			digest, err := files.NewLoader(addon).Digest()
			if err != nil {
				return report{}, fmt.Errorf("failed to calculate digest of {%s}: %w", addon, err)
			}
			digests[addon] = digest
		}
	}

	toReports := func(addons model.PathSet) []addonReport {
		reports := make([]addonReport, 0, addons.Len())
		for _, addon := range addons.Sorted() {
			reports = append(reports, addonReport{
				Name:   filepath.Base(addon),
				Path:   addon,
				Digest: digests[addon],
			})
		}
		return reports
	}

	return report{
		Olm:     toReports(result.Olm),
		Package: toReports(result.Package),
	}, nil
}

func (r report) writeText(out io.Writer) error {
	sections := []struct {
		title  string
		addons []addonReport
	}{
		{"Changed OLM bundles:", r.Olm},
		{"Changed package bundles:", r.Package},
	}

	for _, section := range sections {
		if _, err := fmt.Fprintln(out, section.title); err != nil {
			return err
		}
		for _, addon := range section.addons {
			line := fmt.Sprintf("* %s", addon.Path)
			if addon.Digest != "" {
				line = fmt.Sprintf("%s [%s]", line, addon.Digest)
			}
			if _, err := fmt.Fprintln(out, line); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r report) write(out io.Writer, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(r)
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(r); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return r.writeText(out)
	}
}
