package model

import (
	"fmt"
	"strings"
)

type BundleType string

const (
	OlmBundle     BundleType = "olm"
	PackageBundle BundleType = "package"

	// PackageDirName is the addon sub directory holding a package bundle.
	PackageDirName = "package"
)

type AddonsByType struct {
	Olm     PathSet
	Package PathSet
}

func NewAddonsByType() AddonsByType {
	return AddonsByType{
		Olm:     PathSet{},
		Package: PathSet{},
	}
}

func (a AddonsByType) Add(bundleType BundleType, addon string) {
	switch bundleType {
	case PackageBundle:
		a.Package.Add(addon)
	default:
		a.Olm.Add(addon)
	}
}

func (a AddonsByType) Of(bundleType BundleType) PathSet {
	if bundleType == PackageBundle {
		return a.Package
	}
	return a.Olm
}

func (a AddonsByType) All() PathSet {
	return a.Olm.Union(a.Package)
}

func (a AddonsByType) IsEmpty() bool {
	return a.Olm.Len() == 0 && a.Package.Len() == 0
}

func (a AddonsByType) String() string {
	return fmt.Sprintf("{olm: [%s], package: [%s]}",
		strings.Join(a.Olm.Sorted(), " "),
		strings.Join(a.Package.Sorted(), " "),
	)
}
