package model

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PathSet", func() {
	It("collapses duplicates", func() {
		set := NewPathSet("/a/b", "/a/b/", "/a/./b")
		Expect(set.Len()).To(Equal(1))
		Expect(set.Has("/a/b")).To(BeTrue())
	})

	It("sorts entries", func() {
		set := NewPathSet("/c", "/a", "/b")
		Expect(set.Sorted()).To(Equal([]string{"/a", "/b", "/c"}))
	})

	It("intersects", func() {
		left := NewPathSet("/a", "/b", "/c")
		right := NewPathSet("/b", "/d")
		Expect(left.Intersect(right).Sorted()).To(Equal([]string{"/b"}))
		Expect(right.Intersect(left).Sorted()).To(Equal([]string{"/b"}))
	})

	It("creates union", func() {
		left := NewPathSet("/a")
		right := NewPathSet("/b")
		Expect(left.Union(right).Sorted()).To(Equal([]string{"/a", "/b"}))
		Expect(left.Len()).To(Equal(1))
	})
})

var _ = DescribeTable("Ancestors", func(path string, expected []string) {
	Expect(Ancestors(path).Sorted()).To(Equal(expected))
},
	Entry("nested file", "/root/addon/package/manifest.yaml", []string{
		"/",
		"/root",
		"/root/addon",
		"/root/addon/package",
		"/root/addon/package/manifest.yaml",
	}),
	Entry("root", "/", []string{"/"}),
	Entry("unclean path", "/root//addon/", []string{"/", "/root", "/root/addon"}),
)
