package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/upmtools/upmpack/pkg/domain/model"
)

func TestNewPackageManifest_Defaults(t *testing.T) {
	m := model.NewPackageManifest()

	gt.Equal(t, m.Name, "com.mycompany.mypackage")
	gt.Equal(t, m.DisplayName, "")
	gt.Equal(t, m.Version, "0.1.0-preview.1")
	gt.Equal(t, m.PlatformVersion, "2018.4")
	gt.Equal(t, m.Author.Name, "Pixel Wizards")
	gt.Equal(t, m.Author.Email, "support@pixelwizards.ca")
	gt.Equal(t, m.Author.URL, "www.pixelwizards.ca")
	gt.Equal(t, len(m.Keywords), 0)
	gt.Equal(t, len(m.Dependencies), 0)
}

func TestPackageManifest_Keywords(t *testing.T) {
	t.Run("add then remove on empty manifest", func(t *testing.T) {
		m := model.NewPackageManifest()
		m.AddKeyword()
		gt.Equal(t, len(m.Keywords), 1)
		gt.Equal(t, m.Keywords[0], "")

		gt.True(t, m.RemoveKeyword(0))
		gt.Equal(t, len(m.Keywords), 0)
	})

	t.Run("out of range leaves list unchanged", func(t *testing.T) {
		m := model.NewPackageManifest()
		m.Keywords = []string{"a", "b"}

		for _, idx := range []int{-1, 2, 100} {
			gt.False(t, m.RemoveKeyword(idx))
			gt.Equal(t, m.Keywords, []string{"a", "b"})
		}
	})

	t.Run("remove on empty list is a no-op", func(t *testing.T) {
		m := model.NewPackageManifest()
		gt.False(t, m.RemoveKeyword(0))
		gt.Equal(t, len(m.Keywords), 0)
	})

	t.Run("order is preserved", func(t *testing.T) {
		m := model.NewPackageManifest()
		for _, kw := range []string{"x", "y", "x", "z"} {
			m.AddKeyword()
			gt.True(t, m.SetKeyword(len(m.Keywords)-1, kw))
		}
		gt.True(t, m.RemoveKeyword(1))
		gt.Equal(t, m.Keywords, []string{"x", "x", "z"})
	})

	t.Run("set out of range", func(t *testing.T) {
		m := model.NewPackageManifest()
		gt.False(t, m.SetKeyword(0, "nope"))
	})
}

func TestPackageManifest_Dependencies(t *testing.T) {
	m := model.NewPackageManifest()
	m.AddDependency()
	gt.Equal(t, m.Dependencies[0], model.Dependency{})

	gt.True(t, m.SetDependency(0, "com.unity.a", "1.0.0"))
	m.AddDependency()
	gt.True(t, m.SetDependency(1, "com.unity.b", "2.0.0"))
	m.AddDependency()
	gt.True(t, m.SetDependency(2, "com.unity.c", "3.0.0"))

	gt.False(t, m.RemoveDependency(3))
	gt.False(t, m.RemoveDependency(-1))
	gt.Equal(t, len(m.Dependencies), 3)

	gt.True(t, m.RemoveDependency(1))
	gt.Equal(t, m.Dependencies, []model.Dependency{
		{Name: "com.unity.a", Version: "1.0.0"},
		{Name: "com.unity.c", Version: "3.0.0"},
	})

	gt.False(t, m.SetDependency(5, "x", "y"))
}

func TestOperationLog(t *testing.T) {
	var log model.OperationLog
	log.Append("first")
	log.Appendf("second %d", 2)
	log.Append("multi\nline")

	gt.Equal(t, log.Lines(), []string{"first", "second 2", "multi", "line"})
	gt.Equal(t, log.String(), "first\nsecond 2\nmulti\nline")

	lines := log.Lines()
	lines[0] = "mutated"
	gt.Equal(t, log.Lines()[0], "first")

	log.Reset()
	gt.Equal(t, len(log.Lines()), 0)
}

func TestNewDraft(t *testing.T) {
	d := model.NewDraft()
	gt.Equal(t, d.Package.Name, model.DefaultPackageName)
	gt.Equal(t, d.Paths, model.ExportPaths{})
}
