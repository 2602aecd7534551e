package usecase

import (
	"fmt"

	"github.com/upmtools/upmpack/pkg/domain/model"
)

// Validate checks the fields required for an export. All rules are
// evaluated and every violation is reported.
func Validate(m *model.PackageManifest, destination string) []model.Violation {
	var violations []model.Violation

	if m.Name == "" {
		violations = append(violations, model.Violation{Field: "name", Message: "package name is required"})
	}
	if m.DisplayName == "" {
		violations = append(violations, model.Violation{Field: "displayName", Message: "display name is required"})
	}
	if destination == "" {
		violations = append(violations, model.Violation{Field: "destination", Message: "destination path is required"})
	}

	return violations
}

// IsValid reports whether m can be exported to destination
func IsValid(m *model.PackageManifest, destination string) bool {
	return len(Validate(m, destination)) == 0
}

// Warnings reports findings that do not block an export. Dependencies
// sharing a name collapse into a single manifest entry holding the last
// version, so they are reported here.
func Warnings(m *model.PackageManifest) []model.Violation {
	var warnings []model.Violation

	seen := make(map[string]int, len(m.Dependencies))
	for i, dep := range m.Dependencies {
		field := fmt.Sprintf("dependencies[%d]", i)

		if dep.Name == "" {
			warnings = append(warnings, model.Violation{Field: field, Message: "dependency name is empty"})
		}

		if first, ok := seen[dep.Name]; ok {
			warnings = append(warnings, model.Violation{
				Field:   field,
				Message: fmt.Sprintf("duplicate dependency %q overrides dependencies[%d]; only version %q is written", dep.Name, first, dep.Version),
			})
			continue
		}
		seen[dep.Name] = i
	}

	return warnings
}
