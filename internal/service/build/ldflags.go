package build

import (
	"fmt"
	"strings"

	"github.com/oshokin/vault-ci-helper/internal/domain/release"
)

// symbolPackage is the import path whose variables the linker overrides
// when stamping release metadata into the product binary.
const symbolPackage = "github.com/hashicorp/vault/version"

// BuildInfo carries the metadata stamped into the product binary.
type BuildInfo struct {
	// Version is the fully resolved release version.
	Version release.VersionInfo
	// Revision is the hash of the commit being built.
	Revision string
	// BuildDate is the rendered committer timestamp of that commit.
	BuildDate string
	// StripSymbols requests removal of the symbol and DWARF tables.
	StripSymbols bool
}

// Ldflags composes the linker-flag string for the toolchain. The order is
// fixed: strip flags, then the always-present Version, GitCommit and
// BuildDate bindings, then prerelease and metadata bindings for fields that
// carry a value.
func (i BuildInfo) Ldflags() string {
	parts := make([]string, 0, 7)

	if i.StripSymbols {
		parts = append(parts, "-s", "-w")
	}

	parts = append(parts,
		symbolBinding("Version", i.Version.Base),
		symbolBinding("GitCommit", i.Revision),
		symbolBinding("BuildDate", i.BuildDate),
	)

	if i.Version.Prerelease != "" {
		parts = append(parts, symbolBinding("VersionPrerelease", i.Version.Prerelease))
	}

	if i.Version.Metadata != "" {
		parts = append(parts, symbolBinding("VersionMetadata", i.Version.Metadata))
	}

	return strings.Join(parts, " ")
}

// StatusLine renders a human-readable summary of the same metadata.
// Its prerelease and metadata clauses appear under exactly the same
// conditions as the corresponding linker bindings.
func (i BuildInfo) StatusLine() string {
	var builder strings.Builder

	builder.WriteString("Build version: ")
	builder.WriteString(i.Version.Base)
	builder.WriteString(", revision: ")
	builder.WriteString(i.Revision)
	builder.WriteString(", build date: ")
	builder.WriteString(i.BuildDate)

	if i.Version.Prerelease != "" {
		builder.WriteString(", prerelease: ")
		builder.WriteString(i.Version.Prerelease)
	}

	if i.Version.Metadata != "" {
		builder.WriteString(", metadata: ")
		builder.WriteString(i.Version.Metadata)
	}

	return builder.String()
}

// symbolBinding formats a single -X linker override for the symbol package.
func symbolBinding(name, value string) string {
	return fmt.Sprintf("-X %s.%s=%s", symbolPackage, name, value)
}
