package loader

import (
	"context"
	"strings"

	slogctx "github.com/veqryn/slog-context"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/mod/semver"
)

// Schema versions, each adds or renames document fields
const (
	SchemaV1000 = 1000 // initial layout
	SchemaV1001 = 1001 // typeParameters
	SchemaV1002 = 1002 // metadata.tsdocConfig
	SchemaV1003 = 1003 // initializerTokenRange replaces enum member valueTokenRange
	SchemaV1004 = 1004 // isOptional, isProtected
	SchemaV1011 = 1011 // isReadonly, isAbstract, isExported

	SchemaLatest                   = SchemaV1011
	SchemaOldestSupported          = SchemaV1001
	SchemaOldestForwardsCompatible = SchemaV1001
)

// Metadata describes document producer and layout version
type Metadata struct {
	ToolPackage                     string `json:"toolPackage"`
	ToolVersion                     string `json:"toolVersion"`
	SchemaVersion                   int    `json:"schemaVersion"`
	OldestForwardsCompatibleVersion int    `json:"oldestForwardsCompatibleVersion"`
}

// checkVersion returns effective schema version used to pick field layout rules
func checkVersion(ctx context.Context, metadata *Metadata) (int, error) {
	version := metadata.SchemaVersion
	compatible := metadata.OldestForwardsCompatibleVersion
	unsupported := func(reason string) (int, error) {
		return 0, errors.WithDetails(ErrUnsupportedSchemaVersion,
			"schemaVersion", version,
			"oldestForwardsCompatibleVersion", compatible,
			"reason", reason)
	}
	switch {
	case version == 0:
		return unsupported("schemaVersion is missing")
	case version < SchemaOldestSupported:
		return unsupported("older than the oldest supported version")
	case compatible > 0 && version < compatible:
		return unsupported("older than its own oldestForwardsCompatibleVersion")
	case version > SchemaLatest:
		if compatible == 0 || compatible > SchemaLatest {
			return unsupported("newer than the latest supported version")
		}
		slogctx.Warn(ctx, "reading newer schema in forwards compatible mode",
			"schemaVersion", version, "latest", SchemaLatest)
		return SchemaLatest, nil
	}
	return version, nil
}

// checkToolVersion reports documents produced by a newer tool than the loader was configured for
func checkToolVersion(ctx context.Context, metadata *Metadata, known string) {
	produced := canonicalSemver(metadata.ToolVersion)
	expected := canonicalSemver(known)
	if produced == "" || expected == "" {
		return
	}
	if semver.Compare(produced, expected) > 0 {
		slogctx.Warn(ctx, "document produced by a newer tool",
			"toolPackage", metadata.ToolPackage, "toolVersion", metadata.ToolVersion, "known", known)
	}
}

func canonicalSemver(version string) string {
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return ""
	}
	return version
}
