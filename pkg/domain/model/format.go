package model

import (
	"fmt"
	"strings"
)

// changelogDelimiter separates entries in the changelog file. The
// first entry is the latest one.
const changelogDelimiter = "##"

// TargetFileName derives the release file name from the app name and
// version: the name is lower-cased, dots in the version become
// underscores, and all spaces are stripped from the result.
//
//	("My App", "1.0.3") -> "myapp_1_0_3.apk"
//
// No further sanitization happens here; producing a valid filesystem
// name is the caller's responsibility.
func TargetFileName(appName, version string) string {
	name := strings.ToLower(appName)
	ver := strings.ReplaceAll(version, ".", "_")
	return strings.ReplaceAll(fmt.Sprintf("%s_%s.apk", name, ver), " ", "")
}

// LatestChanges extracts the latest entry from changelog text. The
// entry is the first segment before the delimiter, with every heading
// line (first character '#') removed. The remainder is returned
// verbatim, internal blank lines and trailing newline included.
func LatestChanges(changelog string) string {
	segment, _, _ := strings.Cut(changelog, changelogDelimiter)

	var sb strings.Builder
	for len(segment) > 0 {
		line, rest, found := strings.Cut(segment, "\n")
		if !strings.HasPrefix(line, "#") {
			sb.WriteString(line)
			if found {
				sb.WriteString("\n")
			}
		}
		segment = rest
		if !found {
			break
		}
	}

	return sb.String()
}
