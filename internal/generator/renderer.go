package generator

import (
	"fmt"
	"strings"
	"time"
)

// DefaultProperties is the declaration qualifier used for generated
// references.
const DefaultProperties = "static const"

const generatedByMarker = "Generated by spider"

const timestampFormat = "2006-01-02 15:04:05"

// now is stubbed in tests for deterministic headers.
var now = time.Now

// RenderReference renders one constant binding an identifier to an asset
// path.
func RenderReference(properties, assetName, assetPath string) string {
	return fmt.Sprintf("%s String %s = '%s';", properties, assetName, assetPath)
}

// RenderReferencesList renders the values list aggregating every reference
// of a class.
func RenderReferencesList(properties string, names []string) string {
	return fmt.Sprintf("%s List<String> values = [%s];", properties, strings.Join(names, ", "))
}

// RenderClass wraps reference declarations in the fixed class template:
// a private constructor, the references, and the optional values list.
func RenderClass(className string, references []string, list string) string {
	var b strings.Builder
	_ = classTmpl.Execute(&b, classData{
		ClassName:  className,
		References: references,
		List:       list,
	})
	return b.String()
}

// RenderHeader renders the generated-by header stamped at the given time.
func RenderHeader(ts time.Time) string {
	return fmt.Sprintf("// %s. Do not edit, changes will be overwritten.\n// Generated at: %s",
		generatedByMarker, ts.Format(timestampFormat))
}

// RenderExportOrPart renders the aggregation file body: one export or part
// statement per generated file, newline-joined, preceded by the
// generated-by header unless comments are disabled.
func RenderExportOrPart(fileNames []string, noComments, usePartOf bool) string {
	keyword := "export"
	if usePartOf {
		keyword = "part"
	}

	lines := make([]string, 0, len(fileNames)+2)
	if !noComments {
		lines = append(lines, RenderHeader(now()), "")
	}
	for _, name := range fileNames {
		lines = append(lines, fmt.Sprintf("%s '%s';", keyword, name))
	}
	return strings.Join(lines, "\n")
}

// RenderTestCase renders one existence assertion for a generated
// reference.
func RenderTestCase(className, assetName string) string {
	return fmt.Sprintf("expect(File(%s.%s).existsSync(), isTrue);", className, assetName)
}
