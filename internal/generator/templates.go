package generator

import "text/template"

// Fixed output templates. Substitution happens through text/template so
// literal braces in the wrapper text can never be corrupted by placeholder
// replacement.

var classTmpl = template.Must(template.New("class").Parse(`class {{.ClassName}} {
  {{.ClassName}}._();
{{if .References}}
{{range .References}}  {{.}}
{{end}}{{end}}{{if .List}}
  {{.List}}
{{end}}}`))

type classData struct {
	ClassName  string
	References []string
	List       string
}

var testFileTmpl = template.Must(template.New("test").Parse(`{{if .Header}}{{.Header}}

{{end}}import 'dart:io';

import 'package:flutter_test/flutter_test.dart';
{{range .Imports}}import '{{.}}';
{{end}}
void main() {
  test('{{.TestName}}', () {
{{range .Cases}}    {{.}}
{{end}}  });
}
`))

type testFileData struct {
	Header   string
	Imports  []string
	TestName string
	Cases    []string
}

// StarterConfig is the document written by `spider create`.
const StarterConfig = `# Spider configuration.
# Declare asset directories and run "spider build" to generate
# compile-time-safe references for them.

package: resources
generate_tests: false
no_comments: false
export: true
use_part_of: false
use_references_list: false

groups:
  - class_name: Assets
    path: assets/images
    types: [png, jpg, jpeg, gif, webp, bmp, svg]
`
