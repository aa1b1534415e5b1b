package calibrate

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"regexp"
	"strings"
)

// Sample is a worked example attached to a puzzle part's doc comment:
//
//	/*
//	want=3749
//
//	190: 10 19
//	...
//	*/
type Sample struct {
	Input string
	Want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (Sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return Sample{
			Want:  m[1],
			Input: m[2],
		}, true
	}
	return Sample{}, false
}

// ExtractSamples parses Go source and returns the samples found in function
// doc comments, keyed by function name. A sample without input reuses the
// input of the previous sample in the file.
func ExtractSamples(filename string, src []byte) (map[string]Sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]Sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.Input = Or(s.Input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.Input
				break
			}
		}
	}
	return samples, nil
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
