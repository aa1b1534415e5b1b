package calibrate

import "testing"

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    Sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: Sample{
				Want: "1",
				Input: `some-input
`,
			},
		},
		{
			comment: `/*
want=3749

190: 10 19
3267: 81 40 27
83: 17 5
*/`,
			want: Sample{
				Want: "3749",
				Input: `190: 10 19
3267: 81 40 27
83: 17 5
`,
			},
		},
		{
			comment: `// want=11387`,
			want: Sample{
				Want: "11387",
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample = %v, want %v", got, tt.want)
		}
	}
}

func TestParseSampleNoWant(t *testing.T) {
	if _, ok := parseSample("// part1 solves the first half."); ok {
		t.Error("parseSample found a sample in a plain comment")
	}
}

const samplesSource = `package main

/*
want=3749

190: 10 19
*/
func part1() {}

// want=11387
func part2() {}

// helper has no sample.
func helper() {}
`

func TestExtractSamples(t *testing.T) {
	got, err := ExtractSamples("parts.go", []byte(samplesSource))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d samples, want 2: %v", len(got), got)
	}
	if s := got["part1"]; s.Want != "3749" || s.Input != "190: 10 19\n" {
		t.Errorf("part1 = %+v", s)
	}
	if s := got["part2"]; s.Want != "11387" || s.Input != "190: 10 19\n" {
		t.Errorf("part2 = %+v; want input carried over from part1", s)
	}
}

func TestExtractSamplesBadSource(t *testing.T) {
	if _, err := ExtractSamples("bad.go", []byte("package")); err == nil {
		t.Error("ExtractSamples accepted invalid Go")
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "b", "c"); got != "b" {
		t.Errorf("Or = %q, want b", got)
	}
	if got := Or(0, 0); got != 0 {
		t.Errorf("Or = %d, want 0", got)
	}
}
