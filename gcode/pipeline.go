package gcode

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Stats aggregates the counters from both passes.
type Stats struct {
	Lines               int
	MnemonicsNormalized int
	CoordinatesRemoved  int
	MnemonicsInserted   int
	SafetyBlocks        int
}

// Pipeline runs the normalizer and annotator in order over a program.
// Each Run builds fresh state; a Pipeline value is safe to reuse across
// independent programs.
type Pipeline struct {
	// SkipNormalize feeds the input straight to the annotator.
	SkipNormalize bool
	// NoAnnotate stops after normalization.
	NoAnnotate bool
	// Headers adds the comment header and statistics footer blocks
	// around each stage's output.
	Headers bool
	// SourceName is the original filename written into the header.
	SourceName string
}

// Process transforms an in-memory program.
func (pl Pipeline) Process(p Program) (Program, Stats) {
	var st Stats

	if !pl.SkipNormalize {
		var ns NormalizeStats
		p, ns = Normalizer{}.Run(p)
		st.Lines = ns.Lines
		st.MnemonicsNormalized = ns.MnemonicsNormalized
		st.CoordinatesRemoved = ns.CoordinatesRemoved
		st.MnemonicsInserted = ns.MnemonicsInserted
		if pl.Headers {
			p = wrapNormalized(p, pl.SourceName, ns)
		}
	}

	if !pl.NoAnnotate {
		var as AnnotateStats
		p, as = Annotator{}.Run(p)
		st.SafetyBlocks = as.SafetyBlocks
		if pl.SkipNormalize {
			st.Lines = as.Lines
		}
		if pl.Headers {
			p = appendLines(p,
				"",
				"(End of safety-enhanced G-code)",
				fmt.Sprintf("(Added %d safety checks)", as.SafetyBlocks),
			)
		}
	}

	return p, st
}

// Run reads a whole program from r, transforms it, and writes the
// result to w. Nothing is written when the read fails.
func (pl Pipeline) Run(r io.Reader, w io.Writer) (Stats, error) {
	p, err := ReadProgram(r)
	if err != nil {
		return Stats{}, fmt.Errorf("read program: %w", err)
	}
	out, st := pl.Process(p)
	if _, err = out.WriteTo(w); err != nil {
		return st, fmt.Errorf("write program: %w", err)
	}
	return st, nil
}

// ProcessFile transforms input into output. The transformation
// completes in memory before the destination is touched.
func (pl Pipeline) ProcessFile(input, output string) (Stats, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return Stats{}, fmt.Errorf("read %s: %w", input, err)
	}
	if pl.SourceName == "" {
		pl.SourceName = filepath.Base(input)
	}
	out, st := pl.Process(ParseProgram(string(data)))
	if err = os.WriteFile(output, []byte(out.String()), 0644); err != nil {
		return st, fmt.Errorf("write %s: %w", output, err)
	}
	return st, nil
}

// DefaultOutputPath appends a suffix to a file's stem:
// 001.txt + _normalized -> 001_normalized.txt.
func DefaultOutputPath(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

func wrapNormalized(p Program, source string, st NormalizeStats) Program {
	header := []string{"(Normalized G-code generated by gcodeprep)"}
	if source != "" {
		header = append(header, fmt.Sprintf("(Original file: %s)", source))
	}
	header = append(header,
		fmt.Sprintf("(Generated on: %s)", time.Now().Format("2006-01-02 15:04:05")),
		"",
	)

	out := p
	out.Lines = make([]string, 0, len(p.Lines)+len(header)+6)
	out.Lines = append(out.Lines, header...)
	out.Lines = append(out.Lines, p.Lines...)
	out.Lines = append(out.Lines,
		"",
		"(End of normalized G-code)",
		fmt.Sprintf("(Processed %d lines)", st.Lines),
		fmt.Sprintf("(Normalized %d G-codes)", st.MnemonicsNormalized),
		fmt.Sprintf("(Removed %d redundant coordinates)", st.CoordinatesRemoved),
		fmt.Sprintf("(Added %d explicit motion commands)", st.MnemonicsInserted),
	)
	return out
}

func appendLines(p Program, lines ...string) Program {
	out := p
	out.Lines = make([]string, 0, len(p.Lines)+len(lines))
	out.Lines = append(out.Lines, p.Lines...)
	out.Lines = append(out.Lines, lines...)
	return out
}
