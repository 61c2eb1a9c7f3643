package batch

import "fmt"

// Method records which path produced a variant's output file.
type Method int

const (
	MethodNone Method = iota
	MethodRaster
	MethodFallback
)

func (m Method) String() string {
	switch m {
	case MethodRaster:
		return "raster"
	case MethodFallback:
		return "fallback"
	default:
		return "none"
	}
}

// VariantOutcome is the structured result of one palette variant of one
// source file. Err is set only when both the raster and the fallback path
// failed.
type VariantOutcome struct {
	Suffix  string
	OutPath string
	Method  Method
	Err     error
}

func (o VariantOutcome) OK() bool { return o.Err == nil && o.Method != MethodNone }

// FileResult aggregates the two variant outcomes of one source file.
type FileResult struct {
	Source   string
	Variants []VariantOutcome
}

// Successes counts the variants that produced an output file by either
// path. The value is 0, 1 or 2.
func (r FileResult) Successes() int {
	n := 0
	for _, v := range r.Variants {
		if v.OK() {
			n++
		}
	}
	return n
}

// Report holds the batch-wide totals printed at the end of a run. Failures
// is defined as 2−successes per file; a file that could not be processed at
// all counts as 2 failures.
type Report struct {
	Files     int
	Successes int
	Failures  int
	Degraded  bool
}

// Print writes the human-readable summary block.
func (r Report) Print() {
	fmt.Println()
	fmt.Printf("Files found:  %d\n", r.Files)
	fmt.Printf("Converted:    %d\n", r.Successes)
	fmt.Printf("Failed:       %d\n", r.Failures)
	if r.Degraded {
		fmt.Println("No renderer was available: recolored copies were saved as *_temp files; convert them manually.")
	}
}
