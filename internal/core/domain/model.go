package domain

// Result holds the outcome of a ROUGE-L computation.
type Result struct {
	Name            string
	FMeasure        float64
	Precision       float64
	Recall          float64
	LCSLength       int
	CandidateLength int
	ReferenceLength int
	Details         map[string]interface{}
}

// Zero returns a degenerate all-zero result carrying the given diagnostic
// details. Used for empty inputs and cancelled computations.
func Zero(name string, details map[string]interface{}) Result {
	return Result{
		Name:    name,
		Details: details,
	}
}
