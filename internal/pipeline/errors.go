package pipeline

import "fmt"

// SchemaError indicates the input had no usable columns or rows after
// header mapping. It is fatal and aborts the run.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error: %s", e.Reason)
}

// PipelineEmptyError indicates cleaning removed every row. It is fatal,
// aborts the run, and is kept distinct from SchemaError so diagnostics can
// tell "bad input shape" from "everything filtered out".
type PipelineEmptyError struct {
	Stage string
}

func (e *PipelineEmptyError) Error() string {
	return fmt.Sprintf("pipeline empty after %s: no records remain", e.Stage)
}
