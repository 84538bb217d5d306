package batch

import (
	"fmt"

	"Coilcalc/internal/calc/coil"
)

// MaxItems caps a single batch request.
const MaxItems = 500

type CoilBatchInput struct {
	Items []coil.Input `json:"items"`
}

type ItemResult struct {
	Index  int          `json:"index"`
	Result *coil.Result `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`

	err error
}

type CoilBatchResult struct {
	Results []ItemResult `json:"results"`
	Failed  int          `json:"failed"`
}

// CalculateCoils evaluates every item on its own; a bad item is reported
// in place and does not abort the batch.
func CalculateCoils(in CoilBatchInput) (CoilBatchResult, error) {
	if len(in.Items) == 0 {
		return CoilBatchResult{}, fmt.Errorf("no items")
	}
	if len(in.Items) > MaxItems {
		return CoilBatchResult{}, fmt.Errorf("too many items: %d > %d", len(in.Items), MaxItems)
	}
	out := CoilBatchResult{Results: make([]ItemResult, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := coil.Evaluate(item)
		if err != nil {
			out.Results = append(out.Results, ItemResult{Index: i, Error: err.Error(), err: err})
			out.Failed++
			continue
		}
		out.Results = append(out.Results, ItemResult{Index: i, Result: &res})
	}
	return out, nil
}
