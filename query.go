package expenses

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the expense list, seen as
// it is stored: an array of objects with string values.
//
//	Query(l, "$[0].amount")                      // "3.50"
//	Query(l, `$[?(@.description == "coffee")]`)  // matching records
func Query(l Expenses, path string) (any, error) {
	if l == nil {
		l = Expenses{}
	}
	// jsonpath works on the generic json tree, not on Go structs.
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, err
	}
	v, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return v, nil
}
