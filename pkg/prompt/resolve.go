package prompt

import (
	"context"
	"fmt"

	"github.com/goliatone/go-fieldconnector/pkg/fieldtype"
)

// skipOption lets the operator leave a class unresolved.
const skipOption = "(skip)"

// ResolveUnknown asks the operator to pick a label for each class and
// returns the chosen overrides keyed by class. Skipped classes are absent
// from the result.
func ResolveUnknown(ctx context.Context, driver Driver, classes []string) (map[string]fieldtype.FieldType, error) {
	out := make(map[string]fieldtype.FieldType)
	if len(classes) == 0 {
		return out, nil
	}
	if driver == nil {
		return nil, fmt.Errorf("prompt: driver is required")
	}

	values := fieldtype.Values()
	options := make([]string, 0, len(values)+1)
	options = append(options, skipOption)
	for _, v := range values {
		options = append(options, fmt.Sprintf("%s (%s)", v, v.Label()))
	}

	for _, class := range classes {
		idx, err := driver.Select(ctx, SelectConfig{
			Message:  fmt.Sprintf("Field type for %s", class),
			Options:  options,
			Help:     "Pick the label this plugin class should export as.",
			PageSize: 12,
		})
		if err != nil {
			return nil, err
		}
		if idx <= 0 || idx >= len(options) {
			continue
		}
		out[class] = values[idx-1]
	}
	return out, nil
}
