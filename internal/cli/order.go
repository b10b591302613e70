package cli

import (
	"strconv"
	"strings"

	"github.com/diskmap/diskmap/pkg/errors"
)

// parseOrder parses a --order flag value ("0,2,1") into vertex IDs.
// An empty spec returns nil, which lets the pipeline fall back to ascending
// vertex IDs. Permutation checks against the graph happen at the copy-line
// factory, not here.
func parseOrder(spec string) ([]int64, error) {
	if spec == "" {
		return nil, nil
	}
	if err := errors.ValidateOrderSpec(spec); err != nil {
		return nil, err
	}

	parts := strings.Split(spec, ",")
	order := make([]int64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidOrder, err, "parse vertex ID %q", p)
		}
		order = append(order, v)
	}
	return order, nil
}
