package payload

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/jellydator/validation"
)

var chainIDRegex = regexp.MustCompile(`^[1-9][0-9]{0,18}$`)

// ReportRequest narrows the report to the given chains. No ids means every
// chain.
type ReportRequest struct {
	ChainIDs []string
}

func (r ReportRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ChainIDs, validation.Each(validation.Required, validation.Match(chainIDRegex))),
	)
}

func (r ReportRequest) IDs() (map[int64]struct{}, error) {
	ids := make(map[int64]struct{}, len(r.ChainIDs))
	for _, raw := range r.ChainIDs {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse chain id %q: %w", raw, err)
		}
		ids[id] = struct{}{}
	}
	return ids, nil
}

type ContractsRequest struct {
	ChainID string
}

func (c ContractsRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ChainID, validation.Required, validation.Match(chainIDRegex)),
	)
}

func (c ContractsRequest) ID() (int64, error) {
	id, err := strconv.ParseInt(c.ChainID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse chain id %q: %w", c.ChainID, err)
	}
	return id, nil
}
