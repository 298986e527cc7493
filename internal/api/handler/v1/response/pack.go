package response

import (
	"github.com/seelv/dancebook/internal/domain"
)

// PackResponse is a pack as written by staff. StartingDate is left out while
// the pack has no events.
type PackResponse struct {
	domain.Pack
	StartingDate *domain.Date `json:"starting_date,omitempty"`
}

func NewPackResponse(p domain.Pack) PackResponse {
	resp := PackResponse{Pack: p}
	if start, err := p.StartingDate(); err == nil {
		resp.StartingDate = &start
	}

	return resp
}
