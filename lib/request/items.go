package requesthandler

import (
	"github.com/pkg/errors"
	dbmodels "hr-requests-backend/models/db"
)

type rejectionScope int

const (
	// scopeWhole rejects the whole request.
	scopeWhole rejectionScope = iota
	// scopePartial marks only the selected items rejected and leaves the
	// parent status untouched.
	scopePartial
)

// resolveRejectionScope decides how an item selection maps onto the reject
// transition: an empty selection and a full selection are both equivalent to
// rejecting the whole request; only a strict non-empty subset triggers
// item-level rejection.
func resolveRejectionScope(selectedIDs []string, items []dbmodels.RequestItem) (rejectionScope, []string, error) {
	known := map[string]bool{}
	for _, item := range items {
		known[item.ID] = true
	}
	selection := map[string]bool{}
	ids := make([]string, 0, len(selectedIDs))
	for _, id := range selectedIDs {
		if !known[id] {
			return scopeWhole, nil, errors.Errorf("item %v does not belong to the request", id)
		}
		if selection[id] {
			continue
		}
		selection[id] = true
		ids = append(ids, id)
	}
	if len(ids) == 0 || len(ids) == len(items) {
		return scopeWhole, nil, nil
	}
	return scopePartial, ids, nil
}
