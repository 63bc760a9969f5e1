package ledger

import (
	"hr-requests-backend/models"
	requestapimodels "hr-requests-backend/models/api/request"
	dbmodels "hr-requests-backend/models/db"
)

const (
	// Placeholder rendered for blank notes and missing timestamps.
	Placeholder = "--"

	timeLayout = "2006-01-02 15:04:05"
)

// Project renders the append-only history of a request oldest-first. It is a
// pure projection over externally supplied entries; REJECT is the only
// action tag with distinct presentation semantics.
func Project(entries []dbmodels.HistoryEntry) []requestapimodels.HistoryEntryView {
	result := make([]requestapimodels.HistoryEntryView, 0, len(entries))
	for _, entry := range entries {
		result = append(result, Render(entry))
	}
	return result
}

func Render(entry dbmodels.HistoryEntry) requestapimodels.HistoryEntryView {
	return requestapimodels.HistoryEntryView{
		UserNameApproval: entry.UserNameApproval,
		Action:           entry.Action,
		IsReject:         entry.Action == models.ActionTagReject,
		Note:             renderNote(entry.Note),
		CreatedAt:        renderTime(entry),
	}
}

func renderNote(note string) string {
	if note == "" {
		return Placeholder
	}
	return note
}

func renderTime(entry dbmodels.HistoryEntry) string {
	if entry.CreatedAt.IsZero() {
		return Placeholder
	}
	return entry.CreatedAt.Format(timeLayout)
}
