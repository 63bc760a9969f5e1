package assignment

import (
	requestapimodels "hr-requests-backend/models/api/request"
)

// Selection is the checkbox selection of candidate recipients, keyed by
// user code: adding an already selected user removes them, so duplicates
// cannot accumulate. Insertion order is preserved.
type Selection struct {
	order  []string
	byCode map[string]requestapimodels.AssignedUserData
}

func NewSelection() *Selection {
	return &Selection{
		byCode: map[string]requestapimodels.AssignedUserData{},
	}
}

// Toggle flips the selection state of a candidate.
func (s *Selection) Toggle(user requestapimodels.AssignedUserData) {
	if _, exist := s.byCode[user.UserCode]; exist {
		s.remove(user.UserCode)
		return
	}
	s.Add(user)
}

// Add selects a candidate; re-adding the same user code is a no-op.
func (s *Selection) Add(user requestapimodels.AssignedUserData) {
	if user.UserCode == "" {
		return
	}
	if _, exist := s.byCode[user.UserCode]; exist {
		return
	}
	s.byCode[user.UserCode] = user
	s.order = append(s.order, user.UserCode)
}

func (s *Selection) remove(userCode string) {
	delete(s.byCode, userCode)
	for idx, code := range s.order {
		if code == userCode {
			s.order = append(s.order[:idx], s.order[idx+1:]...)
			return
		}
	}
}

func (s *Selection) IsEmpty() bool {
	return len(s.byCode) == 0
}

func (s *Selection) Len() int {
	return len(s.byCode)
}

func (s *Selection) Users() []requestapimodels.AssignedUserData {
	result := make([]requestapimodels.AssignedUserData, 0, len(s.order))
	for _, code := range s.order {
		result = append(result, s.byCode[code])
	}
	return result
}
