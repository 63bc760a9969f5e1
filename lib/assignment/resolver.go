package assignment

import (
	"github.com/pkg/errors"
	"hr-requests-backend/db"
	employeestore "hr-requests-backend/lib/employee/store"
	"hr-requests-backend/models"
	employeeapimodels "hr-requests-backend/models/api/employee"
	requestapimodels "hr-requests-backend/models/api/request"
	dbmodels "hr-requests-backend/models/db"
)

type Provider interface {
	Candidates(team models.TeamKind, department string) ([]employeeapimodels.CandidateView, error)
	// Resolve validates and deduplicates the recipients of an assign
	// transition against the employee directory.
	Resolve(selected []requestapimodels.AssignedUserData) ([]requestapimodels.AssignedUserData, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	employeeStore employeestore.Provider
}

func (i impl) Candidates(team models.TeamKind, department string) ([]employeeapimodels.CandidateView, error) {
	if !team.IsValid() {
		return nil, errors.Errorf("unknown candidate pool %v", team)
	}
	recs, err := i.listPool(team, department)
	if err != nil {
		return nil, err
	}
	result := make([]employeeapimodels.CandidateView, 0, len(recs))
	for _, rec := range recs {
		result = append(result, employeeapimodels.CandidateConvert(rec))
	}
	return result, nil
}

func (i impl) Resolve(selected []requestapimodels.AssignedUserData) ([]requestapimodels.AssignedUserData, error) {
	selection := NewSelection()
	for _, user := range selected {
		selection.Add(user)
	}
	if selection.IsEmpty() {
		return nil, errors.New("no assignee selected")
	}
	users := selection.Users()
	for idx, user := range users {
		rec, err := i.employeeStore.GetByCode(user.UserCode)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, errors.Errorf("employee %v not found in the directory", user.UserCode)
		}
		if user.UserName == "" {
			users[idx].UserName = rec.UserName
		}
		if user.Email == "" {
			users[idx].Email = rec.Email
		}
	}
	return users, nil
}

func (i impl) listPool(team models.TeamKind, department string) ([]dbmodels.Employee, error) {
	if team == models.TeamUnion {
		return i.employeeStore.ListUnionByDepartment(department)
	}
	return i.employeeStore.ListByTeam(team)
}
