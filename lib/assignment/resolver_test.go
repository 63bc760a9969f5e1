package assignment

import (
	"testing"

	"github.com/stretchr/testify/require"
	"hr-requests-backend/models"
	requestapimodels "hr-requests-backend/models/api/request"
	dbmodels "hr-requests-backend/models/db"
)

type fakeEmployeeStore struct {
	byCode  map[string]dbmodels.Employee
	lookups int
}

func (f *fakeEmployeeStore) GetByCode(userCode string) (*dbmodels.Employee, error) {
	f.lookups++
	if rec, ok := f.byCode[userCode]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (f *fakeEmployeeStore) ListByTeam(team models.TeamKind) ([]dbmodels.Employee, error) {
	list := []dbmodels.Employee{}
	for _, rec := range f.byCode {
		if rec.Team == team {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeEmployeeStore) ListUnionByDepartment(department string) ([]dbmodels.Employee, error) {
	return nil, nil
}

func TestResolve(t *testing.T) {
	store := &fakeEmployeeStore{
		byCode: map[string]dbmodels.Employee{
			"IT01": {UserCode: "IT01", UserName: "Ivan", Email: "ivan@corp.example", Team: models.TeamIT},
			"IT02": {UserCode: "IT02", UserName: "Inna", Email: "inna@corp.example", Team: models.TeamIT},
		},
	}
	resolver := impl{employeeStore: store}

	t.Run("empty selection is refused before any lookup", func(t *testing.T) {
		store.lookups = 0
		_, err := resolver.Resolve(nil)
		require.Error(t, err)
		require.Equal(t, 0, store.lookups)
	})

	t.Run("duplicates collapse and directory data backfills", func(t *testing.T) {
		users, err := resolver.Resolve([]requestapimodels.AssignedUserData{
			{UserCode: "IT01"},
			{UserCode: "IT01"},
			{UserCode: "IT02", UserName: "Inna"},
		})
		require.Nil(t, err)
		require.Len(t, users, 2)
		require.Equal(t, "Ivan", users[0].UserName)
		require.Equal(t, "ivan@corp.example", users[0].Email)
		require.Equal(t, "inna@corp.example", users[1].Email)
	})

	t.Run("unknown employee is refused", func(t *testing.T) {
		_, err := resolver.Resolve([]requestapimodels.AssignedUserData{
			{UserCode: "GHOST"},
		})
		require.Error(t, err)
	})
}

func TestCandidatesUnknownPool(t *testing.T) {
	resolver := impl{employeeStore: &fakeEmployeeStore{}}
	_, err := resolver.Candidates("SECURITY", "")
	require.Error(t, err)
}
