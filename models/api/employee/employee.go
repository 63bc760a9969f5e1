package employeeapimodels

import (
	dbmodels "hr-requests-backend/models/db"
)

// CandidateView is one member of a candidate pool offered for assignment.
type CandidateView struct {
	UserCode string `json:"user_code"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}

func CandidateConvert(rec dbmodels.Employee) CandidateView {
	return CandidateView{
		UserCode: rec.UserCode,
		UserName: rec.UserName,
		Email:    rec.Email,
	}
}
