package authapimodels

import "github.com/pkg/errors"

type LoginData struct {
	UserCode string `json:"user_code"`
	Password string `json:"password"`
}

func (l LoginData) Validate() error {
	if l.UserCode == "" {
		return errors.New("user code is required")
	}
	if l.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type TokenView struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
