package authhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-requests-backend/db"
	employeestore "hr-requests-backend/lib/employee/store"
	authutils "hr-requests-backend/lib/utils/auth-utils"
	authapimodels "hr-requests-backend/models/api/auth"
)

type Provider interface {
	Login(data authapimodels.LoginData) (response authapimodels.TokenView, err error)
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

func (i impl) Login(data authapimodels.LoginData) (response authapimodels.TokenView, err error) {
	logger := log.WithField("user_code", data.UserCode)
	rec, err := i.employeeStore.GetByCode(data.UserCode)
	if err != nil {
		logger.WithError(err).Error("failed to look up employee")
		return authapimodels.TokenView{}, err
	}
	if rec == nil {
		logger.Debug("employee not found")
		return authapimodels.TokenView{}, errors.New("unknown user code or password")
	}
	if !rec.IsActive {
		logger.Debug("employee is deactivated")
		return authapimodels.TokenView{}, errors.New("account is deactivated")
	}
	if authutils.GetMD5Hash(data.Password) != rec.Password {
		logger.Debug("password check failed")
		return authapimodels.TokenView{}, errors.New("unknown user code or password")
	}
	accessToken, err := authutils.GetToken(rec.ToActor())
	if err != nil {
		logger.WithError(err).Error("failed to issue token")
		return authapimodels.TokenView{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(rec.UserCode, rec.UserName)
	if err != nil {
		logger.WithError(err).Error("failed to issue refresh token")
		return authapimodels.TokenView{}, err
	}
	return authapimodels.TokenView{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
