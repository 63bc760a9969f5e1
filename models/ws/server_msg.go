package wsmodels

type ServerMessage struct {
	ToUserCode string `json:"-"`
	Time       string `json:"time"`  // event time
	Code       string `json:"code"`  // event code
	Count      int64  `json:"count"` // refreshed counter value
}
