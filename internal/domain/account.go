package domain

// AccountModel is the session returned by the login endpoint on success.
type AccountModel struct {
	AccessToken string `json:"accessToken"`
	Name        string `json:"name"`
}
