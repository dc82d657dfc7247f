package models

// AccountView is an Account enriched with the fields derived for display.
type AccountView struct {
	Account
	Status      string
	DownloadURL string
}

func NewAccountView(account Account, downloadURLTemplate string) *AccountView {
	return &AccountView{
		Account:     account,
		Status:      account.Status(),
		DownloadURL: BuildDownloadURL(downloadURLTemplate, account.GDriveID),
	}
}

// IsVigente reports whether the account has no balance outstanding.
func (v *AccountView) IsVigente() bool {
	return v.Status == StatusVigente
}
