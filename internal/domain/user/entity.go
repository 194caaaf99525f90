package user

// UserInfo is the employee record resolved from the access system's
// personnel view. Read-only for this service.
type UserInfo struct {
	ID          int
	Code        int
	Name        string
	Username    string
	FondPercent *int
	RoleAdmin   bool
	RoleHip     bool
	Department  string
}

// Fond returns the contracted-hours fraction as a multiplier.
// Missing fond means full time.
func (u UserInfo) Fond() float64 {
	if u.FondPercent == nil {
		return 1
	}
	return float64(*u.FondPercent) / 100
}
