package models

// AuthCodeView is one live one-time-password entry of the verification-codes
// projection. Code is recomputed every tick; the rest identifies the login
// cipher it belongs to.
type AuthCodeView struct {
	CipherID      string
	Name          string
	Username      string
	Code          string
	PeriodSeconds int
}
