package handler

// Response envelope field values and messages. Handlers and tests reference
// these constants to keep the wire contract in one place.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusSaved   = "saved"

	UserIDCreated = "created"
	UserIDExists  = "exists"

	MsgAccountCreated  = "Account created successfully."
	MsgSignupFailedFmt = "Signup failed: %s"
	MsgSigninFailedFmt = "Sign in failed: %s"
	MsgDatabaseErrFmt  = "Database error: %s"
)
