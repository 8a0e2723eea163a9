package identity

// Identity provider API paths (Supabase auth v1 surface)
const (
	PathSignUp  = "/auth/v1/signup"
	PathSignIn  = "/auth/v1/token?grant_type=password"
	PathGetUser = "/auth/v1/user"
)

// HeaderAPIKey carries the public API key on every provider request
const HeaderAPIKey = "apikey"

// Error messages surfaced to callers. Network errors never leak transport
// detail; provider errors prefer the message embedded in the response body.
const (
	ErrMsgSignupFailed           = "Signup failed"
	ErrMsgSigninFailed           = "Sign in failed"
	ErrMsgInvalidSignupResponse  = "Signup failed: Invalid response format"
	ErrMsgInvalidSigninResponse  = "Sign in failed: Invalid response format"
	ErrMsgInvalidGetUserResponse = "Get user failed: Invalid response"
	ErrMsgNetworkSignup          = "Network error during signup"
	ErrMsgNetworkSignin          = "Network error during sign in"
	ErrMsgNetworkGetUser         = "Network error getting user"
)
