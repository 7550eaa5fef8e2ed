package interfaces

// ITokenIssuer signs an access token for an authenticated account.
type ITokenIssuer interface {
	Issue(userID, role string) (string, error)
}
