package user

// Repository stores credentials keyed by exact username.
type Repository interface {
	Find(username string) (Credential, bool, error)
	Create(c Credential) error
}
