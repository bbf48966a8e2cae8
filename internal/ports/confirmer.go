package ports

// Confirmer asks the user to authorize a destructive operation
type Confirmer interface {
	// Confirm shows the entries that will be affected and returns true only
	// when the user explicitly agrees
	Confirm(entries []string) (bool, error)
}
