package constants

const (
	ErrorBadRequest       = "Bad Request"
	ErrorInternal         = "Internal Service Error"
	ErrorNotAuthenticated = "Not Authenticated"
	ErrorNotFound         = "Not found"
	ErrorMissingQuery     = "No search term present"
)
