package constants

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
)

type ENV string

const (
	Debug ENV = "debug"
	Dev   ENV = "development"
	Stag  ENV = "staging"
	Prod  ENV = "production"
)
