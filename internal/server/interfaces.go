package server

// Server is a transport server of the auth service. RunServer blocks until
// the server is stopped; Shutdown stops it and waits for in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}
