package interfaces

// LoggerInterface is the minimal sink the archivist writes to.
// The stdlib *log.Logger satisfies it.
type LoggerInterface interface {
	Println(v ...interface{})
}
