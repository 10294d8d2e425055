package config

import "fmt"

// LoadError describes why a snapshot is not usable. Section and Key are set
// when a single field failed.
type LoadError struct {
	Code    ResultCode
	Path    string
	Section string
	Key     string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("load config %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("load config %s: %s: %v", e.Path, e.Message, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
