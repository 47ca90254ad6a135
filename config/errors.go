package config

// ConfigurationError reports a configuration the service cannot start with.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
