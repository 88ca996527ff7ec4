package config

type IServiceConfiguration interface {
	// Validates configuration entries.
	Validate() error
}
