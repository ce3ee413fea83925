package config

const (
	// DefaultDatabasePath is the default sqlite file for the catalog database
	DefaultDatabasePath = "./audiobook.db"

	// DefaultMediaBaseURL is joined with stored image and audio paths.
	// Relative values are made absolute using the request host.
	DefaultMediaBaseURL = "/media/"
)
