package config

import (
	"os"
)

// Environment is the runtime mode, read from CRAVEFIT_ENV. Anything
// unrecognized falls back to development so a bare checkout still boots.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	Production  Environment = "production"
)

func GetEnvironment() Environment {
	switch os.Getenv("CRAVEFIT_ENV") {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// IsTest reports whether the process runs under the test environment,
// where config validation relaxes the secret requirements.
func IsTest() bool {
	return GetEnvironment() == Test
}

// IsProduction reports whether the process runs in production, which
// switches gin to release mode and tightens validation.
func IsProduction() bool {
	return GetEnvironment() == Production
}
