// Package config resolves the helper's configuration from environment
// variables into one explicit structure.
//
// The Config type has a named field for every override the CI surface
// accepts (version fields, source file path, package name, target platform,
// build tags, symbol stripping, date format, bundle path). FromEnv reads the
// environment exactly once at process start; components receive the struct
// and never consult ambient state on their own.
package config
