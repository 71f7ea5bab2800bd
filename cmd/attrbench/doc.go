// Command attrbench runs a mesh refinement workload against an attribute
// storage and reports per phase timings and storage statistics.
//
// Configuration is read from ATTRBENCH_* environment variables, an optional
// env file (ATTRBENCH_ENV_FILE, default .env) and command line flags, with
// flags taking precedence.
package main
