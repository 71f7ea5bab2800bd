// Package bench measures the duration of named workload phases.
package bench
