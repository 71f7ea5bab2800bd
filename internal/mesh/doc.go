// Package mesh provides a small structured quad mesh whose vertices, cells
// and segments are used as attribute elements by the attrbench workload.
package mesh
