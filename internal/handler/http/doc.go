// Package http implements the HTTP transport of the stub feed server.
//
// It serves pages of the dataset in the public character-feed format
// (GET /api/{resource}?page=N), a health probe, the build version and the
// Prometheus metrics. Request tracing, access logging, metrics and response
// compression are middleware applied before requests reach the service layer.
package http
