// Package observability provides the structured logger and Prometheus
// metrics shared by the estimator's packages.
package observability
