// Package export writes estimator results: transmission lines as a GeoJSON
// FeatureCollection, the network summary as a one-row CSV, and complete
// runs into a SQLite database.
package export
