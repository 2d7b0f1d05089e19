// Package renderer turns wallet data into markdown reports.
package renderer
