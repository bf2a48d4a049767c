// Package tides loads tide-height readings from delimited files and answers
// per-station queries over them: pivoted time series, max/min/mean summaries
// and chart data. A Table is created from a file, grown in place with
// AddReading and written back with Export.
package tides
