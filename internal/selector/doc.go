// Package selector projects a delimited row stream onto a chosen
// subset (or complement) of its columns, preserving row order and
// optionally rounding numeric cells. It offers two interchangeable
// execution strategies behind the Projector interface: streaming
// (row by row, the default) and bulk (whole table in memory).
package selector
