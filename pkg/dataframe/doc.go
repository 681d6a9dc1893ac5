/*
Package dataframe provides a small in-memory rectangular dataset: an ordered
sequence of named, typed columns with an aligned row count.

Frames can be built directly from columns, read from CSV with per-column type
inference, or read from a database/sql query. The package performs no
transformation beyond construction-time shape validation; it exists to feed
the tabulator output binding with something table-shaped.
*/
package dataframe
