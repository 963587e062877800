// Package verify reads back the tags of an organized library.
//
// It never modifies files. Reads fan out over a bounded number of
// goroutines and the report is returned in a stable order.
package verify
