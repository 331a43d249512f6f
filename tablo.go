package tablo

import (
	nt "tablo/entity"
)

// Store specifies a backing datasource.
type Store interface {
	// Name returns the name of the data source
	Name() string
	// Headers returns field names in source order
	Headers() []string
	// Rows returns every record
	Rows() (rows []nt.Row, err error)
}
