package field

import "errors"

var ErrFieldNotFound = errors.New("field not found")

// Field is a rentable location. The catalog is owned by a separate
// field-management flow; this service only reads it.
type Field struct {
	ID        string   `json:"id"`
	FieldName string   `json:"fieldName"`
	Location  string   `json:"location"`
	Price     float64  `json:"price"`
	Lat       *float64 `json:"lat,omitempty"`
	Lng       *float64 `json:"lng,omitempty"`
}
