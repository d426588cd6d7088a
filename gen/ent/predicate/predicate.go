// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Article is the predicate function for article builders.
type Article func(*sql.Selector)

// Detection is the predicate function for detection builders.
type Detection func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
