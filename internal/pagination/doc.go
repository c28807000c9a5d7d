// Package pagination implements limit/offset paging over ordered record
// sources, with equality filters taken from unrecognised query parameters and
// previous/next links that reproduce the request.
//
// Given ?robot=true&offset=20, a default page size of 10 and more than 30
// matching records, the page holds matches 21..30 and the links read
//
//	previous: {base}/?robot=True&limit=10&offset=10
//	next:     {base}/?robot=True&limit=10&offset=30
//
// Parameters naming no registered field, or whose value does not parse as the
// field's type, are ignored individually.
package pagination
