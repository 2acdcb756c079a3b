// Package sanitizer normalizes catalog input (hotel and destination text,
// amenity lists, image URLs and prices) before validation and storage.
//
// All functions are idempotent: applying them twice gives the same result as
// applying them once. Invalid input is handled by returning an empty value
// rather than an error, leaving rejection to the validators.
package sanitizer
