// Package vocab re-orders the generated vocabulary list by difficulty tier
// and category.
//
// The source file is treated as text: a header that ends with the opening
// marker, a run of brace-delimited entry blocks, and a closing "];". Entries
// are copied verbatim into four banner-separated buckets (levels 1 to 3 and
// a trailing dinosaur bucket). Nothing outside the three sort fields is
// interpreted, so the file's own formatting survives a resort.
package vocab
