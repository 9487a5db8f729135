// Package core provides the load-validate-sort-serialize pipeline for census data.
//
// This package contains all domain logic independent of any UI or transport
// layer. It can be used by the HTTP server, the CLI, or tests without
// modification, and it reads no environment variables.
//
// # Flow
//
//	path -> ValidateFileName -> Decode -> Store -> SortBy -> Serialize -> text
//
// [Service] composes these steps. A load validates the file name before any
// I/O, decodes every row, and only then replaces the stored collection, so a
// failed load never changes what is stored.
//
// # Schemas
//
// Each record type has one [Schema] value ([CensusSchema], [StateCodeSchema])
// naming its header columns in order and building a typed record from a
// validated row. The decoder, store and sorter are generic over the record
// type; nothing is dispatched on runtime type tokens.
//
// # Sort Order
//
// [SortBy] is stable. Descending views are the ascending result reversed,
// so records with equal keys appear in reverse load order on descending
// views and in load order on ascending views. SortBy copies; the stored
// collection is never reordered.
//
// # Error Handling
//
// Every failure is an [*Error] with a [Kind]:
//
//   - WrongFileType: base name is not letters, digits and spaces plus ".csv"
//   - SourceUnavailable: the file could not be opened or read
//   - MalformedSchema: the header does not match the schema ("not a proper CSV")
//   - MalformedRow: a data row has the wrong field count or a bad integer
//   - NoData: a sorted view was requested with nothing loaded
//
// Use [KindOf] or errors.Is with the Err* sentinels to branch on the kind,
// and [MapError] to get a user-facing message with a support code.
package core
