// Package ingest turns uploaded tabular files into canonical products.
//
// The pipeline has three layers: the alias table maps unpredictable column
// headers onto canonical fields, the normalizer coerces one raw row into
// exactly one types.Product, and the file readers decode CSV or XLSX
// payloads into ordered raw rows. Malformed rows degrade to fallback values
// rather than being dropped; a spreadsheet full of garbage yields a catalog
// of mostly-"Unknown" rows, never a rejected batch.
package ingest
