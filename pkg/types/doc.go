// Package types defines the Person entity, the canonical workbook schema,
// field validation, and standard errors for the cadastro registry store.
package types
