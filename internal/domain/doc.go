// Package domain contains shared domain types used across entity sub-packages.
// The catalog model lives in domain/catalog and the change-notification
// primitives it is built on live in domain/observable. This root package
// holds sentinel errors and the field-level validation error type.
package domain
