// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo). This root package
// holds the error taxonomy shared by the storage, dispatch, and HTTP layers.
package domain
