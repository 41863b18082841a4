package postgres

import _ "embed"

// Schema DDL completo de la base (idempotente, IF NOT EXISTS).
//
//go:embed schema.sql
var Schema string
