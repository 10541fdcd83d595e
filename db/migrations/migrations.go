package migrations

import "embed"

// FS holds the schema of marketing channels, campaigns and their daily
// metrics, read by golang-migrate through the iofs source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
