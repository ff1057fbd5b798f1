package web

import "embed"

// FS holds the static assets served under /static.
// The patterns are relative to the web directory.
//
//go:embed static/*
var FS embed.FS
