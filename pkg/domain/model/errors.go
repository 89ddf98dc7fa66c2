package model

import "github.com/m-mizutani/goerr/v2"

// ErrGuildNotFound is returned by repository backends when a guild has no
// configuration record
var ErrGuildNotFound = goerr.New("guild not found")
