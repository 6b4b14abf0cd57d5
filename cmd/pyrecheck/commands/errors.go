package commands

import "go.trai.ch/zerr"

// errCheckFailed signals that a check/recheck run produced at least one
// error-severity diagnostic, distinct from a command failing to run at all.
var errCheckFailed = zerr.New("type check failed")
