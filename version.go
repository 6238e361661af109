package fasim

import _ "embed"

// Version is the released version of fasim.
//
//go:embed VERSION
var Version string
