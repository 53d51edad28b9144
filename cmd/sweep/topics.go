package sweep

import "embed"

// embeddedTopics holds the help topics shown by 'sweep help <topic>'
//
//go:embed topics/*.md
var embeddedTopics embed.FS
