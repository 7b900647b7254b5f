package registry

import "time"

// nowFunc is swapped out in tests that assert on UpdatedAt.
var nowFunc = time.Now
