package pulp

import "errors"

// ErrUsage marks requests that can never succeed as given.
var ErrUsage = errors.New("usage error")

// DistRepoFamily is the repo family the clear workflow refuses to touch.
const DistRepoFamily = "dist"
