package funnel

import "errors"

var ErrCatalog = errors.New("funnel: invalid catalog")
