package latreduce

import "errors"

// ErrRankDeficient signals a basis with a zero Gram-Schmidt norm: the input
// columns are linearly dependent, so no reduction is defined.
var ErrRankDeficient = errors.New("latreduce: basis is rank-deficient")
