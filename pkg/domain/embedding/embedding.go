package embedding

import (
	"errors"
	"time"
)

var ErrProviderNonOKResponse = errors.New("non-OK response from embeddings API")

type Embedding struct {
	Value     []float32 `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}
