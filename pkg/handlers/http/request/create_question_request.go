package request

import (
	"fmt"
	"strings"
)

type CreateQuestionRequest struct {
	Question string `json:"question"`
}

func (r *CreateQuestionRequest) Validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return fmt.Errorf("question is required")
	}
	return nil
}
