package dataset

import "fmt"

const (
	StageOpen   = "open"
	StageHeader = "header"
	StageRow    = "row"
	StageShape  = "shape"
	StageStore  = "store"
)

// LoadError - ошибка загрузки данных с указанием стадии
type LoadError struct {
	Stage string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("dataset load error at %s stage: %v", e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError создает новую LoadError
func NewLoadError(stage string, err error) *LoadError {
	return &LoadError{
		Stage: stage,
		Err:   err,
	}
}
