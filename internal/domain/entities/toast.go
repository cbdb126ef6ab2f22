package entities

// ToastKind classifies how a toast is presented
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastInfo    ToastKind = "info"
	ToastWarning ToastKind = "warning"
	ToastError   ToastKind = "error"
)

// Toast is a transient notification shown once after an action
type Toast struct {
	Kind        ToastKind `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
}

// Valid reports whether the toast has a known kind and a title
func (t Toast) Valid() bool {
	if t.Title == "" {
		return false
	}
	switch t.Kind {
	case ToastSuccess, ToastInfo, ToastWarning, ToastError:
		return true
	default:
		return false
	}
}
