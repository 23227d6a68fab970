package httperr

// Kind classifica o erro de domínio; a camada HTTP escolhe o status por ele.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// BusinessError carrega o tipo, um código estável e a mensagem exibida ao usuário.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func New(kind Kind, code, message string) error {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) error {
	return New(KindValidation, code, message)
}

func Conflict(code, message string) error {
	return New(KindConflict, code, message)
}

func NotFoundErr(code, message string) error {
	return New(KindNotFound, code, message)
}

func UnauthorizedErr(code, message string) error {
	return New(KindUnauthorized, code, message)
}
