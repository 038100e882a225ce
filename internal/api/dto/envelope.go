package dto

// Envelope wraps every successful response.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ErrorEnvelope wraps every failed response.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Pagination describes the page returned by list endpoints.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// OK builds a success envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Paginated builds a success envelope carrying pagination.
func Paginated(data any, p Pagination) Envelope {
	return Envelope{Success: true, Data: data, Pagination: &p}
}

// Failure builds an error envelope.
func Failure(category, message string) ErrorEnvelope {
	return ErrorEnvelope{Success: false, Error: category, Message: message}
}

func valueOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
