package dto

// ErrorResponse representa a estrutura de resposta para erros
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse é o envelope comum das respostas; Success fica falso
// quando a operação foi recusada pelo colaborador
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse cria uma nova resposta de sucesso
func NewSuccessResponse(message string, data interface{}) SuccessResponse {
	return SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewOutcomeResponse cria uma resposta a partir do desfecho de uma operação
func NewOutcomeResponse(success bool, message string, data interface{}) SuccessResponse {
	return SuccessResponse{
		Success: success,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Pagination representa os parâmetros de paginação por limite e deslocamento
type Pagination struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// GetPagination aplica o limite padrão e o limite máximo
func GetPagination(limit, offset, defaultLimit, maxLimit int) Pagination {
	if limit <= 0 {
		limit = defaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}

	return Pagination{Limit: limit, Offset: offset}
}
