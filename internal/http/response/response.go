// Package response содержит вспомогательные типы и функции для формирования
// JSON‑ответов HTTP‑обработчиков в историческом формате API:
// ошибки — {"error": "..."}, списки с пагинацией — {"items": [...], "num_pages": N}.
package response

// ErrorResponse — структура ошибки, возвращаемая всеми обработчиками.
// Статусы исторические: 400 для ошибок валидации, 401 как для «не найдено»,
// так и для отказов бизнес-правил.
type ErrorResponse struct {
	Error string `json:"error" example:"Validation Fails"`
}

// MsgValidationFails — текст ошибки валидации входных данных.
const MsgValidationFails = "Validation Fails"

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// ValidationFails возвращает стандартный ответ об ошибке валидации.
func ValidationFails() ErrorResponse {
	return ErrorResponse{Error: MsgValidationFails}
}

// Paginated оборачивает страницу списка и количество страниц.
func Paginated(items any, numPages int) map[string]any {
	return map[string]any{
		"items":     items,
		"num_pages": numPages,
	}
}
