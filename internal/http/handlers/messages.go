package handlers

var messages = map[string]map[string]string{
	"en": {
		"registered":         "User registered successfully",
		"logged_in":          "Logged in successfully",
		"profile":            "Profile retrieved",
		"profile_updated":    "Profile updated",
		"categories":         "Categories retrieved",
		"request_created":    "Aid request created",
		"requests":           "Aid requests retrieved",
		"request":            "Aid request retrieved",
		"request_updated":    "Aid request updated",
		"request_assigned":   "You have taken this request",
		"status_updated":     "Request status updated",
		"comment_added":      "Comment added",
		"comments":           "Comments retrieved",
		"stats":              "Statistics retrieved",
		"validation":         "Invalid input",
		"unauthenticated":    "Authentication required",
		"forbidden":          "You are not allowed to do this",
		"not_found":          "Not found",
		"conflict":           "Already exists",
		"invalid_transition": "This action is not possible in the current request status",
		"already_assigned":   "This request already has a volunteer",
		"unavailable":        "Service temporarily unavailable, try again later",
		"rate_limited":       "Too many requests, slow down",
		"internal":           "Internal server error",
		"route_not_found":    "Route not found",
		"method_not_allowed": "Method not allowed",
	},
	"uk": {
		"registered":         "Користувача успішно зареєстровано",
		"logged_in":          "Вхід виконано успішно",
		"profile":            "Профіль отримано",
		"profile_updated":    "Профіль оновлено",
		"categories":         "Категорії отримано",
		"request_created":    "Запит на допомогу створено",
		"requests":           "Запити на допомогу отримано",
		"request":            "Запит на допомогу отримано",
		"request_updated":    "Запит на допомогу оновлено",
		"request_assigned":   "Ви взяли цей запит",
		"status_updated":     "Статус запиту оновлено",
		"comment_added":      "Коментар додано",
		"comments":           "Коментарі отримано",
		"stats":              "Статистику отримано",
		"validation":         "Некоректні дані",
		"unauthenticated":    "Потрібна автентифікація",
		"forbidden":          "Недостатньо прав для цієї дії",
		"not_found":          "Не знайдено",
		"conflict":           "Вже існує",
		"invalid_transition": "Ця дія неможлива для поточного статусу запиту",
		"already_assigned":   "Цей запит вже має волонтера",
		"unavailable":        "Сервіс тимчасово недоступний, спробуйте пізніше",
		"rate_limited":       "Забагато запитів, спробуйте пізніше",
		"internal":           "Внутрішня помилка сервера",
		"route_not_found":    "Маршрут не знайдено",
		"method_not_allowed": "Метод не дозволено",
	},
}

func message(locale, key string) string {
	if m, ok := messages[locale]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return messages["en"][key]
}
