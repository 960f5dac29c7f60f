package username

import (
	"regexp"
	"strings"
)

var pattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,16}$`)

// Rule описывает формат имени для сообщений об ошибке
const Rule = "Minecraft username must be 3-16 characters (letters, numbers, and underscores only)"

// Validate проверяет игровое имя: 3-16 символов, латиница, цифры и подчеркивание
func Validate(name string) bool {
	return pattern.MatchString(name)
}

// Normalize удаляет пробелы по краям, как это делает форма перед проверкой
func Normalize(name string) string {
	return strings.TrimSpace(name)
}
