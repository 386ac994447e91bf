// Package motivation serves short motivational messages sent after record
// writes and on demand.
package motivation

import "math/rand"

var messages = []string{
	"Отличная работа! Продолжай в том же духе! 💪",
	"Каждая запись — шаг к цели. Так держать!",
	"Регулярность важнее рекордов. Ты молодец!",
	"Сегодняшние привычки — завтрашние результаты. 🚀",
	"Маленькие шаги каждый день приводят к большим переменам.",
	"Здоровый сон — половина успеха. Отдыхай как следует!",
	"Ты ближе к цели, чем вчера. Не останавливайся!",
	"Дисциплина — это выбор между тем, что хочется сейчас, и тем, что хочется больше всего.",
}

// Random returns one of the built-in messages.
func Random() string {
	return messages[rand.Intn(len(messages))]
}
