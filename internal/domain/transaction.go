package domain

import "strings"

// Status — статус транзакции на стороне сервера.
//
// Набор значений открытый: сервер может вводить новые статусы,
// поэтому неизвестные значения не считаются ошибкой и выводятся как есть.
// Ниже перечислены только статусы, наблюдаемые в API.
type Status string

const (
	// StatusNew — входящая транзакция получена, но ещё не прочитана.
	StatusNew Status = "new"

	// StatusRead — входящая транзакция уже запрашивалась клиентом.
	StatusRead Status = "read"

	// StatusSent — исходящая транзакция доставлена.
	StatusSent Status = "sent"

	// StatusError — сервер сообщил об ошибке доставки.
	// Это состояние транзакции, а не ошибка клиента: запрос к API прошёл успешно.
	StatusError Status = "error"
)

// String возвращает строковое представление Status.
func (s Status) String() string {
	return string(s)
}

// Direction — направление обмена документа.
type Direction string

const (
	// DirectionIncoming — документ получен через access point.
	DirectionIncoming Direction = "incoming"

	// DirectionOutgoing — документ отправлен через access point.
	DirectionOutgoing Direction = "outgoing"
)

// Transaction — одна транзакция обмена документом.
// Идентификатор выдаётся сервером, имеет формат UUID и неизменяем.
type Transaction struct {
	ID        string    `json:"id"`
	Status    Status    `json:"status"`
	Timestamp string    `json:"timestamp"`
	Direction Direction `json:"direction"`
}

// Metadata — конвертные данные входящей транзакции.
// Документ (XML) к метаданным не прилагается и запрашивается отдельно.
type Metadata struct {
	Sender       string `json:"sender"`
	Receiver     string `json:"receiver"`
	DocumentType string `json:"documentType"`
	Process      string `json:"process"`
}

// TransactionDetail — транзакция вместе с конвертными данными,
// как её отдаёт endpoint одиночной транзакции.
type TransactionDetail struct {
	Transaction
	Metadata Metadata `json:"metadata"`
}

// SendResult — ответ сервера на отправку документа.
// Статус error здесь означает отказ доставки, а не ошибку запроса.
type SendResult struct {
	ID     string `json:"id"`
	Status Status `json:"status"`
}

// Pagination — серверные данные о странице списка.
type Pagination struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	Total  int `json:"total"`
}

// TransactionList — конверт ответа списковых endpoint'ов.
type TransactionList struct {
	Data       []Transaction `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// DefaultScheme — схема идентификатора участника Peppol по умолчанию.
const DefaultScheme = "iso6523-actorid-upis"

// ParticipantValue возвращает идентификатор участника без префикса
// схемы по умолчанию. Идентификаторы с другими схемами возвращаются целиком.
func ParticipantValue(id string) string {
	return strings.TrimPrefix(id, DefaultScheme+"::")
}

// SplitParticipant разбирает идентификатор вида <scheme>::<value>.
// Если разделитель отсутствует, вся строка считается значением без схемы.
func SplitParticipant(id string) (scheme, value string) {
	scheme, value, found := strings.Cut(id, "::")
	if !found {
		return "", id
	}
	return scheme, value
}
