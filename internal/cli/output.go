package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ionite/ionap-cli/internal/domain"
)

// Output управляет форматированием вывода CLI.
//
// Данные идут в stdout, сообщения (Success/Error) — в stderr,
// поэтому вывод можно передавать по конвейеру: ionap-cli receive -j | jq .
//
// В raw-режиме (-j) тело ответа сервера печатается байт в байт,
// без переразбора и без добавленного перевода строки.
type Output struct {
	jsonMode bool
	w        io.Writer // stdout для данных
	errW     io.Writer // stderr для сообщений
}

// NewOutput создаёт Output. Если jsonMode=true, данные выводятся
// как необработанное тело ответа сервера.
func NewOutput(jsonMode bool) *Output {
	return &Output{
		jsonMode: jsonMode,
		w:        os.Stdout,
		errW:     os.Stderr,
	}
}

// JSONMode сообщает, выбран ли raw-режим вывода.
func (o *Output) JSONMode() bool {
	return o.jsonMode
}

// Raw печатает байты как есть. Используется для raw-режима и для
// тел документов и receipts, которые не изменяются ни в одном режиме.
func (o *Output) Raw(body []byte) {
	o.w.Write(body)
}

// List печатает сводную строку и страницу транзакций,
// по строке на транзакцию: <id>\t<status>\t<timestamp>.
func (o *Output) List(list *domain.TransactionList) {
	start := list.Pagination.Offset + 1
	end := list.Pagination.Offset + len(list.Data)
	if len(list.Data) == 0 {
		start, end = 0, 0
	}

	fmt.Fprintf(o.w, "Showing %d-%d of %d transactions\n", start, end, list.Pagination.Total)
	for _, tx := range list.Data {
		fmt.Fprintf(o.w, "%s\t%s\t%s\n", tx.ID, tx.Status, tx.Timestamp)
	}
}

// Detail печатает транзакцию с конвертными данными, по полю на строку.
// Идентификаторы участников показываются без схемы по умолчанию.
func (o *Output) Detail(d *domain.TransactionDetail) {
	fmt.Fprintf(o.w, "id: %s\n", d.ID)
	fmt.Fprintf(o.w, "status: %s\n", d.Status)
	fmt.Fprintf(o.w, "timestamp: %s\n", d.Timestamp)
	fmt.Fprintf(o.w, "direction: %s\n", d.Direction)
	if d.Metadata.Sender != "" {
		fmt.Fprintf(o.w, "sender: %s\n", domain.ParticipantValue(d.Metadata.Sender))
	}
	if d.Metadata.Receiver != "" {
		fmt.Fprintf(o.w, "receiver: %s\n", domain.ParticipantValue(d.Metadata.Receiver))
	}
	if d.Metadata.DocumentType != "" {
		fmt.Fprintf(o.w, "documentType: %s\n", d.Metadata.DocumentType)
	}
	if d.Metadata.Process != "" {
		fmt.Fprintf(o.w, "process: %s\n", d.Metadata.Process)
	}
}

// SendResult печатает итог отправки документа.
func (o *Output) SendResult(result *domain.SendResult) {
	fmt.Fprintf(o.w, "Status: %s Transaction id %s\n", result.Status, result.ID)
}

// Println печатает строку-результат команды в stdout.
func (o *Output) Println(msg string) {
	fmt.Fprintln(o.w, msg)
}

// Success выводит сообщение об успехе в stderr.
func (o *Output) Success(msg string) {
	fmt.Fprintln(o.errW, msg)
}

// Error выводит сообщение об ошибке в stderr.
func (o *Output) Error(msg string) {
	fmt.Fprintln(o.errW, "Error: "+msg)
}
