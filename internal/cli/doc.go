// Package cli реализует команды клиента ion-AP.
//
// # Обзор
//
// CLI — клиентская утилита для обмена документами через access point ion-AP.
// Вся работа сводится к одному HTTP-запросу на вызов: список, получение или
// удаление транзакций, отправка XML-документа, проверка статуса и receipt.
//
// # Ключевые компоненты
//
// ## Команды
//
// Каждая команда создаётся фабричной функцией (NewReceiveCmd и т.д.),
// принимающей clientFn и outputFn — замыкания для ленивого создания
// транспортного клиента и Output после разбора глобальных флагов.
// Конфигурация загружается только когда команда действительно идёт в сеть.
//
//   - create_config: создать файл конфигурации по умолчанию
//   - receive [ID [metadata|document|delete]]: входящие транзакции
//   - send FILE: отправка XML-документа
//   - send_status [ID [receipt|delete]]: статусы исходящих транзакций
//
// ## Output
//
// Форматирование вывода. Два режима:
//   - Разобранный (по умолчанию) — сводка и строки списка, поля деталей
//   - Raw (-j) — тело ответа сервера байт в байт
//
// Тела документов и receipts печатаются без изменений в обоих режимах.
// Данные выводятся в stdout, сообщения — в stderr.
//
// ## Коды выхода
//
// Ошибки отображаются в стабильные коды выхода (см. errors.go):
// 0 успех, 1 транспорт, 2 вызов, 3 конфигурация отсутствует,
// 4 конфигурация уже существует, 5 валидация, 6 не найдено, 7 файл.
package cli
