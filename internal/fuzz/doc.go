// Package fuzztests houses Go fuzz harnesses over the built-in frontend and
// the layers that consume its output (token conversion, diagnostic
// reconciliation, symbol resolution). They guard against panics and broken
// range invariants on arbitrary input.
//
// Назначение: прогонять произвольные байты через Tokenize/Validate и
// проверять инварианты токенов и диагностик.
//
// Не делает: генерацию корпусов, запись файлов, запуск LSP.
package fuzztests
