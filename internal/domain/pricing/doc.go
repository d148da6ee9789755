// Package pricing holds every price and measurement rule of the print shop.
//
// Units:
//   - Cliché (printing plate) measures are centimetres; plate area is cm².
//   - Die-cut block dimensions are millimetres; block area is m².
//   - Die-cut knife and crease length is linear metres.
//   - Amounts are shopspring decimals in BRL, rounded half-up to two places
//     on every total a function returns.
//
// All functions are pure. Service orders, invoices, quotes, PDF footers and
// spreadsheet exports must call into this package instead of re-deriving
// totals on their own.
package pricing
