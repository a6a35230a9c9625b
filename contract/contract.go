//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import "time"

// Scheduler runs f once after d, without blocking the caller.
// Nothing can be cancelled once scheduled.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}
