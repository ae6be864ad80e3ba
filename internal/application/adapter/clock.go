// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies the current time. Injecting it keeps "today" explicit in
// the streak and calendar computations and pinnable in tests.
type Clock interface {
	Now() time.Time
}
