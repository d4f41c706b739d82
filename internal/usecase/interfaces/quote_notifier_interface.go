package interfaces

import "context"

// IQuoteNotifier forwards a submitted quote to the agency's notification
// channel (webhook into the team chat / CRM). Delivery is best-effort: the
// quote is already persisted when Notify runs, so failures are logged, not
// surfaced to the visitor.
type IQuoteNotifier interface {
	Notify(ctx context.Context, payload map[string]any) error
}
