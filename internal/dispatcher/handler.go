package dispatcher

// HandlerFunc handles one routed request or notification.
type HandlerFunc func(rc *RequestContext)

// Middleware is the pre/post hook pair spec.md §4.3/§9 describes: PreProcess
// runs before the handler and can veto it; PostProcess runs afterward with
// the outcome for every middleware whose PreProcess ran, including the one
// that vetoed. Middlewares after a veto run neither hook.
type Middleware interface {
	PreProcess(rc *RequestContext) bool
	PostProcess(rc *RequestContext, success bool)
}
