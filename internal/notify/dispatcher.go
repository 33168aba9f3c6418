package notify

import (
	"context"
	"sync"
	"time"

	"github.com/kostsaya/kost-manager/internal/model"
)

// Default per-channel timeouts, overridable via config.
const (
	DefaultWhatsAppTimeout = 15 * time.Second
	DefaultEmailTimeout    = 10 * time.Second
)

// Sender delivers one notification to a single target and reports the
// outcome. Implementations must not panic and must not return partial
// results through shared state.
type Sender interface {
	Send(ctx context.Context, target string, action model.VerificationAction, data TemplateData) Outcome
}

// Report aggregates the per-channel outcomes of one dispatch.
type Report struct {
	Attempted  int     `json:"attempted"`
	Successful int     `json:"successful"`
	WhatsApp   Outcome `json:"whatsapp"`
	Email      Outcome `json:"email"`
}

// Dispatcher fans a verification event out to whichever channels have a
// target, each bounded by its own timeout.
type Dispatcher struct {
	whatsapp Sender
	email    Sender

	whatsAppTimeout time.Duration
	emailTimeout    time.Duration
}

func NewDispatcher(whatsapp, email Sender, whatsAppTimeout, emailTimeout time.Duration) *Dispatcher {
	if whatsAppTimeout <= 0 {
		whatsAppTimeout = DefaultWhatsAppTimeout
	}
	if emailTimeout <= 0 {
		emailTimeout = DefaultEmailTimeout
	}

	return &Dispatcher{
		whatsapp:        whatsapp,
		email:           email,
		whatsAppTimeout: whatsAppTimeout,
		emailTimeout:    emailTimeout,
	}
}

// task is one named send racing against its own deadline.
type task struct {
	channel string
	timeout time.Duration
	run     func(context.Context) Outcome
}

// Dispatch runs the applicable channels concurrently and blocks until every
// scheduled channel has settled (success, failure or timeout). Channels
// without a target are excluded up front and report "Not attempted".
// Dispatch itself never fails; the worst case is a report full of failed
// outcomes.
func (d *Dispatcher) Dispatch(ctx context.Context, action model.VerificationAction, phoneTarget, emailTarget string, data TemplateData) Report {
	report := Report{
		WhatsApp: NotAttempted(ChannelWhatsApp, "Not attempted"),
		Email:    NotAttempted(ChannelEmail, "Not attempted"),
	}

	var tasks []task

	if phoneTarget != "" {
		tasks = append(tasks, task{
			channel: ChannelWhatsApp,
			timeout: d.whatsAppTimeout,
			run: func(ctx context.Context) Outcome {
				return d.whatsapp.Send(ctx, phoneTarget, action, data)
			},
		})
	}

	if emailTarget != "" {
		tasks = append(tasks, task{
			channel: ChannelEmail,
			timeout: d.emailTimeout,
			run: func(ctx context.Context) Outcome {
				return d.email.Send(ctx, emailTarget, action, data)
			},
		})
	}

	// Attempted counts channels that had a target, even when the adapter
	// declined internally (e.g. provider not configured).
	report.Attempted = len(tasks)

	for channel, outcome := range runAll(ctx, tasks) {
		switch channel {
		case ChannelWhatsApp:
			report.WhatsApp = outcome
		case ChannelEmail:
			report.Email = outcome
		}

		if outcome.Success {
			report.Successful++
		}
	}

	return report
}

// runAll executes the tasks concurrently, each racing against its own
// timeout, and returns the settled outcomes keyed by channel. A task that
// misses its deadline is abandoned, not cancelled: its goroutine may finish
// later, but the result is dropped (the result channel is buffered so the
// late write never blocks).
func runAll(ctx context.Context, tasks []task) map[string]Outcome {
	if len(tasks) == 0 {
		return nil
	}

	outcomes := make(map[string]Outcome, len(tasks))

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, t := range tasks {
		wg.Add(1)

		go func(t task) {
			defer wg.Done()

			done := make(chan Outcome, 1)
			go func() {
				done <- t.run(ctx)
			}()

			var outcome Outcome
			select {
			case outcome = <-done:
			case <-time.After(t.timeout):
				outcome = Failed(t.channel, "Timeout")
			}

			mu.Lock()
			outcomes[t.channel] = outcome
			mu.Unlock()
		}(t)
	}

	wg.Wait()

	return outcomes
}
