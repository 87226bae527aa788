// Package watcher implements the build-triggered launch orchestrator: a
// state machine that arms itself against one build target, observes build
// completion events and fires a debug launch when the armed target builds
// successfully.
//
// All state transitions (Arm and the two event callbacks) are serialized
// through a single dispatch goroutine, so hosts may deliver events from any
// thread. Only the prelaunch script wait is handed off to a worker so the
// dispatch goroutine is never stalled by a long-running script.
package watcher

import (
	"sync"
	"sync/atomic"

	"github.com/devlaunch/build-launch-handler/internal/alert"
	"github.com/devlaunch/build-launch-handler/internal/observer"
	"github.com/devlaunch/build-launch-handler/internal/types"
	"github.com/devlaunch/build-launch-handler/pkg/counterutil"
	"github.com/go-kit/kit/log"
)

const defaultResultBuffer = 4

// ---- test seams (override in *_test.go) ----
var (
	// goroutine seam (lets tests run the prelaunch worker synchronously)
	spawnFn = func(f func()) { go f() }
)

// PrelaunchRunner runs the preparation script to completion.
type PrelaunchRunner interface {
	Run(ctx *log.Context, scriptPath string) (int, error)
}

// LaunchInvoker submits the final debug-launch request.
type LaunchInvoker interface {
	Invoke(ctx *log.Context, launchFilePath string) error
}

// Config wires the watcher to its collaborators.
type Config struct {
	Logger    *log.Context
	Prelaunch PrelaunchRunner
	Invoker   LaunchInvoker
	Alerts    alert.Presenter

	// Unit and Overall are the two build event streams the watcher attaches
	// to on first successful arming.
	Unit    *observer.UnitBuildNotifier
	Overall *observer.BuildDoneNotifier

	// ResultBuffer sizes the results channel (default 4). When nobody is
	// draining the channel, further results are dropped with a log line
	// rather than stalling the dispatch goroutine.
	ResultBuffer int
}

// Watcher is the orchestrating state machine. Construct with New, call Start
// before use and Close when done; the owner controls the full lifetime.
type Watcher struct {
	ctx       *log.Context
	prelaunch PrelaunchRunner
	invoker   LaunchInvoker
	alerts    alert.Presenter

	unitStream    *observer.UnitBuildNotifier
	overallStream *observer.BuildDoneNotifier

	requests chan func()
	results  chan types.LaunchResult
	done     chan struct{}
	stopped  chan struct{}

	started   int32
	closeOnce sync.Once

	prelaunchWorkers counterutil.AtomicCount

	// Owned by the dispatch goroutine; never touched elsewhere while the
	// watcher is running.
	armed          types.ArmedTarget
	config         types.LaunchConfig
	pendingSuccess bool
	subscription   *Subscription
}

// New builds a Watcher. It does not start dispatching; call Start.
func New(cfg Config) *Watcher {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewContext(log.NewNopLogger())
	}

	resultBuffer := cfg.ResultBuffer
	if resultBuffer <= 0 {
		resultBuffer = defaultResultBuffer
	}

	return &Watcher{
		ctx:           logger,
		prelaunch:     cfg.Prelaunch,
		invoker:       cfg.Invoker,
		alerts:        cfg.Alerts,
		unitStream:    cfg.Unit,
		overallStream: cfg.Overall,
		requests:      make(chan func(), 16),
		results:       make(chan types.LaunchResult, resultBuffer),
		done:          make(chan struct{}),
		stopped:       make(chan struct{}),
	}
}

// Start begins dispatching requests. Safe to call once; later calls are
// no-ops.
func (w *Watcher) Start() {
	if !atomic.CompareAndSwapInt32(&w.started, 0, 1) {
		return
	}
	go w.loop()
}

// Close stops the dispatch goroutine and detaches from the event streams.
// Prelaunch workers already in flight are not interrupted; their launch
// continuations fail with ErrWatcherClosed on the results channel.
func (w *Watcher) Close() {
	w.closeOnce.Do(func() {
		close(w.done)
		if atomic.LoadInt32(&w.started) == 1 {
			<-w.stopped
		}
		if inFlight := w.prelaunchWorkers.Get(); inFlight > 0 {
			w.ctx.Log("message", "closing with prelaunch workers still running", "count", inFlight)
		}
		// The loop has exited; state is safe to read here.
		if w.subscription != nil {
			w.subscription.Close()
		}
	})
}

// Results is the observable outcome channel: one LaunchResult per overall
// build completion the watcher handles, whether the launch fired, was
// suppressed, or failed.
func (w *Watcher) Results() <-chan types.LaunchResult {
	return w.results
}

func (w *Watcher) loop() {
	defer close(w.stopped)
	for {
		select {
		case fn := <-w.requests:
			fn()
		case <-w.done:
			return
		}
	}
}

// post enqueues fn for the dispatch goroutine without waiting for it to run.
func (w *Watcher) post(fn func()) error {
	select {
	case <-w.done:
		return ErrWatcherClosed
	default:
	}
	select {
	case w.requests <- fn:
		return nil
	case <-w.done:
		return ErrWatcherClosed
	}
}

// call runs fn on the dispatch goroutine and waits for it to finish.
func (w *Watcher) call(fn func()) error {
	ran := make(chan struct{})
	if err := w.post(func() {
		fn()
		close(ran)
	}); err != nil {
		return err
	}
	select {
	case <-ran:
		return nil
	case <-w.stopped:
		select {
		case <-ran:
			return nil
		default:
			return ErrWatcherClosed
		}
	}
}

func (w *Watcher) emit(result types.LaunchResult) {
	select {
	case w.results <- result:
	default:
		w.ctx.Log("message", "dropping launch result, results channel full", "target", result.Target, "launched", result.Launched, "error", result.Err)
	}
}
