package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/go-playground/validator/v10"

	"github.com/aussiebroadwan/carebridge/internal/portal/chain"
	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
	"github.com/aussiebroadwan/carebridge/pkg/slogx"
)

// ActionSpec is everything that differs between two contract writes.
type ActionSpec[Req any] struct {
	Kind domain.ActionKind

	// Verb completes "Please connect your wallet to ...".
	Verb string

	SuccessTitle   string
	SuccessMessage func(Req) string
	FailureTitle   string

	// Check runs after tag validation for rules tags cannot express.
	Check func(Req) *domain.Failure

	// Invalid replaces the validation failure notice when set.
	Invalid *domain.Notification

	// Build packs the contract call.
	Build func(Req) (chain.Call, error)

	// Outputs extracts result data from a successful receipt.
	Outputs func(Req, *types.Receipt) map[string]string

	// Detail is passed to notifiers alongside the result.
	Detail func(Req) string
}

// Dispatcher runs one action through
// Idle -> Guarding -> Simulating -> Submitting -> Confirming -> Succeeded | Failed.
//
// It never returns an error: every problem, panics included, ends up in the
// Result. While a dispatch for an account is running, further dispatches for
// the same account return a busy Result and do nothing else.
type Dispatcher[Req any] struct {
	Spec       ActionSpec[Req]
	Transactor chain.Transactor
	Validator  *validator.Validate
	Notifier   Notifier
	Metrics    *Metrics

	mu       sync.Mutex
	inflight map[common.Address]struct{}
}

// NewDispatcher builds a dispatcher for spec, using the default validator when v is nil.
func NewDispatcher[Req any](spec ActionSpec[Req], tx chain.Transactor, v *validator.Validate, n Notifier, m *Metrics) *Dispatcher[Req] {
	if v == nil {
		v = NewValidator()
	}
	return &Dispatcher[Req]{
		Spec:       spec,
		Transactor: tx,
		Validator:  v,
		Notifier:   n,
		Metrics:    m,
		inflight:   make(map[common.Address]struct{}),
	}
}

func (d *Dispatcher[Req]) Kind() domain.ActionKind { return d.Spec.Kind }

// DispatchDecoded fills a fresh request with decode and dispatches it. Only
// decode errors are returned.
func (d *Dispatcher[Req]) DispatchDecoded(ctx context.Context, acct domain.Account, decode func(any) error) (domain.Result, error) {
	var req Req
	if err := decode(&req); err != nil {
		return domain.Result{}, err
	}
	return d.Dispatch(ctx, acct, req), nil
}

// Dispatch runs req for acct to a terminal state.
func (d *Dispatcher[Req]) Dispatch(ctx context.Context, acct domain.Account, req Req) (res domain.Result) {
	res = domain.Result{
		Kind:    d.Spec.Kind,
		Account: acct.Address,
		Stage:   domain.StageIdle,
		Reached: domain.StageIdle,
	}
	l := slogx.FromContext(ctx).With("action", string(d.Spec.Kind), "address", acct.Address.Hex())

	if !d.acquire(acct.Address) {
		l.Debug("dispatch skipped, account busy")
		res.Status = domain.StatusBusy
		d.Metrics.result(res, 0)
		return res
	}
	defer d.release(acct.Address)

	started := time.Now()
	var detail string

	defer func() {
		if p := recover(); p != nil {
			l.Error("dispatch panicked", "stage", res.Reached, "panic", p)
			d.fail(l, &res, &domain.Failure{Kind: domain.FailureUnknown, Reason: fmt.Sprint(p)}, nil)
		}
		res.FinishedAt = time.Now().UTC()
		d.Metrics.result(res, time.Since(started))
		d.notify(ctx, l, Outcome{Result: res, Detail: detail})
	}()

	if d.Spec.Detail != nil {
		detail = d.Spec.Detail(req)
	}
	d.run(ctx, l, acct, req, &res)
	return res
}

// notify hands o to the Notifier. A panicking notifier is logged and never
// replaces the result the caller already has.
func (d *Dispatcher[Req]) notify(ctx context.Context, l *slog.Logger, o Outcome) {
	if d.Notifier == nil {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			l.Error("notifier panicked", "panic", p)
		}
	}()
	d.Notifier.Notify(ctx, o)
}

func (d *Dispatcher[Req]) run(ctx context.Context, l *slog.Logger, acct domain.Account, req Req, res *domain.Result) {
	if f := d.validate(req); f != nil {
		d.fail(l, res, f, d.Spec.Invalid)
		return
	}

	d.enter(l, res, domain.StageGuarding)
	if !acct.Connected() {
		d.fail(l, res, &domain.Failure{Kind: domain.FailureNotConnected, Reason: "wallet not connected"}, &domain.Notification{
			Level:   domain.NoticeError,
			Title:   "Wallet not connected",
			Message: "Please connect your wallet to " + d.Spec.Verb,
		})
		return
	}

	d.enter(l, res, domain.StageSimulating)
	call, err := d.Spec.Build(req)
	if err != nil {
		d.fail(l, res, &domain.Failure{Kind: domain.FailureSimulationReverted, Reason: err.Error()}, nil)
		return
	}
	if err := d.Transactor.Simulate(ctx, acct.Address, call); err != nil {
		d.fail(l, res, &domain.Failure{Kind: domain.FailureSimulationReverted, Reason: failureReason(err)}, nil)
		return
	}

	d.enter(l, res, domain.StageSubmitting)
	tx, err := d.Transactor.Send(ctx, acct, call)
	if err != nil {
		d.fail(l, res, &domain.Failure{Kind: domain.FailureSubmissionRejected, Reason: failureReason(err)}, nil)
		return
	}
	res.TxHash = tx.Hash()

	d.enter(l, res, domain.StageConfirming)
	receipt, err := d.Transactor.WaitMined(ctx, tx)
	if receipt != nil && receipt.BlockNumber != nil {
		res.BlockNumber = receipt.BlockNumber.Uint64()
	}
	if err != nil {
		d.fail(l, res, &domain.Failure{Kind: domain.FailureConfirmation, Reason: failureReason(err)}, nil)
		return
	}

	res.Status = domain.StatusSucceeded
	res.Stage = domain.StageSucceeded
	d.Metrics.stage(d.Spec.Kind, domain.StageSucceeded)
	if d.Spec.Outputs != nil {
		res.Data = d.Spec.Outputs(req, receipt)
	}
	res.Notice = &domain.Notification{
		Level:   domain.NoticeSuccess,
		Title:   d.Spec.SuccessTitle,
		Message: d.Spec.SuccessMessage(req),
	}
	l.Info("dispatch succeeded", "tx", res.TxHash.Hex(), "block", res.BlockNumber)
}

func (d *Dispatcher[Req]) validate(req Req) *domain.Failure {
	if f := validateRequest(d.Validator, req); f != nil {
		return f
	}
	if d.Spec.Check != nil {
		return d.Spec.Check(req)
	}
	return nil
}

func (d *Dispatcher[Req]) enter(l *slog.Logger, res *domain.Result, s domain.Stage) {
	res.Stage = s
	res.Reached = s
	d.Metrics.stage(d.Spec.Kind, s)
	l.Debug("dispatch stage", "stage", s)
}

// fail ends the dispatch. A nil notice gets the action's failure title with
// the failure reason as message.
func (d *Dispatcher[Req]) fail(l *slog.Logger, res *domain.Result, f *domain.Failure, notice *domain.Notification) {
	if notice == nil {
		notice = &domain.Notification{Level: domain.NoticeError, Title: d.Spec.FailureTitle, Message: f.Reason}
	} else {
		cp := *notice
		notice = &cp
	}
	res.Status = domain.StatusFailed
	res.Stage = domain.StageFailed
	res.Failure = f
	res.Notice = notice
	d.Metrics.stage(d.Spec.Kind, domain.StageFailed)
	l.Warn("dispatch failed", "stage", res.Reached, "failure", f.Kind, "reason", f.Reason)
}

// acquire marks addr in flight. The zero address is never tracked; it
// cannot get past Guarding anyway.
func (d *Dispatcher[Req]) acquire(addr common.Address) bool {
	if addr == (common.Address{}) {
		return true
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.inflight == nil {
		d.inflight = make(map[common.Address]struct{})
	}
	if _, busy := d.inflight[addr]; busy {
		return false
	}
	d.inflight[addr] = struct{}{}
	return true
}

func (d *Dispatcher[Req]) release(addr common.Address) {
	if addr == (common.Address{}) {
		return
	}
	d.mu.Lock()
	delete(d.inflight, addr)
	d.mu.Unlock()
}

// failureReason surfaces a contract's revert message as is.
func failureReason(err error) string {
	var rev *chain.RevertError
	if errors.As(err, &rev) && rev.Reason != "" {
		return rev.Reason
	}
	return err.Error()
}
