package solvium

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Poll runs one status check for a previously submitted task. Unknown handles
// come back as a NotFoundError; the returned result always carries one of the
// defined TaskStatus values.
func (c *Client) Poll(ctx context.Context, id TaskID) (TaskResult, error) {
	if id == "" {
		return TaskResult{}, &ValidationError{Field: "task id", Reason: "required"}
	}

	const op = "task status"

	res, err := c.newRequest(ctx, taskEndpoint{
		method: "GET",
		path:   "/task/status/" + string(id),
	}).Send()
	if err != nil {
		return TaskResult{}, &TransportError{Op: op, Err: err}
	}

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return TaskResult{}, &AuthError{}
	case res.StatusCode == http.StatusNotFound:
		return TaskResult{}, &NotFoundError{TaskID: id}
	case res.StatusCode < 200 || res.StatusCode >= 300:
		return TaskResult{}, &TransportError{Op: op, Err: fmt.Errorf("unexpected status %d", res.StatusCode)}
	}

	var out statusResponse
	if err := res.JSON(&out); err != nil {
		return TaskResult{}, &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	return taskResultFromWire(out), nil
}

func taskResultFromWire(out statusResponse) TaskResult {
	status := TaskStatus(out.Status)
	switch status {
	case StatusPending, StatusRunning, StatusCompleted, StatusRejected:
	default:
		status = StatusUnknown
	}
	return TaskResult{
		Status:   status,
		Solution: out.Result.Solution,
		Error:    out.Result.Error,
	}
}

// Solve drives one task from creation to a terminal state: submit once, then
// poll on the fixed interval until the task completes, is rejected, or the
// timeout budget runs out.
//
// A rejected task and an exhausted budget both return an empty token with a
// nil error; like the service's other clients, Solve does not distinguish
// "unsolvable" from "took too long". Callers that need the rejection detail
// can use Submit and Poll directly. Genuine faults (a rejected API key, bad
// parameters, transport trouble) are returned as errors. Cancelling ctx
// stops polling and returns the cancellation.
func (c *Client) Solve(ctx context.Context, task Task) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	id, err := c.Submit(ctx, task)
	if err != nil {
		if budgetExceeded(ctx, err) {
			return "", nil
		}
		return "", err
	}

	return c.waitForCompletion(ctx, id)
}

// waitForCompletion polls until a terminal state or the end of the budget
// carried by ctx.
func (c *Client) waitForCompletion(ctx context.Context, id TaskID) (string, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		res, err := c.Poll(ctx, id)
		if err != nil {
			if budgetExceeded(ctx, err) {
				c.infof("task %s: budget exhausted, giving up", id)
				return "", nil
			}
			return "", err
		}

		switch res.Status {
		case StatusCompleted:
			c.infof("task %s solved, solution %s returned", id, truncateToken(res.Solution))
			return res.Solution, nil
		case StatusRejected:
			detail := res.Error
			if detail == "" {
				detail = "no error returned"
			}
			c.log.Errorf("task %s was not solved: %s", id, detail)
			return "", nil
		default:
			c.infof("task %s has status %s, waiting for completion", id, res.Status)
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				c.infof("task %s: budget exhausted, giving up", id)
				return "", nil
			}
			return "", ctx.Err()
		case <-ticker.C:
		}
	}
}

// budgetExceeded tells an error caused by the solve budget running out apart
// from a caller cancellation or a real transport fault.
func budgetExceeded(ctx context.Context, err error) bool {
	return errors.Is(ctx.Err(), context.DeadlineExceeded) &&
		errors.Is(err, context.DeadlineExceeded)
}

// SolveResult is the outcome of one asynchronous solve. An empty Token with a
// nil Err is the "no solution" outcome, exactly as Solve returns it.
type SolveResult struct {
	Token string
	Err   error
}

// SolveAsync runs Solve in its own goroutine and delivers the outcome on the
// returned channel, which is closed after the single send. Any number of
// solves may be in flight on one client; cancelling ctx stops only this one.
func (c *Client) SolveAsync(ctx context.Context, task Task) <-chan SolveResult {
	out := make(chan SolveResult, 1)
	go func() {
		defer close(out)
		token, err := c.Solve(ctx, task)
		out <- SolveResult{Token: token, Err: err}
	}()
	return out
}
