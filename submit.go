package solvium

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Submit creates one solving task and returns its handle. The task is
// validated locally first, so a ValidationError never touches the network.
// An AuthError means the service rejected the API key; everything else that
// goes wrong on the wire comes back as a TransportError.
func (c *Client) Submit(ctx context.Context, task Task) (TaskID, error) {
	if task == nil {
		return "", &ValidationError{Field: "task", Reason: "required"}
	}
	if err := task.validate(); err != nil {
		return "", err
	}

	op := "create " + task.Type() + " task"

	res, err := c.newRequest(ctx, task.endpoint()).Send()
	if err != nil {
		return "", &TransportError{Op: op, Err: err}
	}

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return "", &AuthError{Message: strings.TrimSpace(res.String())}
	case res.StatusCode < 200 || res.StatusCode >= 300:
		return "", &TransportError{Op: op, Err: fmt.Errorf("unexpected status %d", res.StatusCode)}
	}

	var out createResponse
	if err := res.JSON(&out); err != nil {
		return "", &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	if out.Message != taskCreatedMessage {
		// Some rejections arrive in-band with a 2xx status.
		if looksLikeAuthRejection(out.Message) {
			return "", &AuthError{Message: out.Message}
		}
		return "", &TransportError{Op: op, Err: fmt.Errorf("service responded with message %q", out.Message)}
	}
	if out.TaskID == "" {
		return "", &TransportError{Op: op, Err: fmt.Errorf("field task_id was not provided by service")}
	}

	c.infof("task %s created with id %s", task.Type(), out.TaskID)
	return TaskID(out.TaskID), nil
}

func looksLikeAuthRejection(message string) bool {
	m := strings.ToLower(message)
	return strings.Contains(m, "api key") ||
		strings.Contains(m, "apikey") ||
		strings.Contains(m, "unauthorized") ||
		strings.Contains(m, "forbidden")
}
